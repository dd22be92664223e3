// Package labelcodec converts between text targets and the flat label
// sequences consumed and produced by CTC-style sequence recognizers.
//
// A LabelCodec is built from an alphabet. Each alphabet rune gets the index
// position+1; index 0 is the blank symbol, which also stands in for runes the
// alphabet does not contain. A batch of strings is encoded into one flat label
// sequence plus the per-string rune counts:
//
//	codec, err := labelcodec.New("abc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	batch := codec.Encode([]string{"ab", "c"})
//	// batch.Labels  == []int32{1, 2, 3}
//	// batch.Lengths == []int32{2, 1}
//
//	text, err := codec.Decode(batch.Labels, batch.Lengths)
//	// text == []string{"ab", "c"}
//
// Model outputs taken along the greedy path still contain repeats and
// blanks; DecodeCTC collapses them before decoding.
//
// A LabelCodec is immutable after construction and safe for concurrent use.
package labelcodec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'labelcodec'
func tracer() tracing.Trace {
	return tracing.Select("labelcodec")
}
