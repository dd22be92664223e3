package labelcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Blank is the label reserved for the blank symbol and for unknown characters.
const Blank int32 = 0

// noRune marks a reverse table slot that no character owns.
const noRune rune = -1

// LabelCodec maps alphabet characters to 1-based labels and back.
type LabelCodec struct {
	alphabet []rune
	index    map[rune]int32 // rune -> label
	symbols  []rune         // label -> rune, slot 0 is blank
}

// New creates a codec for alphabet using DefaultConfig.
func New(alphabet string) (*LabelCodec, error) {
	return NewWithConfig(alphabet, DefaultConfig())
}

// NewWithConfig creates a codec for alphabet.
//
// Every rune of alphabet gets the label position+1. An empty alphabet is
// accepted and yields a codec that encodes everything to Blank.
func NewWithConfig(alphabet string, cfg Config) (*LabelCodec, error) {
	runes := []rune(alphabet)
	index := make(map[rune]int32, len(runes))

	for i, r := range runes {
		label := int32(i + 1) //nolint:gosec // G115: alphabet length fits in int32.
		if prev, ok := index[r]; ok {
			if !cfg.AllowDuplicates {
				return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateCharacter, r, prev-1, i)
			}
			tracer().Infof("alphabet repeats %q, label %d replaces %d", r, label, prev)
		}
		index[r] = label
	}

	// Slots stay empty when a later duplicate took over their character.
	symbols := make([]rune, len(runes)+1)
	for i := range symbols {
		symbols[i] = noRune
	}
	for r, label := range index {
		symbols[label] = r
	}

	tracer().Debugf("label codec with %d characters, %d classes", len(index), len(symbols))
	return &LabelCodec{
		alphabet: runes,
		index:    index,
		symbols:  symbols,
	}, nil
}

// Alphabet returns the alphabet the codec was built from.
func (c *LabelCodec) Alphabet() string {
	return string(c.alphabet)
}

// NumClasses returns the number of output classes a recognizer needs,
// including the blank.
func (c *LabelCodec) NumClasses() int {
	return len(c.symbols)
}

// Index returns the label for r and whether r belongs to the alphabet.
func (c *LabelCodec) Index(r rune) (int32, bool) {
	label, ok := c.index[r]
	return label, ok
}

// Encode converts items to a flat label sequence and per-item rune counts.
//
// Characters outside the alphabet are encoded as Blank.
func (c *LabelCodec) Encode(items []string) Batch {
	total := 0
	for _, item := range items {
		total += utf8.RuneCountInString(item)
	}

	b := Batch{
		Labels:  make([]int32, 0, total),
		Lengths: make([]int32, 0, len(items)),
	}
	for _, item := range items {
		b.Lengths = append(b.Lengths, int32(utf8.RuneCountInString(item))) //nolint:gosec // G115: string length fits in int32.
		for _, r := range item {
			b.Labels = append(b.Labels, c.index[r]) // missing runes yield Blank
		}
	}
	return b
}

// Decode converts a flat label sequence back to one string per length.
//
// The lengths must sum to len(labels), otherwise ErrLengthMismatch is
// returned and nothing is decoded. Blank labels decode to nothing; labels
// without a character fail with a *LabelError.
func (c *LabelCodec) Decode(labels, lengths []int32) ([]string, error) {
	if err := checkLengths(labels, lengths); err != nil {
		tracer().Debugf("decode rejected: %v", err)
		return nil, err
	}

	text := make([]string, 0, len(lengths))
	start := 0
	var sb strings.Builder
	for i, length := range lengths {
		sb.Reset()
		end := start + int(length)
		for offset := start; offset < end; offset++ {
			r, ok := c.symbol(labels[offset])
			if !ok {
				err := &LabelError{Label: labels[offset], Item: i, Offset: offset}
				tracer().Debugf("decode rejected: %v", err)
				return nil, err
			}
			if r != noRune {
				sb.WriteRune(r)
			}
		}
		text = append(text, sb.String())
		start = end
	}
	return text, nil
}

// DecodeBatch decodes an encoded batch.
func (c *LabelCodec) DecodeBatch(b Batch) ([]string, error) {
	return c.Decode(b.Labels, b.Lengths)
}

// DecodeCTC collapses a greedy CTC path and decodes the result.
func (c *LabelCodec) DecodeCTC(labels, lengths []int32) ([]string, error) {
	collapsed, err := Collapse(labels, lengths)
	if err != nil {
		return nil, err
	}
	return c.DecodeBatch(collapsed)
}

// symbol returns the rune for label, or noRune for Blank.
// It reports false for labels no character owns.
func (c *LabelCodec) symbol(label int32) (rune, bool) {
	if label == Blank {
		return noRune, true
	}
	if label < 0 || int(label) >= len(c.symbols) || c.symbols[label] == noRune {
		return noRune, false
	}
	return c.symbols[label], true
}

// checkLengths verifies that lengths are non-negative and sum to len(labels).
func checkLengths(labels, lengths []int32) error {
	sum := 0
	for i, length := range lengths {
		if length < 0 {
			return fmt.Errorf("%w: negative length %d for item %d", ErrLengthMismatch, length, i)
		}
		sum += int(length)
	}
	if sum != len(labels) {
		return fmt.Errorf("%w: %d labels, lengths sum to %d", ErrLengthMismatch, len(labels), sum)
	}
	return nil
}
