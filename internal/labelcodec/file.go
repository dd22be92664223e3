package labelcodec

import (
	"fmt"

	"github.com/born-ml/labelcodec/internal/serialization"
	"github.com/born-ml/labelcodec/internal/tensor"
)

// Tensor names and metadata keys of a saved batch.
const (
	labelsTensor  = "labels"
	lengthsTensor = "lengths"
	alphabetKey   = "alphabet"
	formatKey     = "format"
	formatName    = "labelcodec"
)

// SaveBatch writes b to path in SafeTensors format together with the
// codec's alphabet.
func (c *LabelCodec) SaveBatch(path string, b Batch) error {
	if err := b.Validate(); err != nil {
		return err
	}

	tensors := map[string]*tensor.RawTensor{
		labelsTensor:  tensor.FromInt32(b.Labels),
		lengthsTensor: tensor.FromInt32(b.Lengths),
	}
	metadata := map[string]string{
		alphabetKey: c.Alphabet(),
		formatKey:   formatName,
	}
	if err := serialization.WriteSafeTensorsFile(path, tensors, metadata); err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}
	return nil
}

// LoadBatch reads a batch written by SaveBatch.
//
// The stored alphabet must equal the codec's, otherwise the labels would
// decode to different characters and ErrAlphabetMismatch is returned.
func (c *LabelCodec) LoadBatch(path string) (Batch, error) {
	tensors, metadata, err := serialization.ReadSafeTensorsFile(path)
	if err != nil {
		return Batch{}, fmt.Errorf("failed to load batch: %w", err)
	}

	if alphabet, ok := metadata[alphabetKey]; !ok || alphabet != c.Alphabet() {
		tracer().Debugf("batch %s has alphabet %q, codec has %q", path, alphabet, c.Alphabet())
		return Batch{}, fmt.Errorf("%w: %s", ErrAlphabetMismatch, path)
	}

	b, err := BatchFromTensors(tensors[labelsTensor], tensors[lengthsTensor])
	if err != nil {
		return Batch{}, err
	}
	if err := b.Validate(); err != nil {
		return Batch{}, err
	}
	return b, nil
}
