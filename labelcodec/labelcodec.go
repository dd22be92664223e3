// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package labelcodec prepares text targets for CTC-style recognizers and
// turns predicted labels back into text.
//
// This package wraps the internal implementation and provides a clean public
// API. Labels are 1-based alphabet positions; 0 is the blank, which is also
// what characters outside the alphabet encode to.
//
// Example usage:
//
//	import "github.com/born-ml/labelcodec/labelcodec"
//
//	codec, err := labelcodec.New("0123456789abcdefghijklmnopqrstuvwxyz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Training targets
//	labels, lengths := codec.EncodeTensors([]string{"born", "ml"})
//
//	// Greedy predictions, one path per image
//	text, err := codec.DecodeCTC(path, pathLengths)
package labelcodec

import (
	"github.com/born-ml/labelcodec/internal/labelcodec"
	"github.com/born-ml/labelcodec/internal/tensor"
)

// LabelCodec maps alphabet characters to labels and back.
//
// A LabelCodec is immutable and safe for concurrent use.
type LabelCodec = labelcodec.LabelCodec

// Batch is an encoded batch of flat labels and per-item lengths.
type Batch = labelcodec.Batch

// Config configures alphabet handling.
type Config = labelcodec.Config

// LabelError reports a label without a character.
type LabelError = labelcodec.LabelError

// RawTensor is the 1-D integer tensor exchanged with a recognizer.
type RawTensor = tensor.RawTensor

// Blank is the label of the blank symbol and of unknown characters.
const Blank = labelcodec.Blank

// Errors reported by the codec.
var (
	ErrLengthMismatch     = labelcodec.ErrLengthMismatch
	ErrUnknownLabel       = labelcodec.ErrUnknownLabel
	ErrDuplicateCharacter = labelcodec.ErrDuplicateCharacter
	ErrUnsupportedTensor  = labelcodec.ErrUnsupportedTensor
	ErrAlphabetMismatch   = labelcodec.ErrAlphabetMismatch
)

// New creates a codec for alphabet. Alphabets repeating a character are
// rejected with ErrDuplicateCharacter.
func New(alphabet string) (*LabelCodec, error) {
	return labelcodec.New(alphabet)
}

// NewWithConfig creates a codec for alphabet with explicit configuration.
func NewWithConfig(alphabet string, cfg Config) (*LabelCodec, error) {
	return labelcodec.NewWithConfig(alphabet, cfg)
}

// DefaultConfig returns the recommended configuration.
func DefaultConfig() Config {
	return labelcodec.DefaultConfig()
}

// Collapse merges repeated labels and drops blanks of greedy CTC paths.
func Collapse(labels, lengths []int32) (Batch, error) {
	return labelcodec.Collapse(labels, lengths)
}

// NewLabelTensor creates a 1-D Int32 tensor, e.g. from model predictions.
func NewLabelTensor(values []int32) *RawTensor {
	return tensor.FromInt32(values)
}
