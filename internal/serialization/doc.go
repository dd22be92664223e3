// Package serialization stores label tensors in the SafeTensors format.
//
// SafeTensors is the interchange format HuggingFace tooling reads, so batches
// prepared here can be fed to a recognizer written in any framework:
//
//	Format Structure:
//	  [8 bytes: header_size (uint64 LE)]
//	  [header_size bytes: JSON header, space padded to 8 bytes]
//	  [tensor data: raw little-endian bytes]
//
// The JSON header maps tensor names to dtype, shape and data offsets. The
// optional "__metadata__" entry carries string metadata; the writer stores a
// SHA-256 checksum of the data section there and the reader verifies it.
//
// Example usage:
//
//	tensors := map[string]*tensor.RawTensor{
//	    "labels":  tensor.FromInt32(batch.Labels),
//	    "lengths": tensor.FromInt32(batch.Lengths),
//	}
//	if err := serialization.WriteSafeTensorsFile("batch.safetensors", tensors, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	tensors, metadata, err := serialization.ReadSafeTensorsFile("batch.safetensors")
package serialization

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'serialization'
func tracer() tracing.Trace {
	return tracing.Select("serialization")
}
