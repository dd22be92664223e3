package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/born-ml/labelcodec/internal/tensor"
)

// metadataKey is the reserved header entry for string metadata.
const metadataKey = "__metadata__"

// SafeTensors dtype names for the supported label types.
const (
	SafeTensorsI32 = "I32"
	SafeTensorsI64 = "I64"
)

// SafeTensorInfo represents a tensor in the SafeTensors header.
type SafeTensorInfo struct {
	DType       string   `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end)
}

// WriteSafeTensorsFile writes tensors to a SafeTensors file at path.
func WriteSafeTensorsFile(path string, tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	//nolint:gosec // G304: File path comes from the caller, which is expected for batch saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteSafeTensors(file, tensors, metadata); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	return file.Close()
}

// WriteSafeTensors writes tensors in SafeTensors format.
//
// Tensors are written in alphabetical order by name. A SHA-256 checksum of
// the data section is added to the metadata under ChecksumKey.
func WriteSafeTensors(w io.Writer, tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	var data bytes.Buffer
	for _, name := range names {
		raw := tensors[name]
		dtype, err := dtypeToSafeTensors(raw.DType())
		if err != nil {
			return fmt.Errorf("tensor %s: %w", name, err)
		}

		start := int64(data.Len())
		data.Write(raw.Data())
		header[name] = SafeTensorInfo{
			DType:       dtype,
			Shape:       raw.Shape().Clone(),
			DataOffsets: [2]int64{start, int64(data.Len())},
		}
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta[ChecksumKey] = ComputeChecksum(data.Bytes())
	header[metadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	// Pad with spaces so tensor data starts 8-byte aligned.
	if pad := len(headerJSON) % 8; pad != 0 {
		headerJSON = append(headerJSON, bytes.Repeat([]byte(" "), 8-pad)...)
	}

	headerSize := uint64(len(headerJSON))
	if err := binary.Write(w, binary.LittleEndian, headerSize); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}

	tracer().Debugf("wrote %d tensors, %d data bytes", len(names), data.Len())
	return nil
}

// ReadSafeTensorsFile reads all tensors and the metadata from a SafeTensors file.
func ReadSafeTensorsFile(path string) (map[string]*tensor.RawTensor, map[string]string, error) {
	//nolint:gosec // G304: File path comes from the caller, which is expected for batch loading
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close() // Read-only, close error carries no information
	}()

	return ReadSafeTensors(file)
}

// ReadSafeTensors reads all tensors and the metadata from r.
//
// The header is validated before any tensor is materialized, and the data
// checksum is verified when the metadata carries one.
func ReadSafeTensors(r io.Reader) (map[string]*tensor.RawTensor, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(headerBytes, &rawMap); err != nil {
		return nil, nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	var metadata map[string]string
	if metaRaw, ok := rawMap[metadataKey]; ok {
		if err := json.Unmarshal(metaRaw, &metadata); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		delete(rawMap, metadataKey)
	}

	infos := make(map[string]SafeTensorInfo, len(rawMap))
	metas := make([]TensorMeta, 0, len(rawMap))
	for name, value := range rawMap {
		if err := ValidateTensorName(name); err != nil {
			return nil, nil, err
		}
		var info SafeTensorInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal tensor %s: %w", name, err)
		}
		infos[name] = info
		metas = append(metas, TensorMeta{
			Name:   name,
			Offset: info.DataOffsets[0],
			Size:   info.DataOffsets[1] - info.DataOffsets[0],
		})
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if err := ValidateTensorOffsets(metas, int64(len(data))); err != nil {
		return nil, nil, err
	}

	if stored, ok := metadata[ChecksumKey]; ok {
		if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
			tracer().Errorf("checksum mismatch on %d data bytes", len(data))
			return nil, nil, err
		}
	}

	tensors := make(map[string]*tensor.RawTensor, len(infos))
	for name, info := range infos {
		raw, err := materialize(name, info, data)
		if err != nil {
			return nil, nil, err
		}
		tensors[name] = raw
	}

	tracer().Debugf("read %d tensors, %d data bytes", len(tensors), len(data))
	return tensors, metadata, nil
}

// materialize copies one tensor's bytes out of the data section.
func materialize(name string, info SafeTensorInfo, data []byte) (*tensor.RawTensor, error) {
	dtype, err := safeTensorsToDType(info.DType)
	if err != nil {
		return nil, &ValidationError{
			Type:    "unsupported_dtype",
			Tensor:  name,
			Details: err.Error(),
		}
	}

	// The header is untrusted: size the shape before allocating anything.
	shape := tensor.Shape(info.Shape)
	start, end := info.DataOffsets[0], info.DataOffsets[1]
	if size, ok := shape.ByteSize(dtype); !ok || size != end-start {
		return nil, &ValidationError{
			Type:    "size_mismatch",
			Tensor:  name,
			Details: fmt.Sprintf("shape %v of %s does not fit offsets spanning %d bytes", info.Shape, dtype, end-start),
		}
	}

	raw, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("tensor %s: %w", name, err)
	}
	copy(raw.Data(), data[start:end])
	return raw, nil
}

// dtypeToSafeTensors converts tensor.DataType to SafeTensors dtype string.
func dtypeToSafeTensors(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Int32:
		return SafeTensorsI32, nil
	case tensor.Int64:
		return SafeTensorsI64, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDType, dt)
	}
}

// safeTensorsToDType converts a SafeTensors dtype string to tensor.DataType.
func safeTensorsToDType(s string) (tensor.DataType, error) {
	switch s {
	case SafeTensorsI32:
		return tensor.Int32, nil
	case SafeTensorsI64:
		return tensor.Int64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDType, s)
	}
}
