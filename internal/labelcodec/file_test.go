package labelcodec

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/labelcodec/internal/serialization"
	"github.com/born-ml/labelcodec/internal/tensor"
)

func TestSaveLoadBatch(t *testing.T) {
	codec := newCodec(t, "abcdefghijklmnopqrstuvwxyz")
	path := filepath.Join(t.TempDir(), "targets.safetensors")

	batch := codec.Encode([]string{"hello", "world", ""})
	require.NoError(t, codec.SaveBatch(path, batch))

	loaded, err := codec.LoadBatch(path)
	require.NoError(t, err)
	assert.Equal(t, batch, loaded)

	text, err := codec.DecodeBatch(loaded)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", ""}, text)
}

func TestSaveLoadBatch_Empty(t *testing.T) {
	codec := newCodec(t, "abc")
	path := filepath.Join(t.TempDir(), "empty.safetensors")

	require.NoError(t, codec.SaveBatch(path, codec.Encode([]string{""})))

	loaded, err := codec.LoadBatch(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Labels)
	assert.Equal(t, []int32{0}, loaded.Lengths)
}

func TestSaveBatch_InvalidBatch(t *testing.T) {
	codec := newCodec(t, "abc")
	path := filepath.Join(t.TempDir(), "invalid.safetensors")

	err := codec.SaveBatch(path, Batch{Labels: []int32{1, 2}, Lengths: []int32{1}})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid batch must not be written")
}

func TestLoadBatch_AlphabetMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.safetensors")

	writer := newCodec(t, "abc")
	require.NoError(t, writer.SaveBatch(path, writer.Encode([]string{"cab"})))

	reader := newCodec(t, "cba")
	_, err := reader.LoadBatch(path)
	require.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestLoadBatch_MissingTensor(t *testing.T) {
	codec := newCodec(t, "abc")
	path := filepath.Join(t.TempDir(), "partial.safetensors")

	tensors := map[string]*tensor.RawTensor{
		lengthsTensor: tensor.FromInt32([]int32{0}),
	}
	metadata := map[string]string{alphabetKey: "abc"}
	require.NoError(t, serialization.WriteSafeTensorsFile(path, tensors, metadata))

	_, err := codec.LoadBatch(path)
	require.ErrorIs(t, err, ErrUnsupportedTensor)
}

func TestLoadBatch_InconsistentLengths(t *testing.T) {
	codec := newCodec(t, "abc")
	path := filepath.Join(t.TempDir(), "inconsistent.safetensors")

	tensors := map[string]*tensor.RawTensor{
		labelsTensor:  tensor.FromInt32([]int32{1, 2, 3}),
		lengthsTensor: tensor.FromInt32([]int32{1, 1}),
	}
	metadata := map[string]string{alphabetKey: "abc"}
	require.NoError(t, serialization.WriteSafeTensorsFile(path, tensors, metadata))

	_, err := codec.LoadBatch(path)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestLoadBatch_MissingFile(t *testing.T) {
	codec := newCodec(t, "abc")

	_, err := codec.LoadBatch(filepath.Join(t.TempDir(), "missing.safetensors"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBatch_OversizedShape(t *testing.T) {
	codec := newCodec(t, "abc")
	path := filepath.Join(t.TempDir(), "oversized.safetensors")

	header := `{"__metadata__":{"alphabet":"abc"},` +
		`"labels":{"dtype":"I32","shape":[2305843009213693952],"data_offsets":[0,4]},` +
		`"lengths":{"dtype":"I32","shape":[1],"data_offsets":[4,8]}}`
	content := binary.LittleEndian.AppendUint64(nil, uint64(len(header)))
	content = append(content, header...)
	content = append(content, make([]byte, 8)...)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	_, err := codec.LoadBatch(path)
	require.ErrorIs(t, err, serialization.ErrSizeMismatch)
}
