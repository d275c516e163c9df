package pkg

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saveerrors "github.com/provide-io/savecodec/pkg/save/errors"
	"github.com/provide-io/savecodec/pkg/utils"
)

const sampleJSON = `{"current_health":68,"max_health":80,"gold":143,"relics":["Burning Blood","Vajra"]}`

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "save.dat")
	jsonPath := filepath.Join(dir, "save.json")
	rebuiltPath := filepath.Join(dir, "rebuilt.dat")

	obfuscated := []byte(sampleJSON)
	utils.XORApply(obfuscated, utils.SaveKey())
	saveText := base64.StdEncoding.EncodeToString(obfuscated)
	writeFile(t, savePath, []byte(saveText))

	require.NoError(t, Convert(ToJSONDirection, Options{InPath: savePath, OutPath: jsonPath}))

	got, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, string(got))

	require.NoError(t, Convert(FromJSONDirection, Options{InPath: jsonPath, OutPath: rebuiltPath}))

	rebuilt, err := os.ReadFile(rebuiltPath)
	require.NoError(t, err)
	assert.Equal(t, saveText, string(rebuilt))
}

func TestToJSON_KnownVector(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "save.dat")
	out := filepath.Join(dir, "save.json")
	writeFile(t, in, []byte("Cgca"))

	require.NoError(t, ToJSON(Options{InPath: in, OutPath: out}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestFromJSON_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.json")
	out := filepath.Join(dir, "empty.dat")
	writeFile(t, in, nil)

	require.NoError(t, FromJSON(Options{InPath: in, OutPath: out}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMissingInput(t *testing.T) {
	for _, direction := range []Direction{ToJSONDirection, FromJSONDirection} {
		t.Run(string(direction), func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "missing")
			out := filepath.Join(dir, "out")

			err := Convert(direction, Options{InPath: in, OutPath: out})
			require.Error(t, err)
			assert.ErrorIs(t, err, saveerrors.ErrRead)
			assert.Contains(t, err.Error(), in)

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr), "output file was created")
		})
	}
}

func TestToJSON_InvalidBase64KeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "save.dat")
	out := filepath.Join(dir, "save.json")
	writeFile(t, in, []byte("!!!invalid!!!"))
	writeFile(t, out, []byte("previous"))

	err := ToJSON(Options{InPath: in, OutPath: out})
	assert.ErrorIs(t, err, saveerrors.ErrDecode)

	got, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(got))
}

func TestToJSON_TrailingNewlineRejected(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "save.dat")
	out := filepath.Join(dir, "save.json")
	writeFile(t, in, []byte("Cgca\n"))

	assert.ErrorIs(t, ToJSON(Options{InPath: in, OutPath: out}), saveerrors.ErrDecode)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFromJSON_WriteError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "save.json")
	out := filepath.Join(dir, "missing-dir", "save.dat")
	writeFile(t, in, []byte(sampleJSON))

	err := FromJSON(Options{InPath: in, OutPath: out})
	assert.ErrorIs(t, err, saveerrors.ErrWrite)
	assert.Contains(t, err.Error(), out)
}

func TestFromJSON_BinaryInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "blob.bin")
	out := filepath.Join(dir, "blob.dat")
	back := filepath.Join(dir, "blob.out")
	blob := bytes.Repeat([]byte{0x00, 0xFF, 0xC3, 0x28}, 64)
	writeFile(t, in, blob)

	require.NoError(t, FromJSON(Options{InPath: in, OutPath: out}))
	require.NoError(t, ToJSON(Options{InPath: out, OutPath: back}))

	got, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestConvert_UnknownDirection(t *testing.T) {
	assert.Error(t, Convert("sideways", Options{}))
}
