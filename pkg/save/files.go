package save

import (
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
	saveerrors "github.com/provide-io/savecodec/pkg/save/errors"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadInput reads the whole input file into memory
func ReadInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &saveerrors.ReadError{Path: path, Err: err}
	}
	return data, nil
}

// ReadInputText reads the input file and requires it to be UTF-8 text
func ReadInputText(path string) (string, error) {
	data, err := ReadInput(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &saveerrors.ReadError{Path: path, Err: errInvalidUTF8}
	}
	return string(data), nil
}

// WriteOutput writes data to path through a temporary file in the same
// directory. On failure nothing is left behind and an existing file at
// path is untouched.
func WriteOutput(path string, data []byte, perm os.FileMode, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	tmpPath, err := writeTemp(path, data, perm)
	if err != nil {
		return &saveerrors.WriteError{Path: path, Err: err}
	}

	if err := atomicReplace(tmpPath, path, logger); err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			logger.Debug("Failed to remove temp file", "path", tmpPath, "error", rmErr)
		}
		return &saveerrors.WriteError{Path: path, Err: err}
	}

	return nil
}

func writeTemp(path string, data []byte, perm os.FileMode) (tmpPath string, err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath = tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return "", err
	}
	if err = tmp.Sync(); err != nil {
		return "", err
	}
	if err = tmp.Chmod(perm); err != nil {
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}

	return tmpPath, nil
}
