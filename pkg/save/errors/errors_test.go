package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "read",
			err:     &ReadError{Path: "save.dat", Err: fs.ErrNotExist},
			kind:    ErrRead,
			message: `failed to read input file "save.dat": file does not exist`,
		},
		{
			name:    "decode",
			err:     &DecodeError{Err: errors.New("illegal base64 data at input byte 0")},
			kind:    ErrDecode,
			message: "failed to decode base64: illegal base64 data at input byte 0",
		},
		{
			name:    "write",
			err:     &WriteError{Path: "out/save.json", Err: fs.ErrPermission},
			kind:    ErrWrite,
			message: `failed to write to output file "out/save.json": permission denied`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			if got := tt.err.Error(); got != tt.message {
				t.Errorf("Error() = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestErrorKinds_Unwrap(t *testing.T) {
	err := &ReadError{Path: "missing", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("ReadError does not unwrap to its cause")
	}
	if errors.Is(err, ErrWrite) {
		t.Error("ReadError matched ErrWrite")
	}
}
