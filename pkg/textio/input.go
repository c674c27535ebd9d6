package textio

import (
	"io"
	"os"

	"github.com/arthur-debert/relines/pkg/errors"
)

// StdinName is the path that selects standard input
const StdinName = "-"

// IsStdin reports whether path refers to standard input
func IsStdin(path string) bool {
	return path == "" || path == StdinName
}

// ReadInput reads a file, or stdin when path is empty or "-"
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if IsStdin(path) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileRead, "failed to read standard input")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrFileRead
		if os.IsNotExist(err) {
			code = errors.ErrNotFound
		}
		return nil, errors.Wrapf(err, code, "failed to read %s", path).WithDetail("path", path)
	}
	return data, nil
}

// ReadText reads and decodes an input
func ReadText(path string, stdin io.Reader, enc Encoding) (string, Encoding, error) {
	data, err := ReadInput(path, stdin)
	if err != nil {
		return "", enc, err
	}
	text, used, err := Decode(data, enc)
	if err != nil {
		if e, ok := err.(*errors.Error); ok && !IsStdin(path) {
			e.WithDetail("path", path)
		}
		return "", used, err
	}
	return text, used, nil
}
