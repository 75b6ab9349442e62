package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/symaudit"
)

// ReadSource reads the whole binding source file.
// A missing file is ENOTFOUND; any other failure is EIO.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", symaudit.Errorf(symaudit.ENOTFOUND, "source file %q not found", path)
	} else if err != nil {
		return "", symaudit.Errorf(symaudit.EIO, "read source file %q: %v", path, err)
	}
	return string(data), nil
}
