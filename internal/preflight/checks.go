package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"

	"img2rle/internal/imagegrid"
)

// CheckInputFile verifies that path exists, is not a directory, and is readable.
// Paths that cannot be stat'd and directories fail with imagegrid.ErrNotFound.
// An existing file without read permission fails with imagegrid.ErrDecode.
func CheckInputFile(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path), Err: imagegrid.NotFound(path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err), Err: imagegrid.NotFound(path)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path), Err: imagegrid.NotFound(path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err), Err: imagegrid.OpenFailed(&fs.PathError{Op: "open", Path: path, Err: err})}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable, %d bytes)", path, info.Size())}
}
