package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another process held the output lock past the timeout.
var ErrLocked = errors.New("output file is locked by another process")

const lockRetryDelay = 50 * time.Millisecond

// Document is the encoded result of one image.
type Document struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format,omitempty"`
	RLE    string `json:"rle"`
}

// Options selects the destination and framing of the output.
type Options struct {
	// Path is the destination file; empty means the fallback writer.
	Path            string
	TrailingNewline bool
	JSON            bool
	LockTimeout     time.Duration
}

// Write renders doc according to opts. When opts.Path is empty the bytes go
// to fallback (normally stdout).
func Write(ctx context.Context, fallback io.Writer, opts Options, doc Document) error {
	payload, err := render(opts, doc)
	if err != nil {
		return err
	}
	if opts.Path == "" {
		_, err := fallback.Write(payload)
		return err
	}
	return writeFile(ctx, opts.Path, payload, opts.LockTimeout)
}

func render(opts Options, doc Document) ([]byte, error) {
	if opts.JSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json output: %w", err)
		}
		return append(data, '\n'), nil
	}
	data := []byte(doc.RLE)
	if opts.TrailingNewline {
		data = append(data, '\n')
	}
	return data, nil
}

func writeFile(ctx context.Context, path string, payload []byte, timeout time.Duration) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	lockCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("lock output %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("%s: %w", path, ErrLocked)
	}
	defer lock.Unlock() //nolint:errcheck

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace output %s: %w", path, err)
	}
	return nil
}
