package output_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"img2rle/internal/output"
)

func TestWriteTextToFallback(t *testing.T) {
	tests := []struct {
		name    string
		newline bool
		want    string
	}{
		{name: "with newline", newline: true, want: "bo$!\n"},
		{name: "without newline", newline: false, want: "bo$!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := output.Write(context.Background(), &buf, output.Options{TrailingNewline: tt.newline}, output.Document{RLE: "bo$!"})
			if err != nil {
				t.Fatalf("Write returned error: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	doc := output.Document{Path: "in.png", Width: 2, Height: 1, Format: "png", RLE: "bo!"}
	if err := output.Write(context.Background(), &buf, output.Options{JSON: true}, doc); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	var got output.Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if got != doc {
		t.Fatalf("got %+v want %+v", got, doc)
	}
}

func TestWriteFileReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.rle")
	opts := output.Options{Path: path, TrailingNewline: true, LockTimeout: time.Second}
	var stdout bytes.Buffer

	if err := output.Write(context.Background(), &stdout, opts, output.Document{RLE: "3o!"}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := output.Write(context.Background(), &stdout, opts, output.Document{RLE: "!"}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on fallback writer, got %q", stdout.String())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != "!\n" {
		t.Fatalf("unexpected output content %q", content)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteFileFailsWhenLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rle")
	holder := flock.New(path + ".lock")
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("acquire test lock: locked=%v err=%v", locked, err)
	}
	defer holder.Unlock() //nolint:errcheck

	opts := output.Options{Path: path, LockTimeout: 150 * time.Millisecond}
	err = output.Write(context.Background(), &bytes.Buffer{}, opts, output.Document{RLE: "!"})
	if !errors.Is(err, output.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no output file, stat err %v", statErr)
	}
}
