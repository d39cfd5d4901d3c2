package iconic

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gogpu/iconic/pngenc"
)

// EncodePNG writes the canvas to w as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return pngenc.Encode(w, c.NRGBA())
}

// WritePNG writes the canvas to path as a PNG file, atomically. See
// WriteFile.
func (c *Canvas) WritePNG(path string) error {
	return WriteFile(path, c.EncodePNG)
}

// WriteFile streams the output of write to path atomically: the bytes go
// to a temporary file in the destination directory, which replaces path
// via rename only after a successful write, sync and close. A failed run
// never leaves a truncated artifact at the destination; the temporary
// file is removed on any error.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, cerr := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if cerr != nil {
		return fmt.Errorf("iconic: could not create temporary file in %q: %w", dir, cerr)
	}
	name := tmp.Name()
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(name); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			Logger().Warn("could not remove temporary file", "name", name, "error", rmErr)
		}
	}()

	cw := &countingWriter{w: tmp}
	if werr := write(cw); werr != nil {
		tmp.Close()
		return fmt.Errorf("iconic: could not write %q: %w", name, werr)
	}
	if serr := tmp.Sync(); serr != nil {
		tmp.Close()
		return fmt.Errorf("iconic: could not flush %q: %w", name, serr)
	}
	if cerr := tmp.Close(); cerr != nil {
		return fmt.Errorf("iconic: could not close %q: %w", name, cerr)
	}
	if rerr := os.Rename(name, path); rerr != nil {
		return fmt.Errorf("iconic: could not move %q to %q: %w", name, path, rerr)
	}
	Logger().Debug("file written", "path", path, "bytes", cw.n)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
