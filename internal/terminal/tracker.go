package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
)

// tracker remembers the first I/O error seen on a stream. The program reads
// input on its own goroutine, hence the lock.
type tracker struct {
	mu  sync.Mutex
	err error
}

func (t *tracker) record(err error) {
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err == nil {
		t.err = err
	}
}

func (t *tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// trackedFile keeps the *os.File methods (Fd, Name, Close) visible so the
// program still recognises a terminal and can switch it to raw mode.
type trackedFile struct {
	*os.File
	t *tracker
}

func (f trackedFile) Read(p []byte) (int, error) {
	n, err := f.File.Read(p)
	f.t.record(err)
	return n, err
}

func (f trackedFile) Write(p []byte) (int, error) {
	n, err := f.File.Write(p)
	f.t.record(err)
	return n, err
}

type trackedReader struct {
	r io.Reader
	t *tracker
}

func (r trackedReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.t.record(err)
	return n, err
}

type trackedWriter struct {
	w io.Writer
	t *tracker
}

func (w trackedWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.t.record(err)
	return n, err
}

func trackReader(r io.Reader, t *tracker) io.Reader {
	switch r := r.(type) {
	case nil:
		return nil
	case *os.File:
		return trackedFile{File: r, t: t}
	default:
		return trackedReader{r: r, t: t}
	}
}

func trackWriter(w io.Writer, t *tracker) io.Writer {
	switch w := w.(type) {
	case nil:
		return nil
	case *os.File:
		return trackedFile{File: w, t: t}
	default:
		return trackedWriter{w: w, t: t}
	}
}
