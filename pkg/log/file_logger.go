package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/afero"
)

// RotatedSuffix is appended to the path of a log file that reached its size
// limit. Only one rotated generation is kept.
const RotatedSuffix = ".1"

// FileLogger appends diagnostic events to a CBOR file.
// It is safe for concurrent use.
type FileLogger struct {
	fs      afero.Fs
	path    string
	maxSize int64

	mu      sync.Mutex
	file    afero.File
	size    int64
	encoder *cbor.Encoder
	closed  bool
}

// NewFileLogger opens path on the host filesystem for appending, without a
// size limit.
func NewFileLogger(path string) (*FileLogger, error) {
	return OpenFileLogger(afero.NewOsFs(), path, 0)
}

// OpenFileLogger opens path on fs for appending, creating it and any
// missing parent directories. When maxSize is positive the file is rotated
// to path+RotatedSuffix once it grows past maxSize bytes.
func OpenFileLogger(fs afero.Fs, path string, maxSize int64) (*FileLogger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	l := &FileLogger{fs: fs, path: path, maxSize: maxSize}
	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *FileLogger) open() error {
	f, err := l.fs.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	l.file = f
	l.size = info.Size()
	l.encoder = NewEncoder(&countingWriter{w: f, n: &l.size})
	return nil
}

// Log appends an event. Encoding and rotation errors are dropped.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	_ = l.encoder.Encode(event)

	if l.maxSize > 0 && l.size >= l.maxSize {
		if err := l.rotate(); err != nil {
			l.closed = true
		}
	}
}

func (l *FileLogger) rotate() error {
	if err := l.file.Close(); err != nil {
		return err
	}
	rotated := l.path + RotatedSuffix
	if err := l.fs.Remove(rotated); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := l.fs.Rename(l.path, rotated); err != nil {
		return err
	}
	return l.open()
}

// Close closes the file. Later Log calls are ignored and repeated Close
// calls return nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.file.Close()
}

type countingWriter struct {
	w io.Writer
	n *int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	*c.n += int64(n)
	return n, err
}

var _ Logger = (*FileLogger)(nil)
