package content

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Listing iterates the entries of a directory once. It reads lazily from
// storage and cannot be restarted.
type Listing struct {
	dir  afero.File
	done bool
}

// ListDirectory opens dir for listing. An empty dir is ErrInvalidArgument;
// a missing or non-directory path is ErrNotFound.
func (r *Resolver) ListDirectory(dir string) (*Listing, error) {
	if dir == "" {
		return nil, ErrInvalidArgument
	}
	if dir[0] != '/' {
		dir = "/" + dir
	}

	info, err := r.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrNotFound
	}

	f, err := r.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	return &Listing{dir: f}, nil
}

// Next returns the next entry name, or io.EOF once the directory is
// exhausted. The listing closes itself at io.EOF.
func (l *Listing) Next() (string, error) {
	if l.done {
		return "", io.EOF
	}
	names, err := l.dir.Readdirnames(1)
	if len(names) == 1 {
		return names[0], nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		l.Close()
		return "", io.EOF
	}
	return "", err
}

// Names drains the listing into a slice. The result is never nil.
func (l *Listing) Names() ([]string, error) {
	names := []string{}
	for {
		name, err := l.Next()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			l.Close()
			return names, err
		}
		names = append(names, name)
	}
}

// Close releases the directory handle. It is safe to call more than once.
func (l *Listing) Close() error {
	if l.done {
		return nil
	}
	l.done = true
	return l.dir.Close()
}
