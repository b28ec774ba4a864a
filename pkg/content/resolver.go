package content

import (
	"errors"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

const (
	// DefaultDocument is appended to paths ending in a separator.
	DefaultDocument = "index.html"

	// GzipSuffix marks a pre-compressed storage variant.
	GzipSuffix = ".gz"
)

var (
	// ErrNotFound is returned when no tier holds the resource.
	ErrNotFound = errors.New("content: resource not found")

	// ErrInvalidArgument is returned for a missing directory argument.
	ErrInvalidArgument = errors.New("content: invalid argument")
)

// Resolver maps request paths to storage resources. It keeps no state of
// its own; results depend only on the request, the prefix and storage.
type Resolver struct {
	fs     afero.Fs
	prefix func() string
}

// NewResolver creates a Resolver over fs. prefix returns the alternate
// content root and is consulted on every call; nil means no alternate root.
func NewResolver(fs afero.Fs, prefix func() string) *Resolver {
	if prefix == nil {
		prefix = func() string { return "" }
	}
	return &Resolver{fs: fs, prefix: prefix}
}

// Fs returns the storage the resolver reads.
func (r *Resolver) Fs() afero.Fs {
	return r.fs
}

// Normalize returns the canonical form of a request path: rooted, cleaned
// of dot segments so a request cannot climb above the storage root, and
// with the default document appended to directory paths. A path that
// cleans to the root is a directory path.
func Normalize(p string) string {
	dir := p == "" || strings.HasSuffix(p, "/")
	p = path.Clean("/" + p)
	if dir || p == "/" {
		p = path.Join(p, DefaultDocument)
	}
	return p
}

// Resolve finds the resource for requested. Candidates are tried in order
// and the first regular file wins:
//
//	<path>, <path>.gz, <prefix><path>, <prefix><path>.gz
//
// The content type always comes from the normalized request path.
func (r *Resolver) Resolve(requested string) (ResourcePath, error) {
	p := Normalize(requested)
	ct := TypeFromPath(p)

	candidates := []ResourcePath{
		{Path: p, Type: ct, Encoding: EncodingPlain},
		{Path: p + GzipSuffix, Type: ct, Encoding: EncodingGzip},
	}
	if prefix := r.prefix(); prefix != "" && prefix != "/" {
		alt := strings.TrimSuffix(prefix, "/") + p
		candidates = append(candidates,
			ResourcePath{Path: alt, Type: ct, Encoding: EncodingPlain},
			ResourcePath{Path: alt + GzipSuffix, Type: ct, Encoding: EncodingGzip},
		)
	}

	for _, c := range candidates {
		ok, err := r.isFile(c.Path)
		if err != nil {
			return ResourcePath{}, err
		}
		if ok {
			return c, nil
		}
	}
	return ResourcePath{}, ErrNotFound
}

// Open opens a resolved storage resource.
func (r *Resolver) Open(rp ResourcePath) (afero.File, error) {
	if rp.Encoding == EncodingEmbedded {
		return nil, ErrInvalidArgument
	}
	return r.fs.Open(rp.Path)
}

func (r *Resolver) isFile(p string) (bool, error) {
	info, err := r.fs.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
