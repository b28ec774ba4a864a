//go:build nowebfiles

package content

import "embed"

// DefaultCatalog returns an empty catalog; this binary was built with the
// nowebfiles tag and serves everything from storage.
func DefaultCatalog() *Catalog {
	return NewCatalog(embed.FS{}, nil)
}
