//go:build !nowebfiles

package content

//go:generate sh ../../scripts/gzipweb.sh ../../web $PWD/webfiles

import (
	"embed"
	"io/fs"
)

//go:embed webfiles
var webFiles embed.FS

// DefaultCatalog returns the assets compiled into this binary. Build with
// the nowebfiles tag to leave them out.
func DefaultCatalog() *Catalog {
	sub, err := fs.Sub(webFiles, "webfiles")
	if err != nil {
		panic(err)
	}
	return NewCatalog(sub, webAssets())
}
