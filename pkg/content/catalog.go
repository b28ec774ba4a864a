package content

import (
	"io/fs"
	"slices"
)

// Asset is a firmware-embedded, pre-compressed resource.
type Asset struct {
	// Route is the exact request path the asset answers.
	Route string

	// Name is the file name inside the embedded file system.
	Name string

	Type ContentType
}

// Resource returns the asset as a resolved resource.
func (a Asset) Resource() ResourcePath {
	return ResourcePath{Path: a.Name, Type: a.Type, Encoding: EncodingEmbedded}
}

// Catalog is the fixed set of embedded assets, keyed by route.
type Catalog struct {
	fsys   fs.FS
	assets map[string]Asset
}

// NewCatalog builds a catalog of assets stored in fsys.
func NewCatalog(fsys fs.FS, assets []Asset) *Catalog {
	c := &Catalog{fsys: fsys, assets: make(map[string]Asset, len(assets))}
	for _, a := range assets {
		c.assets[a.Route] = a
	}
	return c
}

// Len returns the number of routes.
func (c *Catalog) Len() int {
	return len(c.assets)
}

// Routes returns all routes in lexical order.
func (c *Catalog) Routes() []string {
	routes := make([]string, 0, len(c.assets))
	for r := range c.assets {
		routes = append(routes, r)
	}
	slices.Sort(routes)
	return routes
}

// Lookup returns the asset for an exact route.
func (c *Catalog) Lookup(route string) (Asset, bool) {
	a, ok := c.assets[route]
	return a, ok
}

// Language returns the translation asset for l.
func (c *Catalog) Language(l Language) (Asset, bool) {
	if l.Code() == "" {
		return Asset{}, false
	}
	return c.Lookup(l.Route())
}

// Open returns the gzip bytes of a.
func (c *Catalog) Open(a Asset) ([]byte, error) {
	return fs.ReadFile(c.fsys, a.Name)
}

// webAssets lists the pages, scripts and translations of the configuration
// interface.
func webAssets() []Asset {
	assets := []Asset{
		{Route: "/", Name: "index.html.gz", Type: TypeHTML},
		{Route: "/index.html", Name: "index.html.gz", Type: TypeHTML},
		{Route: "/attack.html", Name: "attack.html.gz", Type: TypeHTML},
		{Route: "/info.html", Name: "info.html.gz", Type: TypeHTML},
		{Route: "/scan.html", Name: "scan.html.gz", Type: TypeHTML},
		{Route: "/ap_settings.html", Name: "ap_settings.html.gz", Type: TypeHTML},
		{Route: "/ssids.html", Name: "ssids.html.gz", Type: TypeHTML},
		{Route: "/style.css", Name: "style.css.gz", Type: TypeCSS},
		{Route: "/js/attack.js", Name: "js/attack.js.gz", Type: TypeJavaScript},
		{Route: "/js/scan.js", Name: "js/scan.js.gz", Type: TypeJavaScript},
		{Route: "/js/ap_settings.js", Name: "js/ap_settings.js.gz", Type: TypeJavaScript},
		{Route: "/js/site.js", Name: "js/site.js.gz", Type: TypeJavaScript},
		{Route: "/js/ssids.js", Name: "js/ssids.js.gz", Type: TypeJavaScript},
	}
	for _, l := range Languages() {
		assets = append(assets, Asset{
			Route: l.Route(),
			Name:  "lang/" + l.Code() + ".lang.gz",
			Type:  TypeJSON,
		})
	}
	return assets
}
