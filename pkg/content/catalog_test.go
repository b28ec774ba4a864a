//go:build !nowebfiles

package content

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestDefaultCatalogAssetsExist(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 13+len(Languages()), c.Len())

	for _, route := range c.Routes() {
		a, ok := c.Lookup(route)
		require.True(t, ok, route)

		data, err := c.Open(a)
		require.NoError(t, err, route)
		assert.NotEmpty(t, gunzip(t, data), route)
		assert.Equal(t, TypeFromPath(a.Name), a.Type, route)
	}
}

func TestDefaultCatalogRoutes(t *testing.T) {
	c := DefaultCatalog()

	for _, route := range []string{
		"/", "/index.html", "/attack.html", "/info.html", "/scan.html",
		"/ap_settings.html", "/ssids.html", "/style.css",
		"/js/attack.js", "/js/scan.js", "/js/ap_settings.js", "/js/site.js", "/js/ssids.js",
	} {
		_, ok := c.Lookup(route)
		assert.True(t, ok, route)
	}

	root, _ := c.Lookup("/")
	index, _ := c.Lookup("/index.html")
	assert.Equal(t, root.Name, index.Name)

	_, ok := c.Lookup("/lang/default.lang")
	assert.False(t, ok)
}

func TestCatalogLanguage(t *testing.T) {
	c := DefaultCatalog()

	a, ok := c.Language(LangGerman)
	require.True(t, ok)
	data, err := c.Open(a)
	require.NoError(t, err)
	assert.Contains(t, gunzip(t, data), `"lang": "de"`)

	_, ok = c.Language(Language(99))
	assert.False(t, ok)
}

func TestAssetResource(t *testing.T) {
	a := Asset{Route: "/x.css", Name: "x.css.gz", Type: TypeCSS}
	assert.Equal(t, ResourcePath{Path: "x.css.gz", Type: TypeCSS, Encoding: EncodingEmbedded}, a.Resource())
}

func TestNewCatalogCustomFS(t *testing.T) {
	fsys := fstest.MapFS{"a.txt.gz": {Data: []byte("raw")}}
	c := NewCatalog(fsys, []Asset{{Route: "/a.txt", Name: "a.txt.gz", Type: TypePlain}})

	a, ok := c.Lookup("/a.txt")
	require.True(t, ok)
	data, err := c.Open(a)
	require.NoError(t, err)
	assert.Equal(t, "raw", string(data))
	assert.Equal(t, []string{"/a.txt"}, c.Routes())
}
