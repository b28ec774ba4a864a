package content

import (
	"path"
	"strings"
)

// ContentType is the media type of a resource.
type ContentType uint8

const (
	TypePlain ContentType = iota
	TypeHTML
	TypeCSS
	TypeJavaScript
	TypePNG
	TypeGIF
	TypeJPEG
	TypeIcon
	TypeXML
	TypePDF
	TypeZip
	TypeJSON
)

var mimeTypes = [...]string{
	TypePlain:      "text/plain",
	TypeHTML:       "text/html",
	TypeCSS:        "text/css",
	TypeJavaScript: "application/javascript",
	TypePNG:        "image/png",
	TypeGIF:        "image/gif",
	TypeJPEG:       "image/jpeg",
	TypeIcon:       "image/x-icon",
	TypeXML:        "text/xml",
	TypePDF:        "application/x-pdf",
	TypeZip:        "application/x-zip",
	TypeJSON:       "application/json",
}

// extensionTypes maps lower-case file extensions to content types.
var extensionTypes = map[string]ContentType{
	".htm":  TypeHTML,
	".html": TypeHTML,
	".css":  TypeCSS,
	".js":   TypeJavaScript,
	".png":  TypePNG,
	".gif":  TypeGIF,
	".jpg":  TypeJPEG,
	".ico":  TypeIcon,
	".xml":  TypeXML,
	".pdf":  TypePDF,
	".zip":  TypeZip,
	".json": TypeJSON,
	".lang": TypeJSON,
}

// MIME returns the media type string sent in Content-Type.
func (t ContentType) MIME() string {
	if int(t) < len(mimeTypes) {
		return mimeTypes[t]
	}
	return mimeTypes[TypePlain]
}

// String returns the media type string.
func (t ContentType) String() string {
	return t.MIME()
}

// TypeFromPath infers the content type from the extension of p. A trailing
// GzipSuffix is ignored. Unknown extensions map to TypePlain.
func TypeFromPath(p string) ContentType {
	p = strings.TrimSuffix(p, GzipSuffix)
	if t, ok := extensionTypes[strings.ToLower(path.Ext(p))]; ok {
		return t
	}
	return TypePlain
}

// Encoding is how a resource's bytes are stored.
type Encoding uint8

const (
	// EncodingPlain is an uncompressed storage file.
	EncodingPlain Encoding = iota
	// EncodingGzip is a gzip storage file served with Content-Encoding.
	EncodingGzip
	// EncodingEmbedded is a gzip asset compiled into the binary.
	EncodingEmbedded
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingPlain:
		return "PLAIN"
	case EncodingGzip:
		return "GZIP"
	case EncodingEmbedded:
		return "EMBEDDED"
	default:
		return "UNKNOWN"
	}
}

// Compressed reports whether the bytes are gzip and need Content-Encoding.
func (e Encoding) Compressed() bool {
	return e == EncodingGzip || e == EncodingEmbedded
}

// ResourcePath is a resolved resource: where its bytes live, what they are
// and how they are encoded.
type ResourcePath struct {
	// Path is the storage path, or the asset name for EncodingEmbedded.
	Path     string
	Type     ContentType
	Encoding Encoding
}
