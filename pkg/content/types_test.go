package content

import "testing"

func TestTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/index.htm", "text/html"},
		{"/index.html", "text/html"},
		{"/index.html.gz", "text/html"},
		{"/style.css", "text/css"},
		{"/js/site.js", "application/javascript"},
		{"/img/logo.png", "image/png"},
		{"/img/anim.gif", "image/gif"},
		{"/img/photo.jpg", "image/jpeg"},
		{"/favicon.ico", "image/x-icon"},
		{"/feed.xml", "text/xml"},
		{"/manual.pdf", "application/x-pdf"},
		{"/backup.zip", "application/x-zip"},
		{"/settings.json", "application/json"},
		{"/lang/en.lang", "application/json"},
		{"/INDEX.HTML", "text/html"},
		{"/README", "text/plain"},
		{"/notes.md", "text/plain"},
		{"/archive.gz", "text/plain"},
	}
	for _, tt := range tests {
		if got := TypeFromPath(tt.path).MIME(); got != tt.want {
			t.Errorf("TypeFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestContentTypeOutOfRange(t *testing.T) {
	if got := ContentType(200).MIME(); got != "text/plain" {
		t.Errorf("MIME() = %q, want text/plain", got)
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		e          Encoding
		name       string
		compressed bool
	}{
		{EncodingPlain, "PLAIN", false},
		{EncodingGzip, "GZIP", true},
		{EncodingEmbedded, "EMBEDDED", true},
		{Encoding(7), "UNKNOWN", false},
	}
	for _, tt := range tests {
		if tt.e.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.e.String(), tt.name)
		}
		if tt.e.Compressed() != tt.compressed {
			t.Errorf("%s.Compressed() = %v, want %v", tt.name, tt.e.Compressed(), tt.compressed)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	for _, l := range Languages() {
		got, ok := ParseLanguage(l.Code())
		if !ok || got != l {
			t.Errorf("ParseLanguage(%q) = %v, %v", l.Code(), got, ok)
		}
	}
	if _, ok := ParseLanguage("xx"); ok {
		t.Error("ParseLanguage(xx) should fail")
	}
	if LangKlingon.Route() != "/lang/tlh.lang" {
		t.Errorf("Route() = %q", LangKlingon.Route())
	}
	if Language(99).String() != "UNKNOWN" {
		t.Errorf("String() = %q", Language(99).String())
	}
}
