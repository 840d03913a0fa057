package core

import (
	"bytes"
	"compress/gzip"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// Page holds the prepared response bytes for a route, with an optional
// precompressed variant for clients that accept gzip.
type Page struct {
	HTML []byte
	Gzip []byte
}

// PreparePage runs the prod pipeline over the raw markup: minify once at
// startup, then precompress. Dev serves the markup untouched.
func PreparePage(env string, raw []byte) Page {
	if env != "prod" {
		return Page{HTML: raw}
	}

	html := MinifyHTML(raw)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(html); err != nil {
		_ = gz.Close()
		return Page{HTML: html}
	}
	if err := gz.Close(); err != nil {
		return Page{HTML: html}
	}

	return Page{HTML: html, Gzip: buf.Bytes()}
}

func MinifyHTML(raw []byte) []byte {
	m := minify.New()
	// Optional end tags must survive, so the markup stays byte-for-byte.
	m.Add("text/html", &minhtml.Minifier{KeepEndTags: true})

	var buf bytes.Buffer
	if err := m.Minify("text/html", &buf, bytes.NewReader(raw)); err != nil {
		return raw
	}
	return buf.Bytes()
}
