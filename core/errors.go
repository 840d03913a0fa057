package core

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
)

var ErrNotFound = errors.New("courtside: not found")

func IsNotFoundError(err error) bool {
	return err != nil && err.Error() == ErrNotFound.Error()
}

const errorPageHTML = `<!DOCTYPE html>
<html>
<head><title>{{ .Status }} {{ .StatusText }}</title></head>
<body>
<h1>{{ .Status }} {{ .StatusText }}</h1>
<p>No route matched <code>{{ .Method }} {{ .Path }}</code>.</p>
{{ if .RequestID }}<p>Request ID: <code>{{ .RequestID }}</code></p>{{ end }}
<p><em>You are seeing this page because the server is running in dev mode.</em></p>
</body>
</html>
`

var errorPageTmpl = template.Must(template.New("error").Parse(errorPageHTML))

// WriteNotFound answers an unmatched path. Dev mode renders a diagnostic
// page; prod keeps the stdlib default.
func WriteNotFound(w http.ResponseWriter, req *http.Request, env string, requestID string) {
	if env != "dev" {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusNotFound)

	err := errorPageTmpl.Execute(w, map[string]interface{}{
		"Status":     http.StatusNotFound,
		"StatusText": http.StatusText(http.StatusNotFound),
		"Method":     req.Method,
		"Path":       req.URL.Path,
		"RequestID":  requestID,
	})
	if err != nil {
		fmt.Fprintln(w, "404 page not found")
	}
}
