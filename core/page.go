package core

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// GreetingHTML is the body served at "/" and "/home".
const GreetingHTML = "<p>Lebron James!</p>"

type PageHandler struct {
	config Config
	env    string
	page   Page
}

func NewPageHandler(config Config, env string) *PageHandler {
	return &PageHandler{
		config: config,
		env:    env,
		page:   PreparePage(env, []byte(GreetingHTML)),
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	requestID := ""
	if h.config.DebugLogs || h.config.DebugHeaders {
		requestID = uuid.NewString()
	}

	if h.config.DebugLogs {
		fmt.Printf("🪵 %s %s %s\n", requestID, req.Method, req.URL.Path)
	}

	switch req.URL.Path {
	case "/", "/home":
		h.servePage(w, req, requestID)
	default:
		WriteNotFound(w, req, h.env, requestID)
	}
}

func (h *PageHandler) servePage(w http.ResponseWriter, req *http.Request, requestID string) {
	if h.config.DebugHeaders {
		w.Header().Set("X-Courtside-Route", req.URL.Path)
		w.Header().Set("X-Request-ID", requestID)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if h.env == "dev" {
		w.Header().Set("Cache-Control", "no-store")
		w.Write(h.page.HTML)
		return
	}

	if h.page.Gzip != nil && acceptsGzip(req) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Vary", "Accept-Encoding")
		w.Write(h.page.Gzip)
		return
	}

	w.Write(h.page.HTML)
}

func acceptsGzip(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")
}
