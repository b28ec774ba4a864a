package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/apnode/apnode-go/pkg/content"
)

const (
	scriptMaxAge = 86400 * time.Second
	assetMaxAge  = 86400 * time.Second

	notFoundBody = "ERROR 404 File Not Found"
	badArgsBody  = "BAD ARGS"
)

// handleList writes the entry names of the directory named by ?dir= as a
// JSON array.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("dir") {
		writeText(w, http.StatusInternalServerError, badArgsBody)
		return
	}

	listing, err := s.config.Resolver.ListDirectory(q.Get("dir"))
	switch {
	case errors.Is(err, content.ErrInvalidArgument):
		writeText(w, http.StatusInternalServerError, badArgsBody)
		return
	case errors.Is(err, content.ErrNotFound):
		writeText(w, http.StatusNotFound, notFoundBody)
		return
	case err != nil:
		s.warnLog("list directory", "dir", q.Get("dir"), "error", err)
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer listing.Close()

	names, err := listing.Names()
	if err != nil {
		s.warnLog("list directory", "dir", q.Get("dir"), "error", err)
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", content.TypeJSON.MIME())
	_ = json.NewEncoder(w).Encode(names)
}

// handleRun acknowledges immediately and queues ?cmd= for the interpreter.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "OK")

	line := r.URL.Query().Get("cmd")
	if line == "" || s.config.Commands == nil {
		return
	}
	if err := s.config.Commands.Exec(line, "http"); err != nil {
		s.warnLog("command dropped", "cmd", line, "error", err)
	}
}

func (s *Server) handleAttack(w http.ResponseWriter, r *http.Request) {
	if s.config.Attack == nil {
		writeText(w, http.StatusNotFound, notFoundBody)
		return
	}
	data, err := s.config.Attack.JSON()
	if err != nil {
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", content.TypeJSON.MIME())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleDefaultLanguage serves the configured translation, embedded when
// compiled in and from storage otherwise.
func (s *Server) handleDefaultLanguage(w http.ResponseWriter, r *http.Request) {
	if l, ok := content.ParseLanguage(s.config.Language); ok && s.embedded() {
		if asset, ok := s.config.Catalog.Language(l); ok {
			s.serveAsset(asset)(w, r)
			return
		}
	}
	s.serveResolved(w, "/lang/"+s.config.Language+".lang")
}

// handleResolve serves the request path from storage.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	s.serveResolved(w, r.URL.Path)
}

func (s *Server) serveResolved(w http.ResponseWriter, requested string) {
	rp, err := s.config.Resolver.Resolve(requested)
	if errors.Is(err, content.ErrNotFound) {
		writeText(w, http.StatusNotFound, notFoundBody)
		return
	}
	if err != nil {
		s.warnLog("resolve", "path", requested, "error", err)
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	f, err := s.config.Resolver.Open(rp)
	if err != nil {
		s.warnLog("open", "path", rp.Path, "error", err)
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer f.Close()

	h := w.Header()
	h.Set("Content-Type", rp.Type.MIME())
	if rp.Encoding == content.EncodingGzip {
		h.Set("Content-Encoding", "gzip")
	}
	if info, err := f.Stat(); err == nil {
		h.Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		s.debugLog("write response", "path", rp.Path, "error", err)
	}
}

// serveAsset returns a handler for an embedded, pre-compressed asset.
func (s *Server) serveAsset(asset content.Asset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := s.config.Catalog.Open(asset)
		if err != nil {
			s.warnLog("open embedded asset", "name", asset.Name, "error", err)
			writeText(w, http.StatusInternalServerError, err.Error())
			return
		}
		h := w.Header()
		h.Set("Content-Type", asset.Type.MIME())
		h.Set("Content-Encoding", "gzip")
		h.Set("Cache-Control", maxAge(assetMaxAge))
		h.Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func cacheFor(d time.Duration) func(http.Handler) http.Handler {
	v := maxAge(d)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", v)
			next.ServeHTTP(w, r)
		})
	}
}

func maxAge(d time.Duration) string {
	return "max-age=" + strconv.Itoa(int(d/time.Second))
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", content.TypePlain.MIME())
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
