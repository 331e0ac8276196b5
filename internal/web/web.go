// internal/web/web.go
// Package web serves the stored product images.
package web

import (
	"errors"
	"flowershop/internal/logging"
	"flowershop/internal/storage"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/mux"
)

// imageHandler serves flower images from the blob store root.
type imageHandler struct {
	contentFS fs.FS
	prefix    string
}

// ServeHTTP serves a single image. Only flat keys with the image extension are served.
func (h imageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, h.prefix)
	if key == "" || strings.Contains(key, "/") || path.Clean(key) != key || path.Ext(key) != storage.ImageExt {
		http.NotFound(w, r)
		return
	}

	file, err := h.contentFS.Open(key)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Log.Errorf("imageHandler: error opening %s: %v", key, err)
		}
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	seeker, ok := file.(io.ReadSeeker)
	if !ok {
		logging.Log.Errorf("imageHandler: %s does not implement io.ReadSeeker", key)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, key, info.ModTime(), seeker)
}

// AddRoutes mounts the image handler under prefix, e.g. "/images/".
func AddRoutes(router *mux.Router, content fs.FS, prefix string) {
	router.PathPrefix(prefix).Handler(imageHandler{contentFS: content, prefix: prefix}).Methods("GET", "HEAD")
}
