// filepath: internal/api/handlers/utils.go
package handlers

import (
	"errors"
	"flowershop/internal/models"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// formImageField is the multipart part that carries the product image.
const formImageField = "image"

// errBodyTooLarge is returned by parseForm when the request exceeds the upload limit.
var errBodyTooLarge = errors.New("request body too large")

// parseForm parses a multipart or urlencoded body bounded by the configured upload size.
func (h *Handlers) parseForm(w http.ResponseWriter, r *http.Request) error {
	limit := h.Cfg.MaxUploadSizeBytes
	if limit <= 0 {
		limit = 8 << 20
	}
	if r.ContentLength > limit {
		return errBodyTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	err := r.ParseMultipartForm(limit)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return err
	}
	return nil
}

// respondWithFormError writes the response for a parseForm failure.
func respondWithFormError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large.")
		return
	}
	respondWithError(w, http.StatusBadRequest, "Failed to parse form data.")
}

// readImage returns the uploaded image bytes, or nil when no file was sent.
func readImage(r *http.Request) ([]byte, error) {
	file, header, err := r.FormFile(formImageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, nil
	}
	return io.ReadAll(file)
}

// formValue reports the trimmed value of key and whether the key was sent at all.
func formValue(r *http.Request, key string) (string, bool) {
	values, ok := r.Form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.TrimSpace(values[0]), true
}

// parseFlowerForm reads the fields of a new flower. name, price, type and unit are required.
func parseFlowerForm(r *http.Request) (models.Flower, error) {
	var f models.Flower
	for _, field := range []string{"name", "price", "type", "unit"} {
		if v, ok := formValue(r, field); !ok || v == "" {
			return f, fmt.Errorf("missing required field: %s", field)
		}
	}

	f.Name, _ = formValue(r, "name")
	f.Type, _ = formValue(r, "type")
	f.Unit, _ = formValue(r, "unit")
	f.Tags, _ = formValue(r, "tags")

	price, _ := formValue(r, "price")
	n, err := strconv.ParseInt(price, 10, 64)
	if err != nil {
		return f, fmt.Errorf("price must be an integer")
	}
	f.Price = n

	if stock, ok := formValue(r, "stock"); ok && stock != "" {
		n, err := strconv.ParseInt(stock, 10, 64)
		if err != nil {
			return f, fmt.Errorf("stock must be an integer")
		}
		f.Stock = n
	}
	return f, nil
}

// parsePatchForm reads a partial update. Empty name, type and unit values are
// ignored; tags may be cleared with an empty value.
func parsePatchForm(r *http.Request) (models.FlowerPatch, error) {
	var p models.FlowerPatch
	for field, dst := range map[string]**string{"name": &p.Name, "type": &p.Type, "unit": &p.Unit} {
		if v, ok := formValue(r, field); ok && v != "" {
			value := v
			*dst = &value
		}
	}
	if v, ok := formValue(r, "tags"); ok {
		p.Tags = &v
	}
	for field, dst := range map[string]**int64{"price": &p.Price, "stock": &p.Stock} {
		v, ok := formValue(r, field)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return p, fmt.Errorf("%s must be an integer", field)
		}
		*dst = &n
	}
	return p, nil
}

// parseFlowerFilter reads the list query parameters.
func parseFlowerFilter(r *http.Request) (models.FlowerFilter, error) {
	q := r.URL.Query()
	filter := models.FlowerFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Type:   strings.TrimSpace(q.Get("type")),
		Tags:   strings.TrimSpace(q.Get("tags")),
		Limit:  models.DefaultPageLimit,
	}

	if v := q.Get("low_stock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("low_stock must be a boolean")
		}
		filter.LowStock = b
	}
	for field, dst := range map[string]*int{"skip": &filter.Skip, "limit": &filter.Limit} {
		v := q.Get(field)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, fmt.Errorf("%s must be a non-negative integer", field)
		}
		*dst = n
	}
	return filter, nil
}

// requestActor identifies the caller for audit events.
func requestActor(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
