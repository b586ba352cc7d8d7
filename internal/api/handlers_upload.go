package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/mdview/internal/docstore"
	"github.com/dgallion1/mdview/internal/source"
)

// formOverhead is the allowance for multipart framing on top of the file.
const formOverhead = 1 << 20

// statusError carries the HTTP status an upload failure should map to.
type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string { return e.msg }

// handleUpload stores a document from the browser form and redirects to
// its page.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	doc, err := s.storeUpload(w, r)
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}
	http.Redirect(w, r, "/documents/"+doc.ID, http.StatusSeeOther)
}

// handleCreateDocument is the JSON form of handleUpload.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.storeUpload(w, r)
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/documents/"+doc.ID)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   doc.ID,
		"filename": doc.Filename,
		"title":    doc.Title,
		"view_url": "/documents/" + doc.ID,
	})
}

// storeUpload reads the multipart "file" field, decodes it to Markdown and
// stores the result.
func (s *Server) storeUpload(w http.ResponseWriter, r *http.Request) (docstore.Document, error) {
	filename, data, err := s.readUpload(w, r)
	if err != nil {
		return docstore.Document{}, err
	}
	decoded, err := source.Decode(bytes.NewReader(data), filename, s.sourceOptions())
	if err != nil {
		return docstore.Document{}, fmt.Errorf("decode %s: %w", filename, err)
	}

	doc := s.store.Put(filename, decoded.Title, decoded.Markdown)
	headings, _ := s.viewer.Outline(doc.Markdown)
	s.log.Info("document stored",
		"doc_id", doc.ID,
		"filename", filename,
		"bytes", len(data),
		"headings", len(headings),
	)
	return doc, nil
}

// readUpload returns the sanitized filename and contents of the multipart
// "file" field.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+formOverhead)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, s.tooLarge()
		}
		return "", nil, &statusError{http.StatusBadRequest, "invalid multipart form: " + err.Error()}
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, &statusError{http.StatusBadRequest, "file is required: " + err.Error()}
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !source.IsSupportedExtension(filename) {
		return "", nil, fmt.Errorf("%w: %s", source.ErrUnsupported, filepath.Ext(filename))
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, s.tooLarge()
	}
	return filename, data, nil
}

// readMarkdownBody reads a raw Markdown request body.
func (s *Server) readMarkdownBody(w http.ResponseWriter, r *http.Request) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", s.tooLarge()
	}
	if !utf8.Valid(data) {
		return "", source.ErrEncoding
	}
	return string(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))), nil
}

func (s *Server) tooLarge() error {
	return &statusError{http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)}
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// statusFor maps handler errors to HTTP status codes.
func statusFor(err error) int {
	var se *statusError
	switch {
	case errors.As(err, &se):
		return se.code
	case errors.Is(err, source.ErrUnsupported):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, source.ErrEncoding), errors.Is(err, source.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, docstore.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
