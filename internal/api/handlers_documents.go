package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/dgallion1/mdview/internal/docstore"
	"github.com/dgallion1/mdview/internal/doctree"
	"github.com/dgallion1/mdview/internal/source"
	"github.com/go-chi/chi/v5"
)

// lookup fetches the document named in the URL, writing an error response
// when it is missing.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (docstore.Document, bool) {
	doc, err := s.store.Get(chi.URLParam(r, "docID"))
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return docstore.Document{}, false
	}
	return doc, true
}

// handleView renders the viewer page for a stored document.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("q")
	page, err := s.viewer.View(doc.Markdown, query)
	if err != nil {
		s.log.Error("render failed", "doc_id", doc.ID, "error", err)
		jsonError(w, "failed to render document", http.StatusInternalServerError)
		return
	}
	s.writePage(w, documentPage(doc, query, page))
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if err := s.store.Delete(docID); err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}
	s.log.Info("document deleted", "doc_id", docID)
	w.WriteHeader(http.StatusNoContent)
}

// handleHeadings returns the flat heading list in document order.
func (s *Server) handleHeadings(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}
	headings, _ := s.viewer.Outline(doc.Markdown)
	if headings == nil {
		headings = []doctree.Heading{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   doc.ID,
		"headings": headings,
	})
}

// handleTOC returns the nested heading forest and its rendered markup.
func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}
	page, err := s.viewer.View(doc.Markdown, "")
	if err != nil {
		jsonError(w, "failed to render document", http.StatusInternalServerError)
		return
	}
	forest := page.Tree
	if forest == nil {
		forest = []*doctree.Node{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   doc.ID,
		"toc":      forest,
		"toc_html": page.TOC,
		"count":    doctree.Count(forest),
	})
}

// handleRender renders a Markdown body, or a multipart "file" upload,
// without storing it.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var text string
	if isMultipart(r) {
		filename, data, err := s.readUpload(w, r)
		if err != nil {
			jsonError(w, err.Error(), statusFor(err))
			return
		}
		decoded, err := source.Decode(bytes.NewReader(data), filename, s.sourceOptions())
		if err != nil {
			jsonError(w, err.Error(), statusFor(err))
			return
		}
		text = decoded.Markdown
	} else {
		body, err := s.readMarkdownBody(w, r)
		if err != nil {
			jsonError(w, err.Error(), statusFor(err))
			return
		}
		text = body
	}

	page, err := s.viewer.View(text, r.URL.Query().Get("q"))
	if err != nil {
		jsonError(w, "failed to render document", http.StatusInternalServerError)
		return
	}
	if page.Headings == nil {
		page.Headings = []doctree.Heading{}
	}
	if page.Tree == nil {
		page.Tree = []*doctree.Node{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}
