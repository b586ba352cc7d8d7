package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"documents":        s.store.Len(),
		"max_documents":    s.cfg.MaxDocuments,
		"max_upload_bytes": s.cfg.MaxUploadBytes,
		"doc_ttl":          s.cfg.DocTTL.String(),
	})
}
