package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/docoutline/internal/store"
)

// handleListDocuments lists all registered documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	docs, err := s.orchestrator.Store().ListDocuments(r.Context(), limit)
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []store.Document{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// handleDocumentOutline serves the stored outline for a document.
func (s *Server) handleDocumentOutline(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	outline, err := s.orchestrator.Store().GetOutline(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to read outline: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if outline == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(outline)
}

// handleDeleteDocument removes a document and its stored outline.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	deleted, err := s.orchestrator.Store().DeleteDocument(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}
