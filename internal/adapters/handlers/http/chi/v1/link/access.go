package link

import (
	"clip-share/internal/core/domain"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AccessVideoV1 resolves a share link and streams the video back.
// Expired links get a 403 so callers can tell them from unknown ones.
func (h *HandlerV1) AccessVideoV1(w http.ResponseWriter, r *http.Request) {

	rawLinkID := chi.URLParam(r, "linkID")
	if rawLinkID == "" {
		http.Error(w, "link id is required", http.StatusBadRequest)
		return
	}
	linkID, parseErr := uuid.Parse(rawLinkID)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	handle, resolveErr := h.linkService.Resolve(r.Context(), linkID)
	switch {
	case errors.Is(resolveErr, domain.ErrLinkNotFound), errors.Is(resolveErr, domain.ErrVideoNotFound):
		http.Error(w, resolveErr.Error(), http.StatusNotFound)
		return
	case errors.Is(resolveErr, domain.ErrLinkExpired):
		http.Error(w, resolveErr.Error(), http.StatusForbidden)
		return
	case resolveErr != nil:
		h.logger.Error("error resolving link", "link_id", linkID, "error", resolveErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", handle.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", handle.Filename))
		http.ServeFile(w, r, handle.Path)
		return
	}
}
