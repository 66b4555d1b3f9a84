package link

import (
	"clip-share/internal/core/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// V1GenerateLinkResponse is the response to link generation
type V1GenerateLinkResponse struct {
	Link       string    `json:"link"`
	ExpiryTime time.Time `json:"expiry_time"`
}

// GenerateLinkV1 is the function that handles share link generation
func (h *HandlerV1) GenerateLinkV1(w http.ResponseWriter, r *http.Request) {

	rawVideoID := r.URL.Query().Get("video_id")
	if rawVideoID == "" {
		http.Error(w, "video_id is required", http.StatusBadRequest)
		return
	}
	videoID, parseErr := uuid.Parse(rawVideoID)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	issued, issueErr := h.linkService.Issue(r.Context(), videoID)
	switch {
	case errors.Is(issueErr, domain.ErrVideoNotFound):
		http.Error(w, issueErr.Error(), http.StatusNotFound)
		return
	case issueErr != nil:
		h.logger.Error("error issuing link", "video_id", videoID, "error", issueErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		resp := V1GenerateLinkResponse{
			Link:       fmt.Sprintf("%s://%s/api/v1/access_video/%s", scheme, r.Host, issued.ID),
			ExpiryTime: issued.ExpiryTime,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
