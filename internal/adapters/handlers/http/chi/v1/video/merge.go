package video

import (
	"clip-share/internal/core/domain"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// V1MergeVideosRequest is the request to merge two videos
type V1MergeVideosRequest struct {
	VideoID1 string `json:"video_id1"`
	VideoID2 string `json:"video_id2"`
}

// V1MergeVideosResponse is the response to a merge
type V1MergeVideosResponse struct {
	VideoID         uuid.UUID `json:"video_id"`
	Title           string    `json:"title"`
	DurationSeconds int       `json:"duration_seconds"`
	SizeMegabytes   float64   `json:"size_megabytes"`
}

// MergeVideosV1 is the function that handles video merging
func (h *HandlerV1) MergeVideosV1(w http.ResponseWriter, r *http.Request) {

	var req V1MergeVideosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding merge request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.VideoID1 == "" || req.VideoID2 == "" {
		http.Error(w, "missing param", http.StatusBadRequest)
		return
	}

	videoID1, parseErr := uuid.Parse(req.VideoID1)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}
	videoID2, parseErr := uuid.Parse(req.VideoID2)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	video, mergeErr := h.videoService.Merge(r.Context(), videoID1, videoID2)
	switch {
	case errors.Is(mergeErr, domain.ErrVideoNotFound):
		// the error message names which of the two ids was missing
		http.Error(w, mergeErr.Error(), http.StatusNotFound)
		return
	case errors.Is(mergeErr, domain.ErrTransformFailed):
		h.logger.Error("merge transform failed", "video_id1", videoID1, "video_id2", videoID2, "error", mergeErr)
		http.Error(w, "could not process videos", http.StatusBadGateway)
		return
	case mergeErr != nil:
		h.logger.Error("error merging videos", "video_id1", videoID1, "video_id2", videoID2, "error", mergeErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1MergeVideosResponse{
			VideoID:         video.ID,
			Title:           video.Title,
			DurationSeconds: video.DurationSeconds,
			SizeMegabytes:   video.SizeMegabytes,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
