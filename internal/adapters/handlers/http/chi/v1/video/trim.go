package video

import (
	"clip-share/internal/core/domain"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// V1TrimVideoRequest is the request to trim a video
type V1TrimVideoRequest struct {
	VideoID   string `json:"video_id"`
	StartTime *int   `json:"start_time"`
	EndTime   *int   `json:"end_time"`
	SaveAsNew bool   `json:"save_as_new"`
}

// V1TrimVideoResponse is the response to a trim
type V1TrimVideoResponse struct {
	VideoID         uuid.UUID `json:"video_id"`
	Title           string    `json:"title"`
	DurationSeconds int       `json:"duration_seconds"`
	SizeMegabytes   float64   `json:"size_megabytes"`
	Trimmed         bool      `json:"trimmed"`
}

// TrimVideoV1 is the function that handles video trimming
func (h *HandlerV1) TrimVideoV1(w http.ResponseWriter, r *http.Request) {

	var req V1TrimVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding trim request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.VideoID == "" || req.StartTime == nil || req.EndTime == nil {
		http.Error(w, "missing param", http.StatusBadRequest)
		return
	}

	videoID, parseErr := uuid.Parse(req.VideoID)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	video, trimErr := h.videoService.Trim(r.Context(), videoID, *req.StartTime, *req.EndTime, req.SaveAsNew)
	switch {
	case errors.Is(trimErr, domain.ErrVideoNotFound):
		http.Error(w, trimErr.Error(), http.StatusNotFound)
		return
	case errors.Is(trimErr, domain.ErrInvalidRange):
		http.Error(w, trimErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(trimErr, domain.ErrTransformFailed):
		h.logger.Error("trim transform failed", "video_id", videoID, "error", trimErr)
		http.Error(w, "could not process video", http.StatusBadGateway)
		return
	case trimErr != nil:
		h.logger.Error("error trimming video", "video_id", videoID, "error", trimErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1TrimVideoResponse{
			VideoID:         video.ID,
			Title:           video.Title,
			DurationSeconds: video.DurationSeconds,
			SizeMegabytes:   video.SizeMegabytes,
			Trimmed:         video.Trimmed,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
