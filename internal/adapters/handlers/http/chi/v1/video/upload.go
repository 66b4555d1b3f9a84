package video

import (
	"clip-share/internal/core/domain"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// maxUploadMemory caps the in-memory part of multipart parsing; bigger
// bodies spill to temp files
const maxUploadMemory = 32 << 20

// V1UploadVideoResponse is the response to a video upload
type V1UploadVideoResponse struct {
	VideoID         uuid.UUID `json:"video_id"`
	Title           string    `json:"title"`
	DurationSeconds int       `json:"duration_seconds"`
	SizeMegabytes   float64   `json:"size_megabytes"`
	UploadedAt      time.Time `json:"uploaded_at"`
}

// UploadVideoV1 is the function that handles video upload
func (h *HandlerV1) UploadVideoV1(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "expected multipart form with a file field", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	video, uploadErr := h.videoService.Upload(r.Context(), file, header.Filename)
	switch {
	case errors.Is(uploadErr, domain.ErrInvalidInput):
		http.Error(w, uploadErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(uploadErr, domain.ErrVideoTooLarge):
		http.Error(w, uploadErr.Error(), http.StatusRequestEntityTooLarge)
		return
	case errors.Is(uploadErr, domain.ErrDurationOutOfPolicy):
		http.Error(w, uploadErr.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(uploadErr, domain.ErrTransformFailed):
		h.logger.Error("upload transform failed", "error", uploadErr)
		http.Error(w, "could not process video", http.StatusBadGateway)
		return
	case uploadErr != nil:
		h.logger.Error("error uploading video", "error", uploadErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1UploadVideoResponse{
			VideoID:         video.ID,
			Title:           video.Title,
			DurationSeconds: video.DurationSeconds,
			SizeMegabytes:   video.SizeMegabytes,
			UploadedAt:      video.UploadedAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
