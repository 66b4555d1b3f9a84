package postgres

import (
	"clip-share/internal/core/domain"
	"clip-share/internal/core/port"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlVideoRepository struct {
	db SQLQuerier
}

// NewSqlVideoRepository creates sqlVideoRepository that implements port.VideoRepository
func NewSqlVideoRepository(db SQLQuerier) port.VideoRepository {
	return &sqlVideoRepository{
		db: db,
	}
}

// Create creates a new video entry
func (s *sqlVideoRepository) Create(ctx context.Context, video domain.Video) error {
	query := `INSERT INTO video_details (id, title, duration_seconds, size_megabytes, file_path, uploaded_at, trimmed)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		video.ID, video.Title, video.DurationSeconds, video.SizeMegabytes,
		video.FilePath, video.UploadedAt.UTC(), video.Trimmed)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("video %s: %w", video.ID, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting video: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	query := `SELECT id, title, duration_seconds, size_megabytes, file_path, uploaded_at, trimmed
              FROM video_details
              WHERE id = $1`

	var dbVideo dbVideo
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbVideo.ID,
		&dbVideo.Title,
		&dbVideo.DurationSeconds,
		&dbVideo.SizeMegabytes,
		&dbVideo.FilePath,
		&dbVideo.UploadedAt,
		&dbVideo.Trimmed,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}

	return dbVideo.ToDomain(), nil
}

// Exists checks whether a video row exists
func (s *sqlVideoRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM video_details WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking video existence: %w", err)
	}
	return exists, nil
}

// UpdateMedia refreshes duration, size and the trimmed flag in one statement
func (s *sqlVideoRepository) UpdateMedia(ctx context.Context, id uuid.UUID, durationSeconds int, sizeMegabytes float64, trimmed bool) error {
	query := `UPDATE video_details
              SET duration_seconds = $1, size_megabytes = $2, trimmed = $3
              WHERE id = $4`

	result, err := s.db.ExecContext(ctx, query, durationSeconds, sizeMegabytes, trimmed, id)
	if err != nil {
		return fmt.Errorf("error updating video: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrVideoNotFound
	}

	return nil
}

// dbVideo represents a video row in DB
type dbVideo struct {
	ID              uuid.UUID `db:"id"`
	Title           string    `db:"title"`
	DurationSeconds int       `db:"duration_seconds"`
	SizeMegabytes   float64   `db:"size_megabytes"`
	FilePath        string    `db:"file_path"`
	UploadedAt      time.Time `db:"uploaded_at"`
	Trimmed         bool      `db:"trimmed"`
}

// ToDomain converts to domain.Video
func (v *dbVideo) ToDomain() *domain.Video {
	return &domain.Video{
		ID:              v.ID,
		Title:           v.Title,
		DurationSeconds: v.DurationSeconds,
		SizeMegabytes:   v.SizeMegabytes,
		FilePath:        v.FilePath,
		UploadedAt:      v.UploadedAt.UTC(),
		Trimmed:         v.Trimmed,
	}
}
