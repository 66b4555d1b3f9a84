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
)

type sqlLinkRepository struct {
	db SQLQuerier
}

// NewSqlLinkRepository creates sqlLinkRepository that implements port.LinkRepository
func NewSqlLinkRepository(db SQLQuerier) port.LinkRepository {
	return &sqlLinkRepository{
		db: db,
	}
}

// Create creates a new link entry
func (s *sqlLinkRepository) Create(ctx context.Context, link domain.Link) error {
	query := `INSERT INTO links (id, video_id, expiry_time) VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, link.ID, link.VideoID, link.ExpiryTime.UTC())
	if err != nil {
		return fmt.Errorf("error inserting link: %w", err)
	}
	return nil
}

// FindByID finds by id. Expiry is normalized to UTC here, at the storage
// boundary, so callers never compare against a naive or local timestamp.
func (s *sqlLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	query := `SELECT id, video_id, expiry_time FROM links WHERE id = $1`

	var link domain.Link
	var expiry time.Time
	err := s.db.QueryRowContext(ctx, query, id).Scan(&link.ID, &link.VideoID, &expiry)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}

	link.ExpiryTime = expiry.UTC()
	return &link, nil
}

// DeleteExpired removes links past their expiry instant
func (s *sqlLinkRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM links WHERE expiry_time < $1`

	result, err := s.db.ExecContext(ctx, query, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("error deleting expired links: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error checking rows affected: %w", err)
	}
	return deleted, nil
}
