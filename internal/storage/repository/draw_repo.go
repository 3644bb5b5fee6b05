package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ramonehamilton/lotto-companion/internal/storage/models"
)

// DrawRepository handles database operations for imported draw history.
type DrawRepository interface {
	// BulkInsert stores draws, ignoring dates already present.
	BulkInsert(ctx context.Context, draws []*models.Draw) error

	// LoadAll retrieves every stored draw, most recent first.
	LoadAll(ctx context.Context) ([]*models.Draw, error)

	// Count returns the number of stored draws.
	Count(ctx context.Context) (int, error)
}

// drawRepository is the concrete implementation of DrawRepository.
type drawRepository struct {
	db *sql.DB
}

// NewDrawRepository creates a new draw repository.
func NewDrawRepository(db *sql.DB) DrawRepository {
	return &drawRepository{db: db}
}

// BulkInsert stores draws inside a single transaction, ignoring dates
// already present.
func (r *drawRepository) BulkInsert(ctx context.Context, draws []*models.Draw) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO draws (draw_date, numbers, stars)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, draw := range draws {
		_, err := stmt.ExecContext(ctx,
			draw.Date.Format(models.DateLayout),
			models.JoinInts(draw.Numbers),
			models.JoinInts(draw.Stars),
		)
		if err != nil {
			return fmt.Errorf("insert draw %s: %w", draw.Date.Format(models.DateLayout), err)
		}
	}

	return tx.Commit()
}

// LoadAll retrieves every stored draw, most recent first.
func (r *drawRepository) LoadAll(ctx context.Context) ([]*models.Draw, error) {
	query := `
		SELECT id, draw_date, numbers, stars
		FROM draws
		ORDER BY draw_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var draws []*models.Draw
	for rows.Next() {
		draw := &models.Draw{}
		var date, numbers, stars string

		if err := rows.Scan(&draw.ID, &date, &numbers, &stars); err != nil {
			return nil, err
		}

		if draw.Date, err = time.Parse(models.DateLayout, date); err != nil {
			return nil, fmt.Errorf("draw %d date: %w", draw.ID, err)
		}
		if draw.Numbers, err = models.SplitInts(numbers); err != nil {
			return nil, fmt.Errorf("draw %d numbers: %w", draw.ID, err)
		}
		if draw.Stars, err = models.SplitInts(stars); err != nil {
			return nil, fmt.Errorf("draw %d stars: %w", draw.ID, err)
		}

		draws = append(draws, draw)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return draws, nil
}

// Count returns the number of stored draws.
func (r *drawRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM draws`).Scan(&count)
	return count, err
}
