// Package repository provides database repositories for combinations and
// imported draw history.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ramonehamilton/lotto-companion/internal/storage/models"
)

// CombinationRepository handles database operations for generated
// combinations.
type CombinationRepository interface {
	// Save persists a combination, allocating its order index when unset.
	Save(ctx context.Context, combination *models.Combination) error

	// GetAll retrieves all combinations ordered by order index.
	GetAll(ctx context.Context) ([]*models.Combination, error)

	// GetByStrategy retrieves combinations produced by one strategy.
	GetByStrategy(ctx context.Context, strategy string) ([]*models.Combination, error)

	// GetByDateRange retrieves combinations created within [from, to].
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*models.Combination, error)

	// NextOrderIndex returns the next available order index. Indexes are
	// monotonically increasing across save sessions.
	NextOrderIndex(ctx context.Context) (int64, error)

	// Clear deletes every stored combination.
	Clear(ctx context.Context) error
}

// combinationRepository is the concrete implementation of CombinationRepository.
type combinationRepository struct {
	db *sql.DB
}

// NewCombinationRepository creates a new combination repository.
func NewCombinationRepository(db *sql.DB) CombinationRepository {
	return &combinationRepository{db: db}
}

// Save persists a combination, allocating its order index when unset.
func (r *combinationRepository) Save(ctx context.Context, combination *models.Combination) error {
	if combination.OrderIndex == 0 {
		next, err := r.NextOrderIndex(ctx)
		if err != nil {
			return fmt.Errorf("allocate order index: %w", err)
		}
		combination.OrderIndex = next
	}
	if combination.CreatedAt.IsZero() {
		combination.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO combinations (strategy, order_index, numbers, stars, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		combination.Strategy,
		combination.OrderIndex,
		models.JoinInts(combination.Numbers),
		models.JoinInts(combination.Stars),
		combination.CreatedAt.Format(models.TimestampLayout),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	combination.ID = id

	return nil
}

// GetAll retrieves all combinations ordered by order index.
func (r *combinationRepository) GetAll(ctx context.Context) ([]*models.Combination, error) {
	query := `
		SELECT id, strategy, order_index, numbers, stars, created_at
		FROM combinations
		ORDER BY order_index ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return r.scanCombinations(rows)
}

// GetByStrategy retrieves combinations produced by one strategy.
func (r *combinationRepository) GetByStrategy(ctx context.Context, strategy string) ([]*models.Combination, error) {
	query := `
		SELECT id, strategy, order_index, numbers, stars, created_at
		FROM combinations
		WHERE strategy = ?
		ORDER BY order_index ASC
	`

	rows, err := r.db.QueryContext(ctx, query, strategy)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return r.scanCombinations(rows)
}

// GetByDateRange retrieves combinations created within [from, to].
func (r *combinationRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*models.Combination, error) {
	query := `
		SELECT id, strategy, order_index, numbers, stars, created_at
		FROM combinations
		WHERE created_at >= ? AND created_at <= ?
		ORDER BY order_index ASC
	`

	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(models.TimestampLayout),
		to.UTC().Format(models.TimestampLayout),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return r.scanCombinations(rows)
}

// NextOrderIndex returns the next available order index.
func (r *combinationRepository) NextOrderIndex(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(order_index), 0) + 1 FROM combinations`

	var next int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// Clear deletes every stored combination.
func (r *combinationRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM combinations`)
	return err
}

// scanCombinations scans multiple combination rows.
func (r *combinationRepository) scanCombinations(rows *sql.Rows) ([]*models.Combination, error) {
	var combinations []*models.Combination

	for rows.Next() {
		combination := &models.Combination{}
		var numbers, stars, createdAt string

		err := rows.Scan(
			&combination.ID,
			&combination.Strategy,
			&combination.OrderIndex,
			&numbers,
			&stars,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if combination.Numbers, err = models.SplitInts(numbers); err != nil {
			return nil, fmt.Errorf("combination %d numbers: %w", combination.ID, err)
		}
		if combination.Stars, err = models.SplitInts(stars); err != nil {
			return nil, fmt.Errorf("combination %d stars: %w", combination.ID, err)
		}
		combination.CreatedAt, _ = time.Parse(models.TimestampLayout, createdAt)

		combinations = append(combinations, combination)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return combinations, nil
}
