package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
	"github.com/joinboard/joinboard-api/internal/platform/logger"
	"github.com/joinboard/joinboard-api/internal/store"
)

// PostgresCategoryStore implements store.CategoryStore.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// List implements store.CategoryStore.List
func (s *PostgresCategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, color, created_at FROM categories ORDER BY name`)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Color, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// Create implements store.CategoryStore.Create
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, color, created_at) VALUES ($1, $2, $3, $4)`,
		category.ID, category.Name, category.Color, category.CreatedAt)
	if err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	return nil
}

// GetByID implements store.CategoryStore.GetByID
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var category domain.Category
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, color, created_at FROM categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Name, &category.Color, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Delete implements store.CategoryStore.Delete
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

// PostgresPrioStore implements store.PrioStore.
type PostgresPrioStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPrioStore creates a new PostgreSQL implementation of the
// PrioStore interface.
func NewPostgresPrioStore(db store.DBTX, logger *slog.Logger) *PostgresPrioStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPrioStore{
		db:     db,
		logger: logger.With(slog.String("component", "prio_store")),
	}
}

var _ store.PrioStore = (*PostgresPrioStore)(nil)

// List implements store.PrioStore.List
func (s *PostgresPrioStore) List(ctx context.Context) ([]domain.Prio, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level, icon_path, created_at FROM prios ORDER BY created_at`)
	if err != nil {
		log.Error("failed to list prios", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	prios := []domain.Prio{}
	for rows.Next() {
		var prio domain.Prio
		if err := rows.Scan(&prio.ID, &prio.Level, &prio.IconPath, &prio.CreatedAt); err != nil {
			return nil, err
		}
		prios = append(prios, prio)
	}

	return prios, rows.Err()
}

// Create implements store.PrioStore.Create
func (s *PostgresPrioStore) Create(ctx context.Context, prio *domain.Prio) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prio.Validate(); err != nil {
		log.Warn("prio validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO prios (id, level, icon_path, created_at) VALUES ($1, $2, $3, $4)`,
		prio.ID, prio.Level, prio.IconPath, prio.CreatedAt)
	if err != nil {
		log.Error("failed to create prio",
			slog.String("error", err.Error()),
			slog.String("prio_id", prio.ID.String()))
		return err
	}

	return nil
}

// GetByID implements store.PrioStore.GetByID
func (s *PostgresPrioStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prio, error) {
	var prio domain.Prio
	err := s.db.QueryRowContext(ctx,
		`SELECT id, level, icon_path, created_at FROM prios WHERE id = $1`, id).
		Scan(&prio.ID, &prio.Level, &prio.IconPath, &prio.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPrioNotFound
		}
		return nil, err
	}
	return &prio, nil
}

// Delete implements store.PrioStore.Delete
func (s *PostgresPrioStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM prios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrPrioNotFound
	}
	return nil
}
