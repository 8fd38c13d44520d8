// Package postgres holds the PostgreSQL implementations of the repository
// contracts.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/validation"
)

// SaveRepository stores player saves as JSONB rows in player_saves
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a new SaveRepository
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// Save upserts the save of playerID
func (r *SaveRepository) Save(ctx context.Context, playerID string, data domain.SaveData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalSave, err)
	}
	if _, err := r.db.Exec(ctx, queryUpsertSave, playerID, data.Inventory.CatalogVersion, raw); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertSave, err)
	}
	return nil
}

// Load returns the save of playerID or domain.ErrPlayerNotFound
func (r *SaveRepository) Load(ctx context.Context, playerID string) (*domain.SaveData, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, querySelectSave, playerID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSelectSave, err)
	}

	if err := validation.ValidateSave(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSave, err)
	}
	var data domain.SaveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUnmarshalSave, err)
	}
	return &data, nil
}

// Delete removes the save of playerID; deleting a missing save is a no-op
func (r *SaveRepository) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.Exec(ctx, queryDeleteSave, playerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteSave, err)
	}
	return nil
}
