package postgres

// Save repository queries
const (
	queryUpsertSave = `
		INSERT INTO player_saves (player_id, catalog_version, save_data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (player_id) DO UPDATE
		SET catalog_version = EXCLUDED.catalog_version,
		    save_data = EXCLUDED.save_data,
		    updated_at = NOW()
	`

	querySelectSave = `
		SELECT save_data FROM player_saves WHERE player_id = $1
	`

	queryDeleteSave = `
		DELETE FROM player_saves WHERE player_id = $1
	`
)

// Error messages
const (
	ErrMsgMarshalSave   = "failed to marshal save"
	ErrMsgUnmarshalSave = "failed to unmarshal save"
	ErrMsgUpsertSave    = "failed to upsert save"
	ErrMsgSelectSave    = "failed to load save"
	ErrMsgDeleteSave    = "failed to delete save"
	ErrMsgInvalidSave   = "stored save failed validation"
)
