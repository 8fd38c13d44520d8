package catalog

// DefaultVersion identifies the built-in tables in saves
const DefaultVersion = "2024.1"

// Error message formats
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog file %s: %v: %w"
	ErrMsgValidationFailed   = "catalog validation failed: %v: %w"
	ErrMsgDuplicateRecipeFmt = "duplicate recipe id %q: %w"
	ErrMsgDuplicateMaterial  = "duplicate material id %q: %w"
	ErrMsgUnknownMaterialFmt = "recipe %q costs unknown material %q: %w"
	ErrMsgUnknownRarityFmt   = "%s references unknown rarity %q: %w"
	ErrMsgMissingRarityFmt   = "%s has no entry for rarity %q: %w"
)
