package ports

import "context"

// ExportResult is a generated export file plus the metadata the popup shows.
type ExportResult struct {
	// Data is pretty-printed UTF-8 JSON.
	Data     []byte
	Filename string
	// Count is the number of connections that contributed to the export.
	Count int
	// Category is the display name of the exported category, or
	// "All Categories" for the full export.
	Category string
}

// TransferService handles bulk export, import, and data wipes. It is the only
// component allowed to synthesize export payloads and validate imports.
type TransferService interface {
	// ExportURLs builds the URL-only export. An empty categoryID or the
	// "all" sentinel selects the full per-category bucket export; anything
	// else selects the single-category list. Fails with ErrNothingToExport
	// when no connection contributes a URL.
	ExportURLs(ctx context.Context, categoryID string) (*ExportResult, error)
	// ExportBackup builds the full-fidelity backup (categories +
	// connections + settings), the round-trip partner of Import.
	ExportBackup(ctx context.Context) (*ExportResult, error)
	// Import validates the payload and wholesale-overwrites both
	// collections; settings are replaced only when present. Fails with
	// ErrInvalidImport without touching storage.
	Import(ctx context.Context, data []byte) error
	// ClearAll wipes categories and connections. Settings survive.
	ClearAll(ctx context.Context) error
}
