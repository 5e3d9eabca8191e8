package activity

import "time"

// Type identifies the kind of catalog action recorded.
type Type string

const (
	TypeRecordAdded   Type = "record_added"
	TypeRecordEdited  Type = "record_edited"
	TypeRecordRemoved Type = "record_removed"
	TypeUndo          Type = "undo"
	TypeRedo          Type = "redo"
	TypeCatalogSaved  Type = "catalog_saved"
	TypeCatalogLoaded Type = "catalog_loaded"
)

// Entry is one event in the activity log.
type Entry struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	Index      *int      `json:"index,omitempty"`
	RecordName string    `json:"record_name,omitempty"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
}
