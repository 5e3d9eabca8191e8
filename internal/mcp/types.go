package mcp

import (
	"github.com/rpggio/artvault/internal/domain/activity"
	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/domain/catalog"
)

type PingParams struct{}

type ListRecordsParams struct {
	Name     string   `json:"name,omitempty" jsonschema:"exact record name to match, ignoring case; price bounds are ignored when set"`
	MinPrice *float64 `json:"min_price,omitempty" jsonschema:"keep records priced at or above this value"`
	MaxPrice *float64 `json:"max_price,omitempty" jsonschema:"keep records priced at or below this value"`
}

type IndexParams struct {
	Index int `json:"index" jsonschema:"zero-based position in the catalog"`
}

// RecordParams carries the fields of a record of any kind. Fields that do
// not belong to Type are ignored.
type RecordParams struct {
	Type        string  `json:"type,omitempty" jsonschema:"ArtObject, Painting, Sculpture or DigitalArt (default ArtObject)"`
	Name        string  `json:"name" jsonschema:"display name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty" jsonschema:"non-negative price"`
	Location    string  `json:"location,omitempty"`
	ImagePath   string  `json:"image_path,omitempty"`
	CanvasType  string  `json:"canvas_type,omitempty" jsonschema:"Painting only"`
	Material    string  `json:"material,omitempty" jsonschema:"Sculpture only"`
	Software    string  `json:"software,omitempty" jsonschema:"DigitalArt only"`
	ResolutionX int     `json:"resolution_x,omitempty" jsonschema:"DigitalArt width in pixels"`
	ResolutionY int     `json:"resolution_y,omitempty" jsonschema:"DigitalArt height in pixels"`
}

func (p RecordParams) input() catalog.RecordInput {
	return catalog.RecordInput{
		Kind:        p.Type,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		ImagePath:   p.ImagePath,
		CanvasType:  p.CanvasType,
		Material:    p.Material,
		Software:    p.Software,
		ResolutionX: p.ResolutionX,
		ResolutionY: p.ResolutionY,
	}
}

type EditRecordParams struct {
	Index  int          `json:"index" jsonschema:"zero-based position of the record to replace"`
	Record RecordParams `json:"record" jsonschema:"the complete replacement record"`
}

type PathParams struct {
	Path string `json:"path,omitempty" jsonschema:"bare file name to use instead of the configured catalog; it is placed next to the configured catalog"`
}

type RecentActivityParams struct {
	Type   string `json:"type,omitempty" jsonschema:"only entries of this activity type"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type PingResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// RecordResponse is a record and its current index.
type RecordResponse struct {
	Index       int     `json:"index"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	ImagePath   string  `json:"image_path,omitempty"`
	CanvasType  string  `json:"canvas_type,omitempty"`
	Material    string  `json:"material,omitempty"`
	Software    string  `json:"software,omitempty"`
	ResolutionX int     `json:"resolution_x,omitempty"`
	ResolutionY int     `json:"resolution_y,omitempty"`
	Details     string  `json:"details,omitempty"`
}

func newRecordResponse(index int, rec *art.Record) RecordResponse {
	f := art.Flatten(rec)
	return RecordResponse{
		Index:       index,
		Type:        string(f.Kind),
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Location:    f.Location,
		ImagePath:   f.ImagePath,
		CanvasType:  f.CanvasType,
		Material:    f.Material,
		Software:    f.Software,
		ResolutionX: f.ResolutionX,
		ResolutionY: f.ResolutionY,
	}
}

type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

type GetRecordResponse struct {
	Record RecordResponse `json:"record"`
}

type HistoryStatusResponse struct {
	Size      int    `json:"size"`
	UndoDepth int    `json:"undo_depth"`
	RedoDepth int    `json:"redo_depth"`
	CanUndo   bool   `json:"can_undo"`
	CanRedo   bool   `json:"can_redo"`
	NextUndo  string `json:"next_undo,omitempty"`
	NextRedo  string `json:"next_redo,omitempty"`
	Backend   string `json:"backend"`
	Path      string `json:"path,omitempty"`
}

func newHistoryStatus(st catalog.Status) HistoryStatusResponse {
	return HistoryStatusResponse{
		Size:      st.Size,
		UndoDepth: st.UndoDepth,
		RedoDepth: st.RedoDepth,
		CanUndo:   st.CanUndo,
		CanRedo:   st.CanRedo,
		NextUndo:  st.NextUndo,
		NextRedo:  st.NextRedo,
		Backend:   st.Backend,
		Path:      st.Path,
	}
}

// HistoryResponse reports whether an undo or redo did anything.
type HistoryResponse struct {
	Applied bool                  `json:"applied"`
	Status  HistoryStatusResponse `json:"status"`
}

type PersistResponse struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

type ActivityEntryResponse struct {
	ID         string        `json:"id"`
	Timestamp  string        `json:"timestamp"`
	Type       activity.Type `json:"type"`
	Index      *int          `json:"index,omitempty"`
	RecordName string        `json:"record_name,omitempty"`
	Summary    string        `json:"summary"`
}

type RecentActivityResponse struct {
	Entries []ActivityEntryResponse `json:"entries"`
}
