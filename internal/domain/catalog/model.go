package catalog

import (
	"fmt"

	"github.com/rpggio/artvault/internal/domain/art"
)

// RecordInput carries every field a record of any kind may have. Fields
// that do not belong to Kind are ignored. An empty Kind means ArtObject.
type RecordInput struct {
	Kind        string
	Name        string
	Description string
	Price       float64
	Location    string
	ImagePath   string
	CanvasType  string
	Material    string
	Software    string
	ResolutionX int
	ResolutionY int
}

// Build constructs and validates a new record.
func (in RecordInput) Build() (*art.Record, error) {
	rec, err := art.Fields{
		Kind: art.Kind(in.Kind),
		Base: art.Base{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Location:    in.Location,
			ImagePath:   in.ImagePath,
		},
		CanvasType:  in.CanvasType,
		Material:    in.Material,
		Software:    in.Software,
		ResolutionX: in.ResolutionX,
		ResolutionY: in.ResolutionY,
	}.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := art.Validate(rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return rec, nil
}

// InputFrom returns the input that rebuilds rec.
func InputFrom(rec *art.Record) RecordInput {
	f := art.Flatten(rec)
	return RecordInput{
		Kind:        string(f.Kind),
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

// Entry is a record together with its current repository index.
type Entry struct {
	Index  int
	Record *art.Record
}

// Listing is a filtered view of the catalog. Total is the size of the whole
// catalog at the moment Entries were taken.
type Listing struct {
	Entries []Entry
	Total   int
}

// Status summarizes the catalog and its history.
type Status struct {
	Size      int
	UndoDepth int
	RedoDepth int
	CanUndo   bool
	CanRedo   bool
	// NextUndo and NextRedo describe the commands Undo and Redo would
	// apply, or are empty.
	NextUndo string
	NextRedo string
	Backend  string
	Path     string
}
