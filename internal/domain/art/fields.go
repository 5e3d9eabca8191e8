package art

import "fmt"

// Fields is the flat form of a record: the type tag, the shared fields and
// every kind-specific field. Storage formats and request payloads convert
// through it; fields that do not belong to Kind are ignored by Build.
type Fields struct {
	Kind Kind `json:"type"`
	Base
	CanvasType  string `json:"canvas_type,omitempty"`
	Material    string `json:"material,omitempty"`
	Software    string `json:"software,omitempty"`
	ResolutionX int    `json:"resolution_x,omitempty"`
	ResolutionY int    `json:"resolution_y,omitempty"`
}

// Build constructs a new record from the flat fields. An empty Kind builds
// the base kind.
func (f Fields) Build() (*Record, error) {
	switch f.Kind {
	case KindArtObject, "":
		return NewArtObject(f.Base), nil
	case KindPainting:
		return NewPainting(f.Base, f.CanvasType), nil
	case KindSculpture:
		return NewSculpture(f.Base, f.Material), nil
	case KindDigitalArt:
		return NewDigitalArt(f.Base, f.Software, f.ResolutionX, f.ResolutionY), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
}

// Flatten returns the flat fields of rec.
func Flatten(rec *Record) Fields {
	f := Fields{Kind: rec.Kind(), Base: rec.Base}
	switch v := rec.Variant.(type) {
	case Painting:
		f.CanvasType = v.CanvasType
	case Sculpture:
		f.Material = v.Material
	case DigitalArt:
		f.Software = v.Software
		f.ResolutionX = v.Resolution.Width
		f.ResolutionY = v.Resolution.Height
	}
	return f
}
