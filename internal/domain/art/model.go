package art

import "strings"

// Kind is the persisted type tag of a record.
type Kind string

const (
	KindArtObject  Kind = "ArtObject"
	KindPainting   Kind = "Painting"
	KindSculpture  Kind = "Sculpture"
	KindDigitalArt Kind = "DigitalArt"
)

// Kinds lists every known tag in display order.
var Kinds = []Kind{KindArtObject, KindPainting, KindSculpture, KindDigitalArt}

// ParseKind maps a persisted tag to a Kind. Tags are matched exactly.
func ParseKind(tag string) (Kind, bool) {
	switch Kind(tag) {
	case KindArtObject, KindPainting, KindSculpture, KindDigitalArt:
		return Kind(tag), true
	default:
		return "", false
	}
}

// Base holds the fields shared by every record kind.
type Base struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	ImagePath   string  `json:"image_path,omitempty"`
}

// Variant is the kind-specific payload of a record. The set of
// implementations is closed to this package.
type Variant interface {
	Kind() Kind
	variant()
}

// Painting carries the canvas type of a painting.
type Painting struct {
	CanvasType string `json:"canvas_type"`
}

func (Painting) Kind() Kind { return KindPainting }
func (Painting) variant()   {}

// Sculpture carries the material of a sculpture.
type Sculpture struct {
	Material string `json:"material"`
}

func (Sculpture) Kind() Kind { return KindSculpture }
func (Sculpture) variant()   {}

// Resolution is a width/height pixel pair.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String renders the pair as WIDTHxHEIGHT.
func (r Resolution) String() string {
	return itoa(r.Width) + "x" + itoa(r.Height)
}

// DigitalArt carries the authoring tool and pixel size of a digital piece.
type DigitalArt struct {
	Software   string     `json:"software"`
	Resolution Resolution `json:"resolution"`
}

func (DigitalArt) Kind() Kind { return KindDigitalArt }
func (DigitalArt) variant()   {}

// Record is one catalog entry. Records are never modified after
// construction: an edit builds a new *Record and swaps the repository slot,
// so any *Record held elsewhere stays a valid snapshot. Two records are the
// same entry only if they are the same pointer.
type Record struct {
	Base
	Variant Variant
}

// NewArtObject creates a record of the base kind.
func NewArtObject(base Base) *Record {
	return &Record{Base: base}
}

// NewPainting creates a painting record.
func NewPainting(base Base, canvasType string) *Record {
	return &Record{Base: base, Variant: Painting{CanvasType: canvasType}}
}

// NewSculpture creates a sculpture record.
func NewSculpture(base Base, material string) *Record {
	return &Record{Base: base, Variant: Sculpture{Material: material}}
}

// NewDigitalArt creates a digital art record.
func NewDigitalArt(base Base, software string, width, height int) *Record {
	return &Record{Base: base, Variant: DigitalArt{
		Software:   software,
		Resolution: Resolution{Width: width, Height: height},
	}}
}

// Kind returns the record's type tag.
func (r *Record) Kind() Kind {
	if r == nil || r.Variant == nil {
		return KindArtObject
	}
	return r.Variant.Kind()
}

// Equal reports whether two records hold the same field values. An empty
// image path and an absent one are the same.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Base != other.Base || r.Kind() != other.Kind() {
		return false
	}
	if r.Variant == nil {
		return true
	}
	return r.Variant == other.Variant
}

// Extras returns the two kind-specific columns used by flat formats:
// canvas type, material or software first, then the resolution for
// digital art.
func (r *Record) Extras() (string, string) {
	switch v := r.Variant.(type) {
	case Painting:
		return v.CanvasType, ""
	case Sculpture:
		return v.Material, ""
	case DigitalArt:
		return v.Software, v.Resolution.String()
	default:
		return "", ""
	}
}

// NameMatches reports whether name equals the record name ignoring case and
// surrounding space.
func (r *Record) NameMatches(name string) bool {
	return strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(name))
}
