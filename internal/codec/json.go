package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/antonholmquist/jason"
	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/repository"
)

// jsonRecord is the document shape of one record. Kind-specific keys are
// present only for the kind that owns them.
type jsonRecord struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	ImagePath   string  `json:"imagePath"`
	CanvasType  *string `json:"canvasType,omitempty"`
	Material    *string `json:"material,omitempty"`
	Software    *string `json:"software,omitempty"`
	ResolutionX *int    `json:"resolutionX,omitempty"`
	ResolutionY *int    `json:"resolutionY,omitempty"`
}

// JSONCodec handles catalogs stored as a top-level JSON array of objects.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Encode writes records as an indented JSON array.
func (c *JSONCodec) Encode(w io.Writer, records []*art.Record) error {
	doc := make([]jsonRecord, 0, len(records))
	for _, rec := range records {
		doc = append(doc, toJSONRecord(rec))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func toJSONRecord(rec *art.Record) jsonRecord {
	out := jsonRecord{
		Type:        string(rec.Kind()),
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		Location:    rec.Location,
		ImagePath:   rec.ImagePath,
	}
	switch v := rec.Variant.(type) {
	case art.Painting:
		out.CanvasType = &v.CanvasType
	case art.Sculpture:
		out.Material = &v.Material
	case art.DigitalArt:
		out.Software = &v.Software
		out.ResolutionX = &v.Resolution.Width
		out.ResolutionY = &v.Resolution.Height
	}
	return out
}

// Decode reads a JSON array of record objects. A document that does not
// parse, or whose top level is not an array, fails with
// repository.ErrMalformed. Elements that are not objects or carry an unknown
// type are skipped; missing keys take their zero value.
func (c *JSONCodec) Decode(r io.Reader) ([]*art.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: document is not valid JSON", repository.ErrMalformed)
	}
	root, err := jason.NewValueFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrMalformed, err)
	}
	items, err := root.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: top level is not an array", repository.ErrMalformed)
	}

	records := make([]*art.Record, 0, len(items))
	for _, item := range items {
		obj, err := item.Object()
		if err != nil {
			continue
		}
		kind, ok := art.ParseKind(jsonString(obj, "type"))
		if !ok {
			continue
		}
		rec, err := art.Fields{
			Kind: kind,
			Base: art.Base{
				Name:        jsonString(obj, "name"),
				Description: jsonString(obj, "description"),
				Price:       art.PersistedPrice(jsonFloat(obj, "price")),
				Location:    jsonString(obj, "location"),
				ImagePath:   jsonString(obj, "imagePath"),
			},
			CanvasType:  jsonString(obj, "canvasType"),
			Material:    jsonString(obj, "material"),
			Software:    jsonString(obj, "software"),
			ResolutionX: jsonInt(obj, "resolutionX"),
			ResolutionY: jsonInt(obj, "resolutionY"),
		}.Build()
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func jsonString(obj *jason.Object, key string) string {
	s, err := obj.GetString(key)
	if err != nil {
		return ""
	}
	return s
}

func jsonFloat(obj *jason.Object, key string) float64 {
	f, err := obj.GetFloat64(key)
	if err != nil {
		return 0
	}
	return f
}

func jsonInt(obj *jason.Object, key string) int {
	n, err := obj.GetInt64(key)
	if err != nil {
		return int(jsonFloat(obj, key))
	}
	return int(n)
}
