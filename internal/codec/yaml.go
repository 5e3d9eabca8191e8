package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/repository"
	"gopkg.in/yaml.v3"
)

type yamlRecord struct {
	Type        string  `yaml:"type"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Location    string  `yaml:"location"`
	ImagePath   string  `yaml:"imagePath,omitempty"`
	CanvasType  *string `yaml:"canvasType,omitempty"`
	Material    *string `yaml:"material,omitempty"`
	Software    *string `yaml:"software,omitempty"`
	ResolutionX *int    `yaml:"resolutionX,omitempty"`
	ResolutionY *int    `yaml:"resolutionY,omitempty"`
}

// YAMLCodec handles catalogs stored as a YAML sequence of mappings.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Encode writes records as a YAML sequence.
func (c *YAMLCodec) Encode(w io.Writer, records []*art.Record) error {
	doc := make([]yamlRecord, 0, len(records))
	for _, rec := range records {
		j := toJSONRecord(rec)
		doc = append(doc, yamlRecord(j))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// Decode reads a YAML sequence of records. An empty document is an empty
// catalog; any other document that is not a sequence of mappings fails with
// repository.ErrMalformed. Entries with an unknown type are skipped.
func (c *YAMLCodec) Decode(r io.Reader) ([]*art.Record, error) {
	var doc []yamlRecord
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []*art.Record{}, nil
		}
		return nil, fmt.Errorf("%w: %w", repository.ErrMalformed, err)
	}

	records := make([]*art.Record, 0, len(doc))
	for _, item := range doc {
		kind, ok := art.ParseKind(item.Type)
		if !ok {
			continue
		}
		rec, err := art.Fields{
			Kind: kind,
			Base: art.Base{
				Name:        item.Name,
				Description: item.Description,
				Price:       art.PersistedPrice(item.Price),
				Location:    item.Location,
				ImagePath:   item.ImagePath,
			},
			CanvasType:  deref(item.CanvasType),
			Material:    deref(item.Material),
			Software:    deref(item.Software),
			ResolutionX: deref(item.ResolutionX),
			ResolutionY: deref(item.ResolutionY),
		}.Build()
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
