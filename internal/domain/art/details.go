package art

import (
	"math"
	"strconv"
	"strings"
)

// Describe renders a multi-line human readable summary of rec.
func Describe(rec *Record) string {
	if rec == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("Name: " + rec.Name)
	b.WriteString("\nDescription: " + rec.Description)
	b.WriteString("\nPrice: " + FormatPrice(rec.Price))
	b.WriteString("\nLocation: " + rec.Location)

	switch v := rec.Variant.(type) {
	case Painting:
		b.WriteString("\nCanvas Type: " + v.CanvasType)
	case Sculpture:
		b.WriteString("\nMaterial: " + v.Material)
	case DigitalArt:
		b.WriteString("\nSoftware: " + v.Software)
		b.WriteString("\nResolution: " + v.Resolution.String())
	}
	if rec.ImagePath != "" {
		b.WriteString("\nImage: " + rec.ImagePath)
	}
	return b.String()
}

// PersistedPrice maps a price read from storage to a usable one. NaN,
// infinite and negative values read as 0.
func PersistedPrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}

// FormatPrice renders a price in the shortest form that parses back to the
// same value.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func itoa(n int) string { return strconv.Itoa(n) }
