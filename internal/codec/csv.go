package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rpggio/artvault/internal/domain/art"
)

const csvHeader = "type,name,description,price,location,extra1,extra2,imagePath"

// csvColumns is the minimum field count of a usable data row.
const csvColumns = 8

// CSVCodec handles the delimited-text catalog format: a header row, then
// one row per record with the two kind-specific columns in extra1/extra2.
type CSVCodec struct{}

// NewCSVCodec creates a new CSV codec
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// Format returns the codec format identifier
func (c *CSVCodec) Format() string {
	return "csv"
}

// Encode writes the header and one row per record.
func (c *CSVCodec) Encode(w io.Writer, records []*art.Record) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(csvHeader)
	bw.WriteByte('\n')

	for _, rec := range records {
		extra1, extra2 := rec.Extras()
		fields := []string{
			string(rec.Kind()),
			rec.Name,
			rec.Description,
			art.FormatPrice(rec.Price),
			rec.Location,
			extra1,
			extra2,
			rec.ImagePath,
		}
		for i, f := range fields {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(escapeCSV(f))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// Decode parses a catalog. The first row is the header. Rows with fewer
// than eight fields or an unknown type tag are skipped.
func (c *CSVCodec) Decode(r io.Reader) ([]*art.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	rows := parseCSV(string(data))
	records := make([]*art.Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < csvColumns {
			continue
		}
		rec, ok := recordFromRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func recordFromRow(row []string) (*art.Record, bool) {
	kind, ok := art.ParseKind(row[0])
	if !ok {
		return nil, false
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		price = 0
	}
	base := art.Base{
		Name:        row[1],
		Description: row[2],
		Price:       art.PersistedPrice(price),
		Location:    row[4],
		ImagePath:   row[7],
	}
	extra1, extra2 := row[5], row[6]

	switch kind {
	case art.KindPainting:
		return art.NewPainting(base, extra1), true
	case art.KindSculpture:
		return art.NewSculpture(base, extra1), true
	case art.KindDigitalArt:
		width, height := parseResolution(extra2)
		return art.NewDigitalArt(base, extra1, width, height), true
	default:
		return art.NewArtObject(base), true
	}
}

// parseResolution splits WIDTHxHEIGHT; each side defaults to 0 when absent
// or not a number.
func parseResolution(s string) (int, int) {
	parts := strings.Split(s, "x")
	dim := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0
		}
		return n
	}
	return dim(0), dim(1)
}

// escapeCSV quotes a field, doubling inner quotes, iff it holds a comma, a
// quote or a line break.
func escapeCSV(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// parseCSV splits data into rows of fields. Inside quotes a doubled quote
// is a literal quote and line breaks belong to the field; any other quote
// toggles the quoted state. Blank lines produce no row.
func parseCSV(data string) [][]string {
	var (
		rows     [][]string
		fields   []string
		current  strings.Builder
		inQuotes bool
		touched  bool
	)

	endRow := func() {
		if touched {
			fields = append(fields, current.String())
			rows = append(rows, fields)
		}
		fields = nil
		current.Reset()
		touched = false
	}

	for i := 0; i < len(data); i++ {
		ch := data[i]
		switch {
		case ch == '"':
			touched = true
			if inQuotes && i+1 < len(data) && data[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			touched = true
			fields = append(fields, current.String())
			current.Reset()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			if ch != ' ' && ch != '\t' {
				touched = true
			}
			current.WriteByte(ch)
		}
	}
	endRow()

	return rows
}
