package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/repository"
)

// SnapshotBackend stores a whole catalog in a SQLite file, one row per
// record keyed by its position.
type SnapshotBackend struct{}

var _ repository.Backend = (*SnapshotBackend)(nil)

// NewSnapshotBackend creates a new SnapshotBackend
func NewSnapshotBackend() *SnapshotBackend {
	return &SnapshotBackend{}
}

// Name returns the backend identifier
func (b *SnapshotBackend) Name() string {
	return "sqlite"
}

func openCatalog(path string) (*DB, error) {
	db, err := New(path)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// openReadOnly opens an existing database without creating or altering it.
func openReadOnly(path string) (*DB, error) {
	dsn := (&url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}).String()
	return New(dsn)
}

// Load reads every record ordered by position. The file is opened read-only.
// A missing file wraps os.ErrNotExist, a database without the catalog table
// wraps repository.ErrMalformed, and rows with an unknown type are skipped.
func (b *SnapshotBackend) Load(ctx context.Context, path string) ([]*art.Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	db, err := openReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var tables int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'art_records'`,
	).Scan(&tables)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrMalformed, err)
	}
	if tables == 0 {
		return nil, fmt.Errorf("%w: %s has no art_records table", repository.ErrMalformed, path)
	}

	query := `
		SELECT type, name, description, price, location, image_path,
			canvas_type, material, software, resolution_x, resolution_y
		FROM art_records
		ORDER BY position
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []*art.Record{}
	for rows.Next() {
		var (
			tag                            string
			fields                         art.Fields
			canvasType, material, software sql.NullString
			resX, resY                     sql.NullInt64
		)
		if err := rows.Scan(
			&tag,
			&fields.Name,
			&fields.Description,
			&fields.Price,
			&fields.Location,
			&fields.ImagePath,
			&canvasType,
			&material,
			&software,
			&resX,
			&resY,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		kind, ok := art.ParseKind(tag)
		if !ok {
			continue
		}
		fields.Kind = kind
		fields.Price = art.PersistedPrice(fields.Price)
		fields.CanvasType = canvasType.String
		fields.Material = material.String
		fields.Software = software.String
		fields.ResolutionX = int(resX.Int64)
		fields.ResolutionY = int(resY.Int64)

		rec, err := fields.Build()
		if err != nil {
			continue
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	return records, nil
}

// Save replaces the stored catalog with records in one transaction.
func (b *SnapshotBackend) Save(ctx context.Context, path string, records []*art.Record) error {
	db, err := openCatalog(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM art_records`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO art_records (
			position, type, name, description, price, location, image_path,
			canvas_type, material, software, resolution_x, resolution_y
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		var (
			canvasType, material, software sql.NullString
			resX, resY                     sql.NullInt64
		)
		switch v := rec.Variant.(type) {
		case art.Painting:
			canvasType = sql.NullString{String: v.CanvasType, Valid: true}
		case art.Sculpture:
			material = sql.NullString{String: v.Material, Valid: true}
		case art.DigitalArt:
			software = sql.NullString{String: v.Software, Valid: true}
			resX = sql.NullInt64{Int64: int64(v.Resolution.Width), Valid: true}
			resY = sql.NullInt64{Int64: int64(v.Resolution.Height), Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			i,
			string(rec.Kind()),
			rec.Name,
			rec.Description,
			rec.Price,
			rec.Location,
			rec.ImagePath,
			canvasType,
			material,
			software,
			resX,
			resY,
		); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	return nil
}
