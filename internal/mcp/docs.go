package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `artvault manages an ordered catalog of art records with undo/redo.

Core concepts:
- Record: one catalog entry. type is ArtObject, Painting (canvas_type), Sculpture (material) or DigitalArt (software, resolution_x, resolution_y). Every record has name, description, price, location and an optional image_path.
- Index: a record's zero-based position. Indices are not stable: removing a record shifts later records down, and undoing a removal re-appends the record at the end.
- History: every add_record, edit_record and remove_record can be undone. A new change discards anything that could have been redone. load_catalog clears the history.

Workflow:
1) Browse: list_records (optionally by name or price range), then get_record for details.
2) Change: add_record / edit_record / remove_record. Re-list before reusing an index after a removal or undo.
3) Recover: undo / redo; history_status shows what each would do.
4) Persist: save_catalog writes the configured file; load_catalog replaces the catalog with it. Both accept a bare file name (no directories) that resolves next to the configured file.

Docs:
- artvault://docs/index
- artvault://docs/formats
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "artvault://docs/index",
		Name:        "docs_index",
		Title:       "artvault docs index",
		Description: "Entry point for agent-facing docs.",
		Content: `# artvault docs

- Tools: ping, list_records, get_record, add_record, edit_record, remove_record, undo, redo, history_status, save_catalog, load_catalog, recent_activity.
- Error codes: RECORD_NOT_FOUND (index out of range), INVALID_INPUT (missing name, negative price, unknown type), UNSUPPORTED (in-memory catalog cannot be saved or loaded), PERSISTENCE_FAILED (the file could not be read or written).
- See artvault://docs/formats for the file layouts.
`,
	},
	{
		URI:         "artvault://docs/formats",
		Name:        "docs_formats",
		Title:       "Catalog file formats",
		Description: "CSV, JSON, YAML and SQLite layouts used by save_catalog and load_catalog.",
		Content: `# Catalog file formats

## CSV
Header: type,name,description,price,location,extra1,extra2,imagePath
- extra1: canvas type, material or software.
- extra2: WIDTHxHEIGHT for DigitalArt, empty otherwise.
- Fields containing a comma, quote or line break are quoted with inner quotes doubled.
- Rows with fewer than eight fields or an unknown type are skipped on load.

## JSON / YAML
A top-level array of objects with keys type, name, description, price, location, imagePath and canvasType | material | software, resolutionX, resolutionY. A document that is not an array fails to load and leaves the catalog unchanged.

## SQLite
Table art_records, one row per record ordered by position.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
