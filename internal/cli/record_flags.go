package cli

import (
	"github.com/rpggio/artvault/internal/domain/catalog"
	"github.com/spf13/cobra"
)

// recordFlags binds one flag per RecordInput field.
type recordFlags struct {
	in catalog.RecordInput
}

func (f *recordFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.in.Kind, "kind", "", "ArtObject, Painting, Sculpture or DigitalArt")
	fs.StringVar(&f.in.Name, "name", "", "record name")
	fs.StringVar(&f.in.Description, "description", "", "description")
	fs.Float64Var(&f.in.Price, "price", 0, "price")
	fs.StringVar(&f.in.Location, "location", "", "location")
	fs.StringVar(&f.in.ImagePath, "image", "", "image path")
	fs.StringVar(&f.in.CanvasType, "canvas", "", "canvas type (Painting)")
	fs.StringVar(&f.in.Material, "material", "", "material (Sculpture)")
	fs.StringVar(&f.in.Software, "software", "", "software (DigitalArt)")
	fs.IntVar(&f.in.ResolutionX, "width", 0, "resolution width (DigitalArt)")
	fs.IntVar(&f.in.ResolutionY, "height", 0, "resolution height (DigitalArt)")
}

// overlay copies the flags the user set onto base.
func (f *recordFlags) overlay(cmd *cobra.Command, base catalog.RecordInput) catalog.RecordInput {
	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("kind", func() { base.Kind = f.in.Kind })
	set("name", func() { base.Name = f.in.Name })
	set("description", func() { base.Description = f.in.Description })
	set("price", func() { base.Price = f.in.Price })
	set("location", func() { base.Location = f.in.Location })
	set("image", func() { base.ImagePath = f.in.ImagePath })
	set("canvas", func() { base.CanvasType = f.in.CanvasType })
	set("material", func() { base.Material = f.in.Material })
	set("software", func() { base.Software = f.in.Software })
	set("width", func() { base.ResolutionX = f.in.ResolutionX })
	set("height", func() { base.ResolutionY = f.in.ResolutionY })
	return base
}
