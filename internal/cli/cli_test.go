package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/artvault/internal/cli"
	"github.com/rpggio/artvault/internal/domain/catalog"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd(&cli.Deps{LogOutput: io.Discard})
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seed(t *testing.T, file string) {
	t.Helper()
	_, err := run(t, "-f", file, "add", "--kind", "Painting", "--name", "Mona", "--price", "100", "--canvas", "Linen")
	require.NoError(t, err)
	_, err = run(t, "-f", file, "add", "--kind", "Sculpture", "--name", "David", "--price", "250", "--material", "Marble")
	require.NoError(t, err)
	_, err = run(t, "-f", file, "add", "--kind", "DigitalArt", "--name", "Pixels", "--price", "40",
		"--software", "Krita", "--width", "1920", "--height", "1080")
	require.NoError(t, err)
}

func TestAddCreatesCatalog(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.json")

	out, err := run(t, "-f", file, "add", "--kind", "Painting", "--name", "Mona", "--price", "100")
	require.NoError(t, err)
	require.Contains(t, out, `added Painting "Mona" at #0`)

	_, err = os.Stat(file)
	require.NoError(t, err)
}

func TestAddRequiresName(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.json")

	_, err := run(t, "-f", file, "add", "--kind", "Painting")
	require.Error(t, err)

	_, err = run(t, "-f", file, "add", "--name", "Bad", "--price", "-1")
	require.ErrorIs(t, err, catalog.ErrInvalidInput)

	_, err = os.Stat(file)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAndFilter(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.yaml")
	seed(t, file)

	out, err := run(t, "-f", file, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Mona")
	require.Contains(t, out, "David")
	require.Contains(t, out, "Pixels")

	out, err = run(t, "-f", file, "list", "--name", "  david ")
	require.NoError(t, err)
	require.Contains(t, out, "David")
	require.NotContains(t, out, "Mona")

	out, err = run(t, "-f", file, "filter", "--min", "100")
	require.NoError(t, err)
	require.Contains(t, out, "Mona")
	require.Contains(t, out, "David")
	require.NotContains(t, out, "Pixels")

	out, err = run(t, "-f", file, "list", "--max", "100")
	require.NoError(t, err)
	require.Contains(t, out, "Mona")
	require.NotContains(t, out, "David")
}

func TestListMissingFile(t *testing.T) {
	_, err := run(t, "-f", filepath.Join(t.TempDir(), "none.csv"), "list")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestShow(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.csv")
	seed(t, file)

	out, err := run(t, "-f", file, "show", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Name: Pixels")
	require.Contains(t, out, "Software: Krita")
	require.Contains(t, out, "Resolution: 1920x1080")

	_, err = run(t, "-f", file, "show", "3")
	require.ErrorIs(t, err, catalog.ErrRecordNotFound)

	_, err = run(t, "-f", file, "show", "x")
	require.ErrorIs(t, err, catalog.ErrInvalidInput)
}

func TestEditKeepsUnsetFields(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.json")
	seed(t, file)

	out, err := run(t, "-f", file, "edit", "0", "--price", "120")
	require.NoError(t, err)
	require.Contains(t, out, `edited #0 "Mona"`)

	out, err = run(t, "-f", file, "show", "0")
	require.NoError(t, err)
	require.Contains(t, out, "Price: 120")
	require.Contains(t, out, "Canvas Type: Linen")

	_, err = run(t, "-f", file, "edit", "9", "--price", "1")
	require.ErrorIs(t, err, catalog.ErrRecordNotFound)
}

func TestRemove(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.db")
	seed(t, file)

	out, err := run(t, "-f", file, "remove", "0")
	require.NoError(t, err)
	require.Contains(t, out, `removed #0 "Mona"`)

	out, err = run(t, "-f", file, "show", "0")
	require.NoError(t, err)
	require.Contains(t, out, "Name: David")

	_, err = run(t, "-f", file, "rm", "5")
	require.ErrorIs(t, err, catalog.ErrRecordNotFound)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "catalog.csv")
	dst := filepath.Join(dir, "catalog.sqlite")
	seed(t, src)

	out, err := run(t, "convert", src, dst)
	require.NoError(t, err)
	require.Contains(t, out, "converted 3 records from csv to sqlite")

	out, err = run(t, "-f", dst, "show", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Material: Marble")
}

func TestConvertUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "catalog.json")
	seed(t, src)

	_, err := run(t, "convert", src, filepath.Join(dir, "catalog.xml"))
	require.Error(t, err)
}
