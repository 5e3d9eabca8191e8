package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/rpggio/artvault/internal/config"
	"github.com/rpggio/artvault/internal/domain/catalog"
	"github.com/rpggio/artvault/internal/store"
	"github.com/spf13/cobra"
)

// Deps holds the state shared by every subcommand.
type Deps struct {
	// File is the catalog file. When empty the configured storage path is
	// used.
	File     string
	LogLevel string
	// LogOutput receives log lines. Defaults to the command's stderr.
	LogOutput io.Writer

	Logger *slog.Logger
}

// NewRootCmd builds the root command with its persistent flags and every
// subcommand.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:          "artvault",
		Short:        "manage an art catalog file",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.File == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				deps.File = cfg.Storage.Path
			}
			out := deps.LogOutput
			if out == nil {
				out = cmd.ErrOrStderr()
			}
			deps.Logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
				Level: config.ParseLogLevel(deps.LogLevel),
			}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&deps.File, "file", "f", deps.File, "catalog file (.csv, .json, .yaml, .db)")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		NewListCmd(deps),
		NewShowCmd(deps),
		NewAddCmd(deps),
		NewEditCmd(deps),
		NewRemoveCmd(deps),
		NewConvertCmd(deps),
	)
	return cmd
}

// openCatalog returns a service over the catalog file. A missing file is an
// empty catalog when allowMissing is set.
func (d *Deps) openCatalog(ctx context.Context, allowMissing bool) (*catalog.Service, error) {
	backend, err := store.BackendForPath(d.File)
	if err != nil {
		return nil, err
	}
	svc := catalog.NewService(store.NewFile(backend, d.Logger), catalog.Options{
		Logger:      d.Logger,
		DefaultPath: d.File,
	})
	if _, err := svc.Load(ctx, ""); err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return svc, nil
		}
		return nil, err
	}
	return svc, nil
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: index %q", catalog.ErrInvalidInput, arg)
	}
	return index, nil
}
