package cli

import (
	"fmt"

	"github.com/rpggio/artvault/internal/store"
	"github.com/spf13/cobra"
)

func NewConvertCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "convert SRC DST",
		Short: "copy a catalog into another format",
		Long:  "Copy a catalog into another file. Formats follow the file extensions.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			srcBackend, err := store.BackendForPath(args[0])
			if err != nil {
				return err
			}
			dstBackend, err := store.BackendForPath(args[1])
			if err != nil {
				return err
			}

			src := store.NewFile(srcBackend, deps.Logger)
			if err := src.LoadFromFile(ctx, args[0]); err != nil {
				return err
			}
			dst := store.NewFile(dstBackend, deps.Logger)
			for i := range src.Size() {
				dst.Add(src.Get(i))
			}
			if err := dst.SaveToFile(ctx, args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "converted %d records from %s to %s\n", dst.Size(), srcBackend.Name(), dstBackend.Name())
			return nil
		},
	}
}
