package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/artvault/internal/domain/catalog"
	"github.com/spf13/cobra"
)

func NewAddCmd(deps *Deps) *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "add --name NAME [flags]",
		Short: "add a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.mutate(cmd, func(ctx context.Context, svc *catalog.Service) (string, error) {
				rec, err := svc.Add(ctx, flags.in)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("added %s %q at #%d", rec.Kind(), rec.Name, svc.IndexOf(ctx, rec)), nil
			})
		},
	}

	flags.bind(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func NewEditCmd(deps *Deps) *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "edit INDEX [flags]",
		Short: "change fields of a record",
		Long:  "Change fields of a record. Fields without a flag keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return deps.mutate(cmd, func(ctx context.Context, svc *catalog.Service) (string, error) {
				current, err := svc.Get(ctx, index)
				if err != nil {
					return "", err
				}
				rec, err := svc.Edit(ctx, index, flags.overlay(cmd, catalog.InputFrom(current)))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("edited #%d %q", index, rec.Name), nil
			})
		},
	}

	flags.bind(cmd)
	return cmd
}

func NewRemoveCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "remove INDEX",
		Short:   "remove a record",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return deps.mutate(cmd, func(ctx context.Context, svc *catalog.Service) (string, error) {
				rec, err := svc.Remove(ctx, index)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("removed #%d %q", index, rec.Name), nil
			})
		},
	}
}

// mutate loads the catalog, applies fn and saves the result.
func (d *Deps) mutate(cmd *cobra.Command, fn func(context.Context, *catalog.Service) (string, error)) error {
	ctx := cmd.Context()
	svc, err := d.openCatalog(ctx, true)
	if err != nil {
		return err
	}
	msg, err := fn(ctx, svc)
	if err != nil {
		return err
	}
	if _, err := svc.Save(ctx, ""); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
