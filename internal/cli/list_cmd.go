package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/spf13/cobra"
)

func NewListCmd(deps *Deps) *cobra.Command {
	var (
		name               string
		minPrice, maxPrice float64
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "list records, optionally filtered by name or price",
		Aliases: []string{"ls", "filter"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.openCatalog(cmd.Context(), false)
			if err != nil {
				return err
			}

			filter := art.Filter{Name: name}
			if cmd.Flags().Changed("min") {
				filter.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max") {
				filter.MaxPrice = &maxPrice
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tKIND\tNAME\tPRICE\tLOCATION")
			for _, e := range svc.List(cmd.Context(), filter).Entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					e.Index, e.Record.Kind(), e.Record.Name, art.FormatPrice(e.Record.Price), e.Record.Location)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "exact name, case-insensitive")
	cmd.Flags().Float64Var(&minPrice, "min", 0, "minimum price, inclusive")
	cmd.Flags().Float64Var(&maxPrice, "max", 0, "maximum price, inclusive")
	return cmd
}

func NewShowCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show INDEX",
		Short: "show a record's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			svc, err := deps.openCatalog(cmd.Context(), false)
			if err != nil {
				return err
			}
			rec, err := svc.Get(cmd.Context(), index)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), art.Describe(rec))
			return nil
		},
	}
}
