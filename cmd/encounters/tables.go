package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/tables"
)

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables [type]",
		Short: "Print table coverage",
		Long: `Print every bucket of one table, or a summary of all tables. Loading the
tables verifies coverage and that every prototype exists in the catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			if len(args) == 0 {
				fmt.Fprintln(w, "TYPE\tDIE\tBUCKETS\tDESCRIPTION")
				for _, t := range set.Types() {
					table, _ := set.Get(t)
					fmt.Fprintf(w, "%s\td%d\t%d\t%s\n", t, table.Die, len(table.Buckets), table.Description)
				}
				return nil
			}

			table, ok := set.Get(tables.EncounterType(args[0]))
			if !ok {
				return fmt.Errorf("unknown encounter type %q", args[0])
			}

			fmt.Fprintln(w, "ROLLS\tRESULT")
			for _, b := range table.Buckets {
				fmt.Fprintf(w, "%s\t%s\n", b.Rolls, describeBucket(b))
			}
			return nil
		},
	}
}

func describeBucket(b tables.Bucket) string {
	if b.Meta != nil {
		return fmt.Sprintf("roll again %d time(s) on 1-%d", b.Meta.Draws, b.Meta.Reroll)
	}
	if len(b.Instructions) == 0 {
		if b.Label != "" {
			return b.Label
		}
		return "nothing"
	}

	parts := make([]string, len(b.Instructions))
	for i, in := range b.Instructions {
		var extras []string
		if len(in.Weapons) > 0 {
			extras = append(extras, strings.Join(in.Weapons, "/"))
		}
		if in.Armour > 0 {
			extras = append(extras, fmt.Sprintf("armour %d", in.Armour))
		}
		if in.Shield {
			extras = append(extras, "shield")
		}
		if sc := in.SpellCounts; sc != nil {
			extras = append(extras, fmt.Sprintf("spells %d/%d/%d", sc.Touch, sc.Ranged, sc.Support))
		}
		if len(in.Spells) > 0 {
			extras = append(extras, strings.Join(in.Spells, "/"))
		}
		if in.SpecialRule != "" {
			extras = append(extras, in.SpecialRule)
		}

		parts[i] = fmt.Sprintf("%s %s", in.Count, in.Prototype)
		if len(extras) > 0 {
			parts[i] += " (" + strings.Join(extras, ", ") + ")"
		}
	}
	return strings.Join(parts, " + ")
}
