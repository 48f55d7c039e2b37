package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-encounters/internal/tables"
)

func newRollCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roll [type] [roll]",
		Short: "Resolve an encounter table",
		Long: `Resolve an encounter table and print the monsters as JSON. Examples:

  roll undead        # roll the table's die
  roll undead 90     # force a roll
  roll crypt 6       # meta bucket: draws twice more`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &encounter.ResolveEncounterInput{Type: tables.EncounterType(args[0])}
			if len(args) == 2 {
				roll, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("roll must be a number: %w", err)
				}
				input.Roll = &roll
			}

			svc, _, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.ResolveEncounter(cmd.Context(), input)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(out.Encounter, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
