package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"
)

func newParamsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "params [key=value]...",
		Short: "Build monsters from key=value parameters",
		Long: `Build one group of monsters from a scripted parameter set. Examples:

  params Name=Goblin Count=3
  params Name=Ghost Armour=1 Shield=true
  params "Name=Orc" "Weapons=Spear,Dagger" "SpecialRule=Ambush"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args)
			if err != nil {
				return err
			}

			svc, _, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.ResolveFromParameters(cmd.Context(), &encounter.ResolveFromParametersInput{
				Parameters: params,
			})
			if err != nil {
				return err
			}

			for _, d := range out.Diagnostics {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", d)
			}

			data, err := json.MarshalIndent(out.Monsters, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// parseParams splits key=value arguments. Values may contain '='.
func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		params[strings.TrimSpace(key)] = value
	}
	return params, nil
}
