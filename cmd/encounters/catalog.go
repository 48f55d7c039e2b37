package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/catalog"
	catalogrepo "github.com/KirkDiggler/rpg-encounters/internal/repositories/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the catalog snapshot in Redis",
	}

	catalogCmd.AddCommand(&cobra.Command{
		Use:   "push",
		Short: "Write the embedded catalog to Redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, cleanup, err := a.catalogRepository()
			if err != nil {
				return err
			}
			defer cleanup()

			embedded, err := catalog.LoadEmbedded()
			if err != nil {
				return err
			}

			out, err := repo.Save(cmd.Context(), catalogrepo.SaveInput{Data: embedded.Snapshot()})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d prototypes, %d weapons, %d spells to %s\n",
				out.Prototypes, out.Weapons, out.Spells, a.cfg.RedisAddr)
			return nil
		},
	})

	return catalogCmd
}
