package main

import (
	"fmt"

	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/MKhiriev/go-vault-reconcile/internal/validators"
	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/spf13/cobra"
)

func newDuplicatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates <snapshot>",
		Short: "List groups of likely duplicate entries in a vault snapshot",
		Long: `Scores every pair of entries in the snapshot and prints the groups whose
similarity exceeds the configured sensitivity (--sensitivity).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			log := a.cliLogger()

			snapshot, err := store.ReadVaultSnapshot(args[0])
			if err != nil {
				return err
			}
			if err = validators.NewCipherValidator().Validate(cmd.Context(), models.DuplicatesRequest{Ciphers: snapshot.Ciphers}); err != nil {
				return fmt.Errorf("snapshot %s: %w", args[0], err)
			}

			services, err := a.statelessServices(cfg, log)
			if err != nil {
				return err
			}

			live := snapshot.LiveCiphers()
			groups, err := services.DuplicateService.FindDuplicates(cmd.Context(), live, cfg.DefaultSensitivity())
			if err != nil {
				return err
			}
			log.Debug().Int("ciphers", len(live)).Int("groups", len(groups)).Msg("duplicate scan finished")

			if a.asJSON {
				if groups == nil {
					groups = []models.DuplicateGroup{}
				}
				return writeJSON(cmd.OutOrStdout(), models.DuplicatesResponse{Groups: groups, Length: len(groups)})
			}
			printDuplicateGroups(cmd.OutOrStdout(), groups)
			return nil
		},
	}
}
