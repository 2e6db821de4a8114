package main

import (
	"fmt"

	"github.com/MKhiriev/go-vault-reconcile/internal/service"
	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/MKhiriev/go-vault-reconcile/internal/validators"
	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/spf13/cobra"
)

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <snapshot> [cipher-id...]",
		Short: "Merge entries of a vault snapshot into one",
		Long: `Merges the named entries, in the given order, into a single entry. The first
id wins ties. Without ids every entry of the snapshot is merged.`,
		Args: cobra.MinimumNArgs(1),
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

			cluster, err := selectCiphers(snapshot.Ciphers, args[1:])
			if err != nil {
				return err
			}
			if err = validators.NewCipherValidator().Validate(cmd.Context(), models.MergeRequest{Ciphers: cluster}); err != nil {
				return fmt.Errorf("snapshot %s: %w", args[0], err)
			}

			services, err := a.statelessServices(cfg, log)
			if err != nil {
				return err
			}

			merged, err := services.MergeService.Merge(cluster)
			if err != nil {
				return err
			}
			log.Debug().Int("ciphers", len(cluster)).Msg("entries merged")

			if a.asJSON {
				return writeJSON(cmd.OutOrStdout(), merged)
			}
			headerColor.Fprintf(cmd.OutOrStdout(), "Merged %d entries\n", len(cluster))
			printCipher(cmd.OutOrStdout(), merged, "")
			return nil
		},
	}
}

// selectCiphers picks the ciphers named by ids in that order. No ids
// selects everything.
func selectCiphers(ciphers []models.Cipher, ids []string) ([]models.Cipher, error) {
	if len(ids) == 0 {
		return ciphers, nil
	}

	byID := make(map[string]models.Cipher, len(ciphers))
	for _, c := range ciphers {
		byID[c.ID] = c
	}

	selected := make([]models.Cipher, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", service.ErrCipherNotFound, id)
		}
		selected = append(selected, c)
	}
	return selected, nil
}
