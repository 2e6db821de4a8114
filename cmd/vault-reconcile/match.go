package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-reconcile/internal/service"
	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/spf13/cobra"
)

func newMatchCmd(a *app) *cobra.Command {
	var broad bool

	cmd := &cobra.Command{
		Use:   "match <snapshot> <url>",
		Short: "List the snapshot entries that would be offered for a URL",
		Long: `Tests every URI of every live entry against the URL using the entry's match
policy, falling back to --default-match. Equivalent domains from the snapshot
are honoured.`,
		Args: cobra.ExactArgs(2),
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

			services, err := a.statelessServices(cfg, log)
			if err != nil {
				return err
			}

			url := args[1]
			defaultMatch := cfg.DefaultMatchType()
			eq := snapshot.Domains()

			matched := make([]models.Cipher, 0)
			for _, c := range snapshot.LiveCiphers() {
				for _, uri := range c.URIs {
					ok, err := services.URLMatchService.Matches(cmd.Context(), uri, url, defaultMatch, eq)
					if errors.Is(err, service.ErrDomainResolution) {
						return fmt.Errorf("match %q: %w", url, err)
					}
					if err != nil {
						log.Warn().Err(err).Str("cipher_id", c.ID).Str("uri", uri.URI).Msg("uri skipped")
						continue
					}
					if ok {
						matched = append(matched, c)
						break
					}
				}
			}

			var broadURIs []models.BroadURIGroup
			if broad {
				broadURIs, err = services.URLMatchService.FindBroadURIs(cmd.Context(), snapshot.Ciphers, defaultMatch, eq)
				if err != nil {
					return err
				}
			}

			if a.asJSON {
				return writeJSON(cmd.OutOrStdout(), matchOutput{Matches: matched, BroadURIs: broadURIs})
			}

			w := cmd.OutOrStdout()
			if len(matched) == 0 {
				warnColor.Fprintf(w, "No entries match %s\n", url)
			} else {
				headerColor.Fprintf(w, "%d entries match %s\n", len(matched), url)
				for _, c := range matched {
					printCipher(w, c, "  ")
				}
			}
			printBroadURIs(w, broadURIs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&broad, "broad", false, "Also report Domain URIs that are too broad")
	return cmd
}

type matchOutput struct {
	Matches   []models.Cipher        `json:"matches"`
	BroadURIs []models.BroadURIGroup `json:"broad_uris,omitempty"`
}
