package main

import (
	"errors"

	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/spf13/cobra"
)

var errNoAccount = errors.New("no account id: pass --account or set account_id in the snapshot")

func newImportCmd(a *app) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "import <snapshot>",
		Short: "Import a vault snapshot into the database",
		Long: `Upserts every entry of the snapshot into the store named by --dsn under one
account. Entries without an id receive a fresh one.`,
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

			account := accountID
			if account == "" {
				account = snapshot.AccountID
			}
			if account == "" {
				return errNoAccount
			}

			services, closeDB, err := a.storedServices(cmd.Context(), cfg, nil, log)
			if err != nil {
				return err
			}
			defer closeDB()

			if err = services.VaultService.ImportCiphers(cmd.Context(), account, snapshot.Ciphers); err != nil {
				return err
			}

			okColor.Fprintf(cmd.OutOrStdout(), "Imported %d entries into account %s\n", len(snapshot.Ciphers), account)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account that owns the imported entries")
	return cmd
}
