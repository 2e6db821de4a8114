package store

import "github.com/MKhiriev/go-vault-reconcile/internal/logger"

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	CipherRepository            CipherRepository
	EquivalentDomainsRepository EquivalentDomainsRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CipherRepository:            NewCipherRepository(db, logger),
		EquivalentDomainsRepository: NewEquivalentDomainsRepository(db, logger),
	}
}
