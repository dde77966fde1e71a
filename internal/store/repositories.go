package store

import "github.com/akorchagin/smart-water/internal/logger"

// Storages bundles all repository implementations behind their interfaces.
type Storages struct {
	AccountRepository AccountRepository
}

// NewStorages wires every repository to the shared database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
	}
}
