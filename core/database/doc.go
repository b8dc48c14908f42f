// Package database handles the optional MySQL connection backing the transfer ledger.
//
// It wraps GORM and configures the driver with connection, read and write
// timeouts taken from the configuration. The connection is optional: when
// Enabled is false Connect returns ErrDisabled, and callers are expected to
// log and carry on without a ledger.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
