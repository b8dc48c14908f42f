// Package ledger records completed artifact transfers in MySQL.
//
// Repository implements artifacts.Recorder. It is only wired when the
// database is enabled; without it transfers are logged but not persisted.
package ledger
