// Package store persists ledger snapshots. The ledger itself never touches
// storage; a store is invoked around it by whoever owns the session.
package store

import "github.com/arifulislam08173/bd-stockmarket-simulation/ledger"

type Store interface {
	// Save replaces the stored snapshot with snap.
	Save(snap ledger.Snapshot) error
	// Load returns the stored snapshot. ok is false when nothing has been
	// saved yet; an error means the stored state is unusable.
	Load() (snap ledger.Snapshot, ok bool, err error)
	Close() error
}
