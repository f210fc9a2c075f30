package matchlog

import "github.com/mauv0809/pingpong-ledger/internal/pingpong"

// LedgerStore defines the interface for reading and writing the match
// ledger. The statistics engines only ever read from it.
type LedgerStore interface {
	UpsertDay(entry pingpong.DayEntry) error
	UpsertDays(entries []pingpong.DayEntry) error
	GetDayEntries() ([]pingpong.DayEntry, error)
	AddPlayer(name string) error
	GetRegisteredPlayers() ([]string, error)
	Clear()
}
