package matchlog

import (
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new LedgerStore backed by the given database.
func New(db *sql.DB) LedgerStore {
	return &store{
		db: db,
	}
}

// UpsertDay replaces the stored matches for the entry's date. Replacing the
// whole day keeps the on-disk order identical to the entry's slice order.
func (s *store) UpsertDay(entry pingpong.DayEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := s.upsertDayLocked(tx, entry); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// UpsertDays replaces every given day in a single transaction.
func (s *store) UpsertDays(entries []pingpong.DayEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := s.upsertDayLocked(tx, entry); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *store) upsertDayLocked(tx *sql.Tx, entry pingpong.DayEntry) error {
	if _, err := tx.Exec("DELETE FROM matches WHERE match_date = ?", entry.Date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO matches (id, match_date, position, raw_json)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			match_date = excluded.match_date,
			position = excluded.position,
			raw_json = excluded.raw_json;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, raw := range entry.Matches {
		rawJSON, err := json.Marshal(raw)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(raw.ID, entry.Date, i, rawJSON); err != nil {
			return err
		}
	}
	return nil
}

// GetDayEntries retrieves the full ledger grouped by date, in stored order.
func (s *store) GetDayEntries() ([]pingpong.DayEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, match_date, raw_json
		FROM matches
		ORDER BY match_date, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []pingpong.DayEntry
	for rows.Next() {
		var id, date string
		var rawJSON string
		if err := rows.Scan(&id, &date, &rawJSON); err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}

		var raw pingpong.RawMatch
		if err := json.Unmarshal([]byte(rawJSON), &raw); err != nil {
			log.Error("Failed to unmarshal raw_json", "error", err, "matchID", id)
			continue
		}
		raw.ID = id

		if len(entries) == 0 || entries[len(entries)-1].Date != date {
			entries = append(entries, pingpong.DayEntry{Date: date})
		}
		last := &entries[len(entries)-1]
		last.Matches = append(last.Matches, raw)
	}
	return entries, rows.Err()
}

// AddPlayer registers a player so they show up in the stats table even
// before their first match. Adding the same name twice is a no-op.
func (s *store) AddPlayer(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("INSERT INTO players (name) VALUES (?) ON CONFLICT(name) DO NOTHING", name)
	if err != nil {
		log.Error("Failed to add player", "error", err, "name", name)
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info("Registered new player", "name", name)
	}
	return nil
}

func (s *store) GetRegisteredPlayers() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT name FROM players ORDER BY name")
	if err != nil {
		log.Error("Failed to query registered players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		log.Error("Failed to clear matches table", "error", err)
		tx.Rollback()
		return
	}

	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		log.Error("Failed to clear players table", "error", err)
		tx.Rollback()
		return
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
