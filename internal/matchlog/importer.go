package matchlog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// LoadFile reads a ledger JSON file: a list of day entries, each holding the
// date and that day's matches in the order they were played.
func LoadFile(path string) ([]pingpong.DayEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	var entries []pingpong.DayEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse ledger file %s: %w", path, err)
	}
	return entries, nil
}

// EnsureIDs assigns a fresh UUID to every match that is missing one and
// returns how many were assigned. Older ledger files predate match IDs.
func EnsureIDs(entries []pingpong.DayEntry) int {
	assigned := 0
	for i := range entries {
		for j := range entries[i].Matches {
			if entries[i].Matches[j].ID == "" {
				entries[i].Matches[j].ID = uuid.NewString()
				assigned++
			}
		}
	}
	return assigned
}
