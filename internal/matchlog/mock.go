package matchlog

import "github.com/mauv0809/pingpong-ledger/internal/pingpong"

var _ LedgerStore = (*MockStore)(nil)

// MockStore is a mock implementation of the LedgerStore for testing.
type MockStore struct {
	UpsertDayFunc            func(entry pingpong.DayEntry) error
	UpsertDaysFunc           func(entries []pingpong.DayEntry) error
	GetDayEntriesFunc        func() ([]pingpong.DayEntry, error)
	AddPlayerFunc            func(name string) error
	GetRegisteredPlayersFunc func() ([]string, error)
	ClearFunc                func()

	UpsertDayCalls            []pingpong.DayEntry
	UpsertDaysCalls           [][]pingpong.DayEntry
	GetDayEntriesCalls        int
	AddPlayerCalls            []string
	GetRegisteredPlayersCalls int
	ClearCalls                int
}

func (m *MockStore) UpsertDay(entry pingpong.DayEntry) error {
	m.UpsertDayCalls = append(m.UpsertDayCalls, entry)
	if m.UpsertDayFunc != nil {
		return m.UpsertDayFunc(entry)
	}
	return nil
}

func (m *MockStore) UpsertDays(entries []pingpong.DayEntry) error {
	m.UpsertDaysCalls = append(m.UpsertDaysCalls, entries)
	if m.UpsertDaysFunc != nil {
		return m.UpsertDaysFunc(entries)
	}
	return nil
}

func (m *MockStore) GetDayEntries() ([]pingpong.DayEntry, error) {
	m.GetDayEntriesCalls++
	if m.GetDayEntriesFunc != nil {
		return m.GetDayEntriesFunc()
	}
	return nil, nil
}

func (m *MockStore) AddPlayer(name string) error {
	m.AddPlayerCalls = append(m.AddPlayerCalls, name)
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(name)
	}
	return nil
}

func (m *MockStore) GetRegisteredPlayers() ([]string, error) {
	m.GetRegisteredPlayersCalls++
	if m.GetRegisteredPlayersFunc != nil {
		return m.GetRegisteredPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
