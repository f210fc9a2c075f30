package stats

import (
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// ServingRotations tracks how the serving rotation plays out when the same
// four players keep meeting: win rates per directed server/receiver pairing
// and per normalized team configuration. Only score-encoded doubles matches
// with a winner count.
func ServingRotations(events []pingpong.MatchEvent) ServingStats {
	s := ServingStats{
		PlayerPairs: make(map[string]map[string]*PairRecord),
		MatchGroups: make(map[string]*MatchGroup),
	}

	pair := func(from, to string) *PairRecord {
		if _, ok := s.PlayerPairs[from]; !ok {
			s.PlayerPairs[from] = make(map[string]*PairRecord)
		}
		if _, ok := s.PlayerPairs[from][to]; !ok {
			s.PlayerPairs[from][to] = &PairRecord{}
		}
		return s.PlayerPairs[from][to]
	}
	record := func(from, to string, won bool) {
		r := pair(from, to)
		r.Matches++
		if won {
			r.Wins++
		}
	}

	for _, e := range events {
		if e.Kind != pingpong.KindDoubles || e.Encoding != pingpong.EncodingScore || e.Winner == pingpong.SideNone {
			continue
		}
		server, t1Partner := e.Team1.Lead, e.Team1.Partner
		receiver, t2Partner := e.Team2.Lead, e.Team2.Partner
		team1Won := e.Winner == pingpong.Side1

		groupKey := pingpong.GroupKey(server, t1Partner, receiver, t2Partner)
		group, ok := s.MatchGroups[groupKey]
		if !ok {
			group = &MatchGroup{Configurations: make(map[string]*Configuration)}
			s.MatchGroups[groupKey] = group
		}
		group.Matches++

		// Normalize the configuration so neither side nor player order
		// matters; wins track the left (lexicographically first) pair.
		t1cfg := pingpong.GroupKey(server, t1Partner)
		t2cfg := pingpong.GroupKey(receiver, t2Partner)
		leftWon := team1Won
		configKey := t1cfg + "," + t2cfg
		if t1cfg > t2cfg {
			configKey = t2cfg + "," + t1cfg
			leftWon = !team1Won
		}
		config, ok := group.Configurations[configKey]
		if !ok {
			config = &Configuration{}
			group.Configurations[configKey] = config
		}
		config.Matches++
		if leftWon {
			config.Wins++
		}

		// The rotation cycle: server → receiver → server's partner →
		// receiver's partner → server.
		record(server, receiver, team1Won)
		record(receiver, t1Partner, !team1Won)
		record(t1Partner, t2Partner, team1Won)
		record(t2Partner, server, !team1Won)
	}

	for _, receivers := range s.PlayerPairs {
		for _, r := range receivers {
			r.WinRate = percentage(r.Wins, r.Matches)
		}
	}
	for _, group := range s.MatchGroups {
		for _, config := range group.Configurations {
			config.WinRate = percentage(config.Wins, config.Matches)
		}
	}
	return s
}
