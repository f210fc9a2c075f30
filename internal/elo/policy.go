package elo

import (
	"math"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// Policy decides the K-factor applied to a match update. Two policies ship:
// the fixed-K baseline that also backs history and expected-probability
// passes, and the margin-scaled hybrid that backs the present-day
// leaderboard.
type Policy interface {
	Name() string
	K(event pingpong.MatchEvent) float64
}

const (
	baselineK   = 24.0
	hybridBaseK = 32.0
)

type fixedK struct {
	k float64
}

// Baseline returns the fixed-K policy (K=24).
func Baseline() Policy {
	return fixedK{k: baselineK}
}

func (p fixedK) Name() string { return "baseline" }

func (p fixedK) K(pingpong.MatchEvent) float64 { return p.k }

type marginScaledK struct {
	base float64
}

// Hybrid returns the margin-scaled policy: K = 32 * (1 + min(margin/3, 2))
// when the record carries a real score, flat 32 for winloss records.
func Hybrid() Policy {
	return marginScaledK{base: hybridBaseK}
}

func (p marginScaledK) Name() string { return "hybrid" }

func (p marginScaledK) K(event pingpong.MatchEvent) float64 {
	if event.Encoding != pingpong.EncodingScore {
		return p.base
	}
	bonus := math.Min(float64(event.Margin())/3.0, 2.0)
	return p.base * (1.0 + bonus)
}
