// Package strategy contains the scoring engine and move selector: nine
// weighted scoring profiles over the validator and analyzer signals, a
// per-batch memoization layer for the expensive signals, and the
// deterministic argmax that picks the move to play.
package strategy

import "fmt"

// Strategy names one of the fixed scoring profiles.
type Strategy uint8

const (
	GreedyExpansion Strategy = iota
	Balanced
	Conservative
	AggressiveExpansion
	Opportunistic
	Defensive
	StrategicBlocking
	AdvancedBalanced
	TerritorialControl
)

// Default is the profile used when the caller expresses no preference.
const Default = AdvancedBalanced

var strategyNames = map[Strategy]string{
	GreedyExpansion:     "greedy",
	Balanced:            "balanced",
	Conservative:        "conservative",
	AggressiveExpansion: "aggressive",
	Opportunistic:       "opportunistic",
	Defensive:           "defensive",
	StrategicBlocking:   "blocking",
	AdvancedBalanced:    "advanced",
	TerritorialControl:  "territorial",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// FromName resolves a configuration string to a strategy.
func FromName(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return Default, fmt.Errorf("unknown strategy %q", name)
}

// All returns every strategy, in declaration order.
func All() []Strategy {
	return []Strategy{
		GreedyExpansion, Balanced, Conservative, AggressiveExpansion,
		Opportunistic, Defensive, StrategicBlocking, AdvancedBalanced,
		TerritorialControl,
	}
}
