// Package montyhall runs Monte Carlo trials of the Monty Hall game for the
// classic three door setup and for any number of doors.
package montyhall

import "fmt"

// Strategy is the player's policy once the host has opened doors.
type Strategy int

const (
	// Stay keeps the initial choice.
	Stay Strategy = iota
	// Switch moves to the only other door still closed.
	Switch
)

// Strategies lists every strategy in reporting order.
var Strategies = []Strategy{Stay, Switch}

func (s Strategy) String() string {
	switch s {
	case Stay:
		return "stay"
	case Switch:
		return "switch"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ExpectedWinRate returns the theoretical win probability for a game with
// numDoors doors: 1/n when staying and (n-1)/n when switching.
func ExpectedWinRate(numDoors int, strategy Strategy) float64 {
	if numDoors <= 0 {
		return 0
	}
	n := float64(numDoors)
	if strategy == Switch {
		return (n - 1) / n
	}
	return 1 / n
}
