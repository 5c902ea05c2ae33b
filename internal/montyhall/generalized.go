package montyhall

import "math/rand/v2"

// SimulateGeneralized plays numTrials games with numDoors doors. The host
// opens numDoors-2 doors, never the car and never the player's pick, so a
// single alternative remains for a switching player.
//
// With numDoors == 3 the sequence of draws taken from rng is the same as
// SimulateClassic, and identically seeded sources give identical results.
//
// The door count is validated before the trial count.
func SimulateGeneralized(rng *rand.Rand, numTrials, numDoors int, strategy Strategy) (Result, error) {
	if err := validateDoors(numDoors); err != nil {
		return Result{}, err
	}
	if err := validateTrials(numTrials); err != nil {
		return Result{}, err
	}

	d := newDealer(numDoors)
	wins := 0
	for i := 0; i < numTrials; i++ {
		trial := d.deal(rng)
		trial.finalChoice(strategy)
		if trial.Won() {
			wins++
		}
	}

	return newResult(numDoors, strategy, numTrials, wins), nil
}

// dealer holds scratch space reused between trials of one run.
type dealer struct {
	doors      int
	candidates []Door
	closed     []bool
}

func newDealer(numDoors int) *dealer {
	return &dealer{
		doors:      numDoors,
		candidates: make([]Door, 0, numDoors),
		closed:     make([]bool, numDoors),
	}
}

// deal draws one game. The returned RevealedDoors is a fresh slice owned by
// the caller.
func (d *dealer) deal(rng *rand.Rand) Trial {
	car := Door(rng.IntN(d.doors))
	initial := Door(rng.IntN(d.doors))

	d.candidates = d.candidates[:0]
	for door := Door(0); door < Door(d.doors); door++ {
		if door != car && door != initial {
			d.candidates = append(d.candidates, door)
		}
	}

	// Partial Fisher-Yates: the first k candidates become a uniform
	// k-subset drawn without replacement.
	k := d.doors - 2
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(d.candidates)-i)
		d.candidates[i], d.candidates[j] = d.candidates[j], d.candidates[i]
	}
	revealed := make([]Door, k)
	copy(revealed, d.candidates[:k])

	for i := range d.closed {
		d.closed[i] = true
	}
	d.closed[initial] = false
	for _, door := range revealed {
		d.closed[door] = false
	}
	target := Door(-1)
	for door, closed := range d.closed {
		if closed {
			target = Door(door)
			break
		}
	}

	return Trial{
		CarLocation:   car,
		InitialChoice: initial,
		RevealedDoors: revealed,
		SwitchTarget:  target,
	}
}
