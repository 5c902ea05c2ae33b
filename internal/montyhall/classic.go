package montyhall

import "math/rand/v2"

// ClassicDoors is the door count of the original game.
const ClassicDoors = 3

// SimulateClassic plays numTrials three door games with the given strategy
// and returns the aggregate.
//
// Every random draw comes from rng, so two calls with identically seeded
// sources return identical results. The host opens one of the doors that is
// neither the car nor the player's pick; when two such doors exist the choice
// between them is uniform. A draw is taken even when only one door qualifies.
func SimulateClassic(rng *rand.Rand, numTrials int, strategy Strategy) (Result, error) {
	if err := validateTrials(numTrials); err != nil {
		return Result{}, err
	}

	wins := 0
	for i := 0; i < numTrials; i++ {
		trial := dealClassic(rng)
		trial.finalChoice(strategy)
		if trial.Won() {
			wins++
		}
	}

	return newResult(ClassicDoors, strategy, numTrials, wins), nil
}

// dealClassic draws the car, the player's pick and the host's door for one game.
func dealClassic(rng *rand.Rand) Trial {
	car := Door(rng.IntN(ClassicDoors))
	initial := Door(rng.IntN(ClassicDoors))

	var goats [ClassicDoors - 1]Door
	n := 0
	for d := Door(0); d < ClassicDoors; d++ {
		if d != car && d != initial {
			goats[n] = d
			n++
		}
	}
	opened := goats[rng.IntN(n)]

	return Trial{
		CarLocation:   car,
		InitialChoice: initial,
		RevealedDoors: []Door{opened},
		// Doors sum to 0+1+2, so the closed one is what remains.
		SwitchTarget: 3 - initial - opened,
	}
}
