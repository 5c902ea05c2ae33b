package montyhall

// Door identifies one of the doors in a game, numbered from zero.
type Door int

// Trial is the record of a single game. RevealedDoors holds the doors the
// host opened; SwitchTarget is the one door left closed besides the
// initial choice.
type Trial struct {
	CarLocation   Door
	InitialChoice Door
	RevealedDoors []Door
	SwitchTarget  Door
	FinalChoice   Door
}

// Won reports whether the final choice hides the car.
func (t Trial) Won() bool {
	return t.FinalChoice == t.CarLocation
}

// finalChoice applies the strategy to a dealt trial.
func (t *Trial) finalChoice(strategy Strategy) {
	if strategy == Switch {
		t.FinalChoice = t.SwitchTarget
	} else {
		t.FinalChoice = t.InitialChoice
	}
}

// Result holds the aggregate of one simulation run.
type Result struct {
	Doors    int
	Strategy Strategy
	Trials   int
	Wins     int
	WinRate  float64 // Wins / Trials, in [0, 1]
}

func newResult(doors int, strategy Strategy, trials, wins int) Result {
	result := Result{
		Doors:    doors,
		Strategy: strategy,
		Trials:   trials,
		Wins:     wins,
	}
	if trials > 0 {
		result.WinRate = float64(wins) / float64(trials)
	}
	return result
}

// Expected returns the theoretical win rate for the run's doors and strategy.
func (r Result) Expected() float64 {
	return ExpectedWinRate(r.Doors, r.Strategy)
}
