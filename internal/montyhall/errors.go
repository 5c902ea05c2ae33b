package montyhall

import (
	"errors"
	"fmt"
)

// MinDoors is the smallest door count for which the host can open a door.
const MinDoors = 3

// ErrInvalidArgument is wrapped by every validation error returned by the
// simulators.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNonPositiveTrialCount indicates a simulation was asked to run fewer than one trial.
var ErrNonPositiveTrialCount = fmt.Errorf("%w: trial count must be positive", ErrInvalidArgument)

// ErrDoorCountBelowMinimum indicates a generalized game with fewer than MinDoors doors.
var ErrDoorCountBelowMinimum = fmt.Errorf("%w: door count must be at least %d", ErrInvalidArgument, MinDoors)

func validateTrials(numTrials int) error {
	if numTrials < 1 {
		return fmt.Errorf("%w (got %d)", ErrNonPositiveTrialCount, numTrials)
	}
	return nil
}

func validateDoors(numDoors int) error {
	if numDoors < MinDoors {
		return fmt.Errorf("%w (got %d)", ErrDoorCountBelowMinimum, numDoors)
	}
	return nil
}
