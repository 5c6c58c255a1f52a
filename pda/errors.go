package pda

import "errors"

// ErrAlreadyRunning is returned by Driver.Start while a run is live.
// Normal automaton execution never returns errors; only lifecycle misuse
// and definition loading do.
var ErrAlreadyRunning = errors.New("simulation already running")
