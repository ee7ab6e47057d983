// Package views holds the console's view controllers. A controller owns the
// state one screen renders and talks to the backend through api.Client; it
// never prints anything itself.
package views

import (
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
)

type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// GenericErrorMessage is shown for transport failures and untrusted responses.
const GenericErrorMessage = "Something went wrong. Please try again."

// Outcome tells the shell where to go after an action. An empty Navigate
// means stay on the current view.
type Outcome struct {
	Navigate string
}

// lifecycle drops results that arrive after the view was unmounted. Every
// mount and unmount bumps the generation; an async result is applied only if
// the generation it started under is still current.
type lifecycle struct {
	gen atomic.Uint64
}

func (l *lifecycle) mount() uint64 { return l.gen.Add(1) }

func (l *lifecycle) current() uint64 { return l.gen.Load() }

func (l *lifecycle) live(gen uint64) bool { return l.gen.Load() == gen }

// Unmount discards any result still in flight.
func (l *lifecycle) Unmount() { l.gen.Add(1) }

// failureText picks the message for a failed call: the backend's own message
// when it sent one, fallback otherwise, and the generic text when the call
// never produced a trustworthy answer.
func failureText(err error, serverMessage, fallback string) string {
	if err != nil {
		return GenericErrorMessage
	}
	if serverMessage != "" {
		return serverMessage
	}
	return fallback
}

func isLookupFailure(err error) bool {
	return errors.Is(err, api.ErrLookupFailed)
}
