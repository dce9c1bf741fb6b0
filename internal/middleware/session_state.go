package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"leadgen/internal/state"
)

const (
	// sessionKey is where the encoded SessionState lives in the session.
	sessionKey = "lead_state"
	// localsKey is where LoadState puts the decoded state for handlers.
	localsKey = "state"
)

// ErrNoSession is returned when the session middleware is not installed.
var ErrNoSession = errors.New("session middleware not installed")

// LoadState decodes the caller's SessionState from the session and makes it
// available to handlers through CurrentState.
func LoadState(c fiber.Ctx) error {
	c.Locals(localsKey, readState(c))
	return c.Next()
}

// CurrentState returns the caller's SessionState. A session without state
// yields the initial empty state.
func CurrentState(c fiber.Ctx) state.SessionState {
	if st, ok := c.Locals(localsKey).(state.SessionState); ok {
		return st
	}
	return readState(c)
}

// SaveState stores st as the caller's new SessionState.
func SaveState(c fiber.Ctx, st state.SessionState) error {
	sess := session.FromContext(c)
	if sess == nil {
		return ErrNoSession
	}

	data, err := state.Encode(st)
	if err != nil {
		return err
	}
	sess.Set(sessionKey, data)
	c.Locals(localsKey, st)
	return nil
}

func readState(c fiber.Ctx) state.SessionState {
	sess := session.FromContext(c)
	if sess == nil {
		return state.SessionState{}
	}

	raw, _ := sess.Get(sessionKey).(string)
	st, err := state.Decode(raw)
	if err != nil {
		// Unreadable state is dropped rather than failing every request.
		slog.Warn("discarding undecodable session state", "session", sess.ID(), "error", err)
		sess.Delete(sessionKey)
		return state.SessionState{}
	}
	return st
}
