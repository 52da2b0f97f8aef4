package engine

import "errors"

// Sentinel errors. Operations wrap these with fmt.Errorf("%w: ...") so hosts
// classify failures with errors.Is while still seeing the specifics.
var (
	// ErrPhaseMismatch is returned when an operation is invoked outside the
	// phase (or by a player other than the one) it belongs to.
	ErrPhaseMismatch = errors.New("phase mismatch")

	// ErrNotFound is returned when a referenced player, card, milestone or
	// award does not exist in the expected zone.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyClaimed guards milestone (and other one-shot selection)
	// idempotency.
	ErrAlreadyClaimed = errors.New("already claimed")

	// ErrAlreadyFunded guards award funding idempotency.
	ErrAlreadyFunded = errors.New("already funded")

	// ErrInsufficientResource is returned when a cost or conversion cannot be
	// covered. Nothing has been deducted when it is returned.
	ErrInsufficientResource = errors.New("insufficient resource")

	// ErrActionBudgetExceeded is returned for a third non-pass action in one
	// turn.
	ErrActionBudgetExceeded = errors.New("action budget exceeded")

	// ErrAwaitingInput is a control signal, not a failure: a deferred effect
	// needs a decision before the engine can proceed. Supply it and retry.
	ErrAwaitingInput = errors.New("awaiting input")

	// ErrInvalidSelectionCount is returned when a selection has the wrong
	// number of elements (draft picks, prelude picks, research buys).
	ErrInvalidSelectionCount = errors.New("invalid selection count")

	// ErrGameOver is returned for any mutating operation after the End phase.
	ErrGameOver = errors.New("game over")
)
