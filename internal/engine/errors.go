package engine

import "errors"

var (
	// ErrInvalidInput marks a rejected action argument (negative goal,
	// malformed amount, out-of-range grade). State is left unchanged.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPermissionDenied is returned when enabling notifications fails
	// because the notifier did not grant permission. The setting reverts.
	ErrPermissionDenied = errors.New("notification permission denied")
)
