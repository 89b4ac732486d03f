package engine

import (
	"errors"
	"fmt"
)

// ErrInsufficientCoins is returned by coin spends that would go negative.
// The balance is left unchanged.
var ErrInsufficientCoins = errors.New("not enough coins")

// ValidationError indicates rejected caller input. The engine keeps running;
// the caller decides how to surface it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
