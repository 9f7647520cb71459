package ledger

import (
	"errors"

	"github.com/faizmokh/makan/internal/nutrition"
)

// ErrDuplicateID is returned when an appended record reuses an id already in the ledger.
var ErrDuplicateID = errors.New("duplicate id")

// ErrUnsupportedVersion indicates a state blob written by a newer release.
var ErrUnsupportedVersion = errors.New("unsupported state version")

// ValidationError reports a rejected input value.
type ValidationError = nutrition.ValidationError
