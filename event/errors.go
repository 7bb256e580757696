package event

import (
	tzerrors "github.com/hrygo/eventtz/internal/errors"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrInvalidTimezone is returned when a timezone name does not resolve.
	ErrInvalidTimezone error = tzerrors.Sentinel(tzerrors.ErrCodeInvalidTimezone)
	// ErrInstantiationDisabled is returned when a Moment is built without a normalizing factory.
	ErrInstantiationDisabled error = tzerrors.Sentinel(tzerrors.ErrCodeInstantiationDisabled)
	// ErrTypeMismatch is returned for datetime inputs of an unsupported type.
	ErrTypeMismatch error = tzerrors.Sentinel(tzerrors.ErrCodeTypeMismatch)
	// ErrInvalidArgument is returned for nil contexts and unknown units.
	ErrInvalidArgument error = tzerrors.Sentinel(tzerrors.ErrCodeInvalidArgument)
	// ErrParseFailed is returned when no supported layout accepts a datetime string.
	ErrParseFailed error = tzerrors.Sentinel(tzerrors.ErrCodeParseFailed)
)
