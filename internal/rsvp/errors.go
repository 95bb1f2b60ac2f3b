package rsvp

import "errors"

// Expected, user-facing rejection outcomes. Each leaves the stored
// RSVP/payment/history untouched.
var (
	ErrRsvpLocked                    = errors.New("rsvp responses are locked after the deadline")
	ErrCancellationNotAllowed        = errors.New("cancellation is not allowed after the deadline")
	ErrCancelFeeConfirmationRequired = errors.New("cancellation fee must be confirmed")
	ErrCapacityExceeded              = errors.New("event is at capacity")
	ErrForbidden                     = errors.New("cannot change another member's rsvp")
	ErrEventNotFound                 = errors.New("event not found")
)

// ReasonCode maps a rejection to the code the presentation layer displays.
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, ErrRsvpLocked):
		return "rsvp_locked"
	case errors.Is(err, ErrCancellationNotAllowed):
		return "cancellation_not_allowed"
	case errors.Is(err, ErrCancelFeeConfirmationRequired):
		return "cancel_fee_confirmation_required"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return "internal_error"
	}
}
