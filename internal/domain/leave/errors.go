package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrRejectionReasonEmpty = errors.New("rejection requires a reason")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
)
