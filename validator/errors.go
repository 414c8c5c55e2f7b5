package validator

import (
	"errors"
	"fmt"
)

// ErrValidatorNotFound is returned when an operation targets an identity
// key with no known ValidatorInfo.
var ErrValidatorNotFound = errors.New("validator: not found")

// ErrFundingStreamsExceedCap reports a definition whose funding stream rates
// sum to more than 10000bps. No function in this package returns it:
// AddValidatorDefinition does not check funding-stream totals, and an
// over-cap total that reaches EndEpoch makes ratemath panic.
var ErrFundingStreamsExceedCap = errors.New("validator: funding streams exceed 10000bps")

// InvalidTransitionError reports an attempted lifecycle transition whose
// preconditions were not met.
type InvalidTransitionError struct {
	Identity string
	From     Tag
	To       Tag
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("validator %s: invalid transition %s -> %s", e.Identity, e.From, e.To)
}
