package validator

import (
	"fmt"
	"strings"
)

// Default failure messages. The first verb is always the property name.
const (
	msgNotNull            = "The %s field cannot be null."
	msgNull               = "The %s field must be null."
	msgNotEmpty           = "The %s field cannot be empty."
	msgEmpty              = "The %s field must be empty."
	msgMinLength          = "The %s field must be at least %d characters long."
	msgMaxLength          = "The %s field must be at most %d characters long."
	msgLength             = "The %s field must be between %d and %d characters long."
	msgMatches            = "The %s field does not have the correct format."
	msgEmail              = "The %s field must be a valid email address."
	msgURL                = "The %s field must be a valid URL."
	msgUUID               = "The %s field must be a valid UUID."
	msgStartsWith         = "The %s field must start with '%s'."
	msgEndsWith           = "The %s field must end with '%s'."
	msgContains           = "The %s field must contain '%s'."
	msgEqual              = "The %s field must be equal to %v."
	msgNotEqual           = "The %s field must not be equal to %v."
	msgGreaterThan        = "The %s field must be greater than %v."
	msgGreaterThanOrEqual = "The %s field must be greater than or equal to %v."
	msgLessThan           = "The %s field must be less than %v."
	msgLessThanOrEqual    = "The %s field must be less than or equal to %v."
	msgBetween            = "The %s field must be between %v and %v."
	msgPositive           = "The %s field must be a positive number."
	msgNegative           = "The %s field must be a negative number."
	msgNotZero            = "The %s field cannot be zero."
	msgFutureDate         = "The %s field must be a future date."
	msgPastDate           = "The %s field must be a past date."
	msgToday              = "The %s field must be today's date."
	msgIn                 = "The %s field must be one of the following values: %s."
	msgCount              = "The %s field must contain exactly %d items."
	msgNotEmptyCollection = "The %s field must contain at least one item."
	msgAlpha              = "The %s field must contain only letters."
	msgAlphanumeric       = "The %s field must contain only letters and numbers."
	msgNumeric            = "The %s field must contain only numbers."
	msgInvalid            = "The %s field is not valid."
	msgDependent          = "The %s field is not valid in relation to %s."
)

func joinValues[P any](values []P) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
