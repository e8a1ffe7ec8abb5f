package validator

import (
	"errors"
	"regexp"
	"zeit/config"
	"zeit/shared/failure"

	val "github.com/go-playground/validator/v10"
)

// TimeQuery carries the query parameters of a time request through
// validation. The tzformat rule is the structural Region/City pre-check and
// only bites when APP_STRICT_ZONE_FORMAT is on.
type TimeQuery struct {
	Timezone string `validate:"required,tzformat"`
}

var validate *val.Validate

// zonePattern is the legacy structural shape: slash-separated segments of
// letters and underscores, at least two segments. Note it rejects real
// single-segment identifiers such as "UTC".
var zonePattern = regexp.MustCompile(`^[A-Za-z_]+(/[A-Za-z_]+)+$`)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("tzformat", func(fl val.FieldLevel) bool {
		if !config.Get().App.StrictZoneFormat {
			return true
		}

		return zonePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidateTimeQuery checks the query DTO and converts the first violation
// into the API's structured bad-request failure.
func ValidateTimeQuery(query TimeQuery) error {
	err := validate.Struct(query)
	if err == nil {
		return nil
	}

	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return failure.InternalError(err)
	}

	return failure.BadRequestFromString(messageForTag(fieldErrors[0].Tag()))
}
