package console

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/anglecalc/internal/domain"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
const jsonTagParts = 2

var (
	// validate is the singleton validator instance.
	validate     *validator.Validate
	validateOnce sync.Once
)

// angleAnswer is what a user typed for one angle.
type angleAnswer struct {
	// Choice is the menu entry: "1" for radians, "2" for degrees.
	Choice string `json:"choice" validate:"required,oneof=1 2"`

	// Value is the parsed measurement.
	Value float64 `json:"value" validate:"finite"`
}

// unit maps the menu choice onto a domain unit.
func (a *angleAnswer) unit() domain.Unit {
	if a.Choice == choiceRadians {
		return domain.Radians
	}
	return domain.Degrees
}

// Validator returns the singleton validator instance.
// It initializes the validator with custom validations on first call.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Use JSON tag names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("finite", validateFinite)
	})

	return validate
}

// validateFinite rejects NaN and the infinities, which strconv happily parses.
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		v := fl.Field().Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return false
	}
}

// validateFields checks the named struct fields of the answer, or all of them when
// none are given, and converts the first failure to a domain.ValidationError.
func validateFields(a *angleAnswer, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = Validator().Struct(a)
	} else {
		err = Validator().StructPartial(a, fields...)
	}

	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fe := validationErrs[0]

	return domain.NewValidationErrorWithValue(fe.Field(), validationMessage(fe), fe.Value())
}

// validationMessages maps validation tags to messages.
// Use {param} as placeholder for the validation parameter.
var validationMessages = map[string]string{
	"required": "this field is required",
	"oneof":    "must be one of: {param}",
	"finite":   "must be a finite number",
}

// validationMessage returns a human-readable message for a validation error.
func validationMessage(fe validator.FieldError) string {
	if msg, ok := validationMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + fe.Tag()
}
