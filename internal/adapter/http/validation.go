package http

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// money fields are decimals; numeric tags see them as float64
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// member/loan/cycle ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		if d, ok := rawDecimal(fl); ok {
			return d.Equal(d.Round(2))
		}
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// rawDecimal returns the decimal behind a field the custom type func has
// already turned into a float64.
func rawDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	f := parent.FieldByName(fl.StructFieldName())
	if !f.IsValid() || !f.CanInterface() {
		return decimal.Decimal{}, false
	}
	d, ok := f.Interface().(decimal.Decimal)
	return d, ok
}

// fieldMessages renders one validator tag; %s is the tag parameter.
var fieldMessages = map[string]string{
	"required": "is required",
	"hex32":    "must be 32-char lowercase hex",
	"dec2":     "must have at most 2 decimal places",
	"datetime": "must be a date in YYYY-MM-DD format",
	"email":    "must be a valid email address",
	"oneof":    "must be one of: %s",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
}

// ToFieldErrors flattens validator errors into API details. Anything that
// is not a validation error becomes a single "_" entry.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		msg, ok := fieldMessages[fe.Tag()]
		switch {
		case !ok:
			msg = fe.Tag() + " validation failed"
		case strings.Contains(msg, "%s"):
			msg = fmt.Sprintf(msg, fe.Param())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
