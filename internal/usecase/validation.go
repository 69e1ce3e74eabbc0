package usecase

import (
	"reflect"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/shopspring/decimal"
)

// newValidator returns a validator with the custom tags used by the input
// types of this package:
//
//	not_future_year  the integer is not after the current year of clock
//	player_position  the string is a known player.Position
//
// decimal.Decimal fields are compared as float64 so the numeric tags work
// on money amounts.
func newValidator(clock clockwork.Clock) *validator.Validate {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "not_future_year", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(clock.Now().Year())
	})
	mustRegister(v, "player_position", func(fl validator.FieldLevel) bool {
		return player.Position(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validateInput checks input and converts the first failing field into an
// ErrInvalidInput carrying the message registered for that field.
func validateInput(v *validator.Validate, input any, messages map[string]string) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !crerr.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return internalf(err, "validate %T", input)
	}

	first := fieldErrs[0]
	if msg, ok := messages[first.Field()]; ok {
		return InvalidInputf("%s", msg)
	}
	return InvalidInputf("%s is invalid", first.Field())
}
