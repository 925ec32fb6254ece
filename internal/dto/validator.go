package dto

import (
	"math"
	"reflect"

	goValidator "github.com/go-playground/validator/v10"
)

// MaxAmount is the largest magnitude a numeric(15,2) column stores.
const MaxAmount = 9999999999999.99

// NewValidator returns a validator that sees NullableFloat as its value, so
// `required` rejects absent and zero amounts alike. The `amount` tag bounds a
// value to what the money columns hold.
func NewValidator() *goValidator.Validate {
	v := goValidator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		n, ok := field.Interface().(NullableFloat)
		if !ok || !n.Valid {
			return nil
		}
		return n.Value
	}, NullableFloat{})
	_ = v.RegisterValidation("amount", validAmount)
	return v
}

func validAmount(fl goValidator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.Abs(f.Float()) <= MaxAmount
	}
	return true
}
