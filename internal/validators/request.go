// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagTransactionDate is the custom tag for date strings accepted by
// models.ParseDate.
const TagTransactionDate = "txdate"

// TagMaxBytes limits the UTF-8 length of a string, unlike max which
// counts runes.
const TagMaxBytes = "maxbytes"

// TagMoney accepts amounts that fit a NUMERIC(14,2) column: at most two
// decimal places and an absolute value below MaxMoney.
const TagMoney = "money"

// MaxMoney is the exclusive upper bound of a money amount.
var MaxMoney = decimal.New(1, 12)

// RequestValidator validates request models by their `validate` tags.
// Reported field names are taken from the `json` tag so that clients see
// the names they sent.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a RequestValidator with the decimal type
// mapping and the custom tags registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// numeric tags (gt, gte) compare decimals as float64
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation(TagTransactionDate, func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation(TagMaxBytes, func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	_ = v.RegisterValidation(TagMoney, validateMoney)

	return &RequestValidator{validate: v}
}

// Validate checks obj, which must be a struct or a pointer to one. When
// fields are given only those (Go field names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating %s: %w", t.Name(), err)
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, models.FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return result
}

// validateMoney receives decimals already mapped to float64 by the custom
// type func, so the value is turned back into its shortest decimal form.
func validateMoney(fl validator.FieldLevel) bool {
	var d decimal.Decimal
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		d = decimal.NewFromFloat(fl.Field().Float())
	case reflect.String:
		var err error
		if d, err = decimal.NewFromString(fl.Field().String()); err != nil {
			return false
		}
	default:
		return false
	}
	return d.Equal(d.Round(2)) && d.Abs().LessThan(MaxMoney)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case TagMaxBytes:
		return fmt.Sprintf("must be at most %s bytes long", fe.Param())
	case TagMoney:
		return "must have at most 2 decimal places and be less than " + MaxMoney.String()
	case TagTransactionDate:
		return "must be a date in YYYY-MM-DD or RFC 3339 format"
	default:
		return "is invalid"
	}
}
