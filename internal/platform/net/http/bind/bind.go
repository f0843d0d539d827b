// Package bind decodes request bodies and validates them with validator/v10
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"modhook/internal/core/modname"
	perr "modhook/internal/platform/errors"
	"modhook/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// TagModuleName is the validate tag for registry module names
const TagModuleName = "module_name"

type checker struct {
	v     *validator.Validate
	trans ut.Translator
}

var (
	checkerOnce sync.Once
	shared      checker

	more = (*json.Decoder).More
)

// get builds the shared validator on first use. Messages name fields by
// their json tag and are in English
func get() checker {
	checkerOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterValidation(TagModuleName, func(fl validator.FieldLevel) bool {
			return modname.Valid(fl.Field().String())
		})
		_ = v.RegisterTranslation(TagModuleName, trans,
			func(t ut.Translator) error { return t.Add(TagModuleName, "{0} is not a valid module name", true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(TagModuleName, fe.Field())
				return msg
			},
		)
		shared = checker{v: v, trans: trans}
	})
	return shared
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// DecodeJSON reads exactly one JSON document into a T. Any failure is an
// ErrorCodeJSON error
func DecodeJSON[T any](r io.Reader) (T, error) {
	var out, zero T
	dec := json.NewDecoder(r)
	switch err := dec.Decode(&out); {
	case errors.Is(err, io.EOF):
		return zero, perr.JSONErrf("empty body")
	case err != nil:
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	case more(dec):
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	return out, nil
}

// Struct checks the validate tags of v. The first failing field comes back
// as an ErrorCodeValidation error carrying the field name
func Struct(v any) error {
	err := get().v.Struct(v)
	if err == nil {
		return nil
	}
	var bad *validator.InvalidValidationError
	if errors.As(err, &bad) {
		logger.Get().Error().Err(bad).Msg("validator misuse")
		return perr.Internalf("validation error")
	}
	field, msg := FirstFailure(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// Var checks one value against tag and returns the tag that failed, or ""
func Var(value any, tag string) string {
	err := get().v.Var(value, tag)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	logger.Get().Error().Err(err).Str("tag", tag).Msg("validator misuse")
	return tag
}

// FirstFailure is the field and English message of the first validation
// failure in err
func FirstFailure(err error) (field, message string) {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return "", ""
	case errors.As(err, &verrs) && len(verrs) > 0:
		return verrs[0].Field(), verrs[0].Translate(get().trans)
	default:
		return "", err.Error()
	}
}
