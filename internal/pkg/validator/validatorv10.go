package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/cookingforum/auth/internal/pkg/strcase"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// passwordSymbols is the fixed set of symbols accepted in passwords.
const passwordSymbols = "@$!%*?&-_"

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are field names in snake_case to match typical JSON conventions.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// First returns a single violation message, picked deterministically by field
// name ordering.
func (vs V10ValidationError) First() string {
	if len(vs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return vs[keys[0]]
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	v10CustomValidation(validate, enTrans)

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError)
		for _, fe := range validateErrs {
			errV10[strcase.ToLowerSnake(fe.Field())] = fe.Translate(v.translator)
		}

		return errV10
	}

	return nil
}

//nolint:errcheck,gosec,forcetypeassert // make linter silent
func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) {
	type rule struct {
		tag     string
		message string
		check   func(p string) bool
	}

	rules := []rule{
		{
			tag:     "passupper",
			message: "{0} must contain at least one uppercase letter",
			check: func(p string) bool {
				return strings.ContainsFunc(p, unicode.IsUpper)
			},
		},
		{
			tag:     "passlower",
			message: "{0} must contain at least one lowercase letter",
			check: func(p string) bool {
				return strings.ContainsFunc(p, unicode.IsLower)
			},
		},
		{
			tag:     "passdigit",
			message: "{0} must contain at least one digit",
			check: func(p string) bool {
				return strings.ContainsFunc(p, unicode.IsDigit)
			},
		},
		{
			tag:     "passsymbol",
			message: "{0} must contain at least one of the symbols '" + passwordSymbols + "'",
			check: func(p string) bool {
				return strings.ContainsAny(p, passwordSymbols)
			},
		},
		{
			tag:     "passcharset",
			message: "{0} may contain only letters, digits and the symbols '" + passwordSymbols + "'",
			check: func(p string) bool {
				for _, r := range p {
					isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
					isDigit := r >= '0' && r <= '9'
					if !isLetter && !isDigit && !strings.ContainsRune(passwordSymbols, r) {
						return false
					}
				}
				return true
			},
		},
	}

	for _, ru := range rules {
		checkFn := ru.check
		validate.RegisterValidation(ru.tag, func(fl validator.FieldLevel) bool {
			p, ok := fl.Field().Interface().(string)
			if !ok {
				return false
			}
			return checkFn(p)
		})

		msg := ru.message
		validate.RegisterTranslation(ru.tag, enTrans,
			func(ut ut.Translator) error {
				return ut.Add(ru.tag, msg, false)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, err := ut.T(fe.Tag(), fe.Field())
				if err != nil {
					slog.Warn("warning: error translating", "FieldError", fe, "error", err)
					return fe.(error).Error()
				}

				return t
			},
		)
	}
}
