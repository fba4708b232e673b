package config

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type customRule struct {
	tag     string
	message string
	fn      validator.Func
}

var customRules = []customRule{
	{tag: "httpurl", message: "{0} must be an absolute http or https URL", fn: isHTTPURL},
}

// newValidator reports fields by their mapstructure key, so messages name the
// YAML key a user has to fix.
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for _, rule := range customRules {
		if err := registerRule(validate, trans, rule); err != nil {
			return nil, nil, err
		}
	}
	return validate, trans, nil
}

func registerRule(validate *validator.Validate, trans ut.Translator, rule customRule) error {
	if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", rule.tag, err)
	}

	register := func(t ut.Translator) error {
		return t.Add(rule.tag, rule.message, true)
	}
	translate := func(t ut.Translator, fe validator.FieldError) string {
		// Namespace is "Config.pokeapi.base_url", the key path is what users write
		msg, _ := t.T(rule.tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return msg
	}
	if err := validate.RegisterTranslation(rule.tag, trans, register, translate); err != nil {
		return fmt.Errorf("failed to register %s translation: %w", rule.tag, err)
	}
	return nil
}

// isHTTPURL accepts absolute http(s) URLs with a host.
func isHTTPURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	default:
		return false
	}
}
