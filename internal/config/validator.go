package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type customRule struct {
	tag     string
	fn      validator.Func
	message string
}

var customRules = []customRule{
	{tag: "file", fn: isFileReadable, message: "{0} must be an existing and readable file"},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// Report fields by their config key, e.g. "templates.prompt_template"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for _, rule := range customRules {
		if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", rule.tag, err)
		}
		if err := validate.RegisterTranslation(rule.tag, trans, func(ut ut.Translator) error {
			return ut.Add(rule.tag, rule.message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), configKey(fe))
			return t
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", rule.tag, err)
		}
	}

	return validate, trans, nil
}

func configKey(fe validator.FieldError) string {
	return strings.TrimPrefix(fe.Namespace(), "Config.")
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
