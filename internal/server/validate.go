package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

type requestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// newRequestValidator builds the validator for API requests. maxCount bounds
// the number of flashcards a generation request may ask for.
func newRequestValidator(maxCount int) (*requestValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("maxcount", func(fl validator.FieldLevel) bool {
		return maxCount <= 0 || fl.Field().Int() <= int64(maxCount)
	}); err != nil {
		return nil, fmt.Errorf("failed to register maxcount validation: %w", err)
	}
	if err := validate.RegisterTranslation("maxcount", trans, func(ut ut.Translator) error {
		return ut.Add("maxcount", "{0} must be {1} or less", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("maxcount", fe.Field(), fmt.Sprint(maxCount))
		return t
	}); err != nil {
		return nil, fmt.Errorf("failed to register maxcount translation: %w", err)
	}

	return &requestValidator{validate: validate, translator: trans}, nil
}

// Validate returns an InvalidArgument error carrying one BadRequest field
// violation per failed rule.
func (v *requestValidator) Validate(msg any) *connect.Error {
	err := v.validate.Struct(msg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	var fieldViolations []*errdetails.BadRequest_FieldViolation
	var messages []string
	for _, e := range validationErrors {
		description := e.Translate(v.translator)
		messages = append(messages, description)
		fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       e.Field(),
			Description: description,
		})
	}
	return invalidArgument(errors.New(strings.Join(messages, ", ")), fieldViolations...)
}

func invalidArgument(err error, fieldViolations ...*errdetails.BadRequest_FieldViolation) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	if len(fieldViolations) == 0 {
		return connectErr
	}
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: fieldViolations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}
