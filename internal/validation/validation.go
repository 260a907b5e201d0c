package validation

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog"
)

// Validator validates request payloads and translates violations into
// human-readable messages.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator creates a Validator with English translations registered.
func NewValidator(logger *zerolog.Logger) *Validator {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		logger.Fatal().Err(err).Msg("failed to register validator translations")
	}

	return &Validator{
		validate: validate,
		trans:    trans,
	}
}

// Struct validates a payload struct. On violation it returns a single
// joined message suitable for a 400 response body.
func (v *Validator) Struct(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	ok := false
	if errs, ok = err.(validator.ValidationErrors); !ok {
		return err
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fe.Translate(v.trans))
	}

	return &ValidationError{Message: strings.Join(messages, "; ")}
}

// ValidationError is a translated payload validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
