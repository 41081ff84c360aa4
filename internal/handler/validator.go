package handler

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var trans ut.Translator

// InitValidator registers translations for gin's validator so parameter
// errors come back readable instead of as raw struct paths.
func InitValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ = uni.GetTranslator("en")
	return en_translations.RegisterDefaultTranslations(v, trans)
}

// translateError renders a binding error for the client.
func translateError(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || trans == nil {
		return "parâmetros inválidos: " + err.Error()
	}
	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		parts = append(parts, fieldErr.Translate(trans))
	}
	return strings.Join(parts, "; ")
}
