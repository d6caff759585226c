// Package httputil provides helpers for request handling.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return validationError(validationErrors)
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// validationError turns failed binding validations into a message that
// names the offending fields.
func validationError(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))

	for _, err := range errs {
		switch err.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", err.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must contain at least %s entries", err.Field(), err.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is not valid", err.Field()))
		}
	}

	return fmt.Errorf("invalid request: %s", strings.Join(messages, ", "))
}
