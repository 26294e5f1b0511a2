package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/thsdbgh/jinhak2025-backend/storage"
)

// Shared validator, reporting errors by JSON field name so the client sees
// "parent_phone is required", not "ParentPhone".
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requiredFieldMessage names the first failed required field.
func requiredFieldMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0].Field() + " is required"
	}
	return "invalid payload"
}

// storageError maps storage failures to the original status split: PostgREST
// layer errors → 400, anything else → 500. The raw message goes to the client
// unredacted; that passthrough is part of the observable contract.
func storageError(c echo.Context, err error) error {
	var re *storage.RESTError
	if errors.As(err, &re) {
		return c.JSON(http.StatusBadRequest, map[string]any{"status": "error", "detail": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]any{"status": "error", "detail": err.Error()})
}
