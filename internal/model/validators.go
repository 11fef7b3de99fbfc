// Package model содержит валидаторы для моделей.
//
// Группа: BASE - Базовые компоненты
// Содержит: Validator, ValidationError, ValidationErrors, валидаторы
package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator представляет интерфейс валидатора
type Validator interface {
	Validate() error
}

// ValidationError представляет ошибку валидации
type ValidationError struct {
	Field   string
	Message string
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors представляет множество ошибок валидации
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// HasErrors проверяет, есть ли ошибки валидации
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	urlRegex = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)

	hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidateRequired проверяет, что поле не пустое
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

// ValidateEmail проверяет корректность email
func ValidateEmail(field, value string) error {
	if !emailRegex.MatchString(value) {
		return ValidationError{Field: field, Message: fmt.Sprintf("%s must be a valid email", field)}
	}
	return nil
}

// ValidateURL проверяет корректность URL
func ValidateURL(field, value string) error {
	if !urlRegex.MatchString(value) {
		return ValidationError{Field: field, Message: fmt.Sprintf("%s must be a valid URL", field)}
	}
	return nil
}

// ValidateHexColor проверяет корректность hex-цвета
func ValidateHexColor(field, value string) error {
	if !hexColorRegex.MatchString(value) {
		return ValidationError{Field: field, Message: fmt.Sprintf("%s must be a hex color", field)}
	}
	return nil
}
