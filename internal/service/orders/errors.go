package orders

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.orders: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.orders: internal error")
)

// ValidationError называет поле, не прошедшее валидацию
// Разворачивается в ErrInvalidInput для проверки через errors.Is
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s is required", ErrInvalidInput, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
