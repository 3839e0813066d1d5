package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation - некорректные входные данные (отрицательные суммы, пустые идентификаторы и т.п.).
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition - переход из терминального статуса или переход, отсутствующий в таблице.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrPaymentNotConfirmed - попытка продвинуть заказ до подтверждения оплаты.
	ErrPaymentNotConfirmed = errors.New("payment must be confirmed before the order can progress")
	// ErrOutOfStockBlock - в заказе есть позиции без остатка, их нужно разрешить до обработки.
	ErrOutOfStockBlock = errors.New("out of stock items must be resolved")
	// ErrInvalidPaymentTransition - недопустимая смена статуса платежа.
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
	// ErrInvalidCode - купон не найден, неактивен, просрочен или не подходит корзине.
	ErrInvalidCode = errors.New("coupon code is invalid")
	// ErrAlreadyApplied - в корзине уже есть купон.
	ErrAlreadyApplied = errors.New("a coupon is already applied to the cart")
	// ErrCartLocked - корзина уже превращена в заказ и не изменяется.
	ErrCartLocked = errors.New("cart is already converted into an order")
	// ErrReturnNotAllowed - позицию нельзя вернуть.
	ErrReturnNotAllowed = errors.New("order item is not eligible for return")

	ErrCartNotFound   = errors.New("cart not found")
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrVersionConflict = errors.New("version conflict")
	// ErrAlreadyExists - запись с таким идентификатором уже есть.
	ErrAlreadyExists = errors.New("already exists")

	// ErrOutboxPublish - ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// TransitionError описывает отказ в смене статуса заказа.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s -> %s: %v", e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

// Invalid оборачивает ErrValidation с описанием поля.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// IsGuardFailure сообщает, что ошибка - ожидаемый отказ бизнес-правила, а не сбой инфраструктуры.
func IsGuardFailure(err error) bool {
	for _, target := range []error{
		ErrInvalidTransition,
		ErrPaymentNotConfirmed,
		ErrOutOfStockBlock,
		ErrInvalidPaymentTransition,
		ErrInvalidCode,
		ErrAlreadyApplied,
		ErrCartLocked,
		ErrReturnNotAllowed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ReasonCode возвращает машинный код отказа для клиентов.
func ReasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrPaymentNotConfirmed):
		return "PAYMENT_NOT_CONFIRMED"
	case errors.Is(err, ErrOutOfStockBlock):
		return "OUT_OF_STOCK"
	case errors.Is(err, ErrInvalidPaymentTransition):
		return "INVALID_PAYMENT_TRANSITION"
	case errors.Is(err, ErrInvalidCode):
		return "INVALID_CODE"
	case errors.Is(err, ErrAlreadyApplied):
		return "ALREADY_APPLIED"
	case errors.Is(err, ErrCartLocked):
		return "CART_LOCKED"
	case errors.Is(err, ErrReturnNotAllowed):
		return "RETURN_NOT_ALLOWED"
	case errors.Is(err, ErrCartNotFound), errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrCouponNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrVersionConflict):
		return "VERSION_CONFLICT"
	default:
		return "INTERNAL"
	}
}
