package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

func TestPaymentStatusValid(t *testing.T) {
	for _, s := range []domain.PaymentStatus{
		domain.PaymentStatusPending,
		domain.PaymentStatusSuccess,
		domain.PaymentStatusFailed,
		domain.PaymentStatusRefunded,
	} {
		assert.True(t, s.Valid(), "status %s should be valid", s)
	}
	assert.False(t, domain.PaymentStatus("authorized").Valid())
	assert.False(t, domain.PaymentStatus("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, domain.PaymentMethodCashOnDelivery.Valid())
	assert.True(t, domain.PaymentMethodBankTransfer.Valid())
	assert.True(t, domain.PaymentMethodPaystack.Valid())
	assert.False(t, domain.PaymentMethod("CRYPTO").Valid())
}
