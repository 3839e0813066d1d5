package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

func testCart() domain.Cart {
	method := domain.ShippingMethodExpress
	return domain.Cart{
		ID:             "cart-1",
		CustomerID:     "customer-1",
		Currency:       "NGN",
		SubtotalMinor:  25000,
		ShippingMethod: &method,
		Items: []domain.CartItem{
			{ID: "i-1", VariantID: "v-1", PriceMinor: 10000, Qty: 2},
			{ID: "i-2", VariantID: "v-2", PriceMinor: 5000, Qty: 1},
		},
	}
}

func TestEvaluator_Eval(t *testing.T) {
	evaluator, err := NewEvaluator()
	require.NoError(t, err)

	tests := []struct {
		expression string
		want       bool
	}{
		{expression: `cart.subtotal >= 20000`, want: true},
		{expression: `cart.subtotal >= 30000`, want: false},
		{expression: `cart.currency == "NGN" && cart.shipping_method == "EXPRESS"`, want: true},
		{expression: `cart.payment_method == "PAYSTACK"`, want: false},
		{expression: `cart.item_count >= 3`, want: true},
		{expression: `cart.items.exists(i, i.variant_id == "v-2")`, want: true},
		{expression: `cart.items.all(i, i.qty > 1)`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got, err := evaluator.Eval(tt.expression, testCart())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_Errors(t *testing.T) {
	evaluator, err := NewEvaluator()
	require.NoError(t, err)

	_, err = evaluator.Eval(`cart.subtotal >`, testCart())
	assert.ErrorContains(t, err, "compile")

	_, err = evaluator.Eval(`cart.subtotal + 1`, testCart())
	assert.ErrorContains(t, err, "want bool")

	_, err = evaluator.Eval(`cart.weight > 1`, testCart())
	assert.ErrorContains(t, err, "eval")

	assert.Error(t, evaluator.Check(`unknown_var > 1`))
	assert.NoError(t, evaluator.Check(`cart.subtotal > 0`))
}

func TestEvaluator_CachesPrograms(t *testing.T) {
	evaluator, err := NewEvaluator()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := evaluator.Eval(`cart.subtotal > 0`, testCart())
		require.NoError(t, err)
	}
	evaluator.mu.RLock()
	defer evaluator.mu.RUnlock()
	assert.Len(t, evaluator.programs, 1)
}
