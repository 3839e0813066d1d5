package memory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
)

const catalogYAML = `
coupons:
  - id: coupon-save10
    code: save10
    kind: PERCENTAGE
    rate: "0.10"
  - code: WELCOME
    kind: FIXED
    amount_minor: 50000
    min_subtotal_minor: 100000
    valid_from: 2026-01-01T00:00:00Z
    valid_to: 2026-12-31T23:59:59Z
    condition: 'cart.currency == "NGN"'
  - code: OLD
    kind: FIXED
    amount_minor: 100
    active: false
`

type checkerFunc func(string) error

func (f checkerFunc) Check(expression string) error { return f(expression) }

func TestLoadCouponCatalog(t *testing.T) {
	var checked []string
	coupons, err := memory.LoadCouponCatalog(strings.NewReader(catalogYAML), checkerFunc(func(expr string) error {
		checked = append(checked, expr)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, coupons, 3)

	assert.Equal(t, "SAVE10", coupons[0].Code)
	assert.Equal(t, domain.CouponKindPercentage, coupons[0].Kind)
	assert.True(t, coupons[0].Rate.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, coupons[0].Active)

	assert.Equal(t, "coupon-WELCOME", coupons[1].ID)
	require.NotNil(t, coupons[1].ValidTo)
	assert.Equal(t, 2026, coupons[1].ValidTo.Year())
	assert.Equal(t, []string{`cart.currency == "NGN"`}, checked)

	assert.False(t, coupons[2].Active)
}

func TestLoadCouponCatalog_Errors(t *testing.T) {
	tests := map[string]string{
		"bad rate":       "coupons:\n  - code: X\n    kind: PERCENTAGE\n    rate: ten\n",
		"rate too large": "coupons:\n  - code: X\n    kind: PERCENTAGE\n    rate: \"1.5\"\n",
		"unknown kind":   "coupons:\n  - code: X\n    kind: BOGO\n",
		"unknown field":  "coupons:\n  - code: X\n    kind: FIXED\n    amount: 1\n",
		"duplicate":      "coupons:\n  - code: X\n    kind: FIXED\n  - code: x\n    kind: FIXED\n",
		"bad condition":  "coupons:\n  - code: X\n    kind: FIXED\n    condition: 'cart.subtotal >'\n",
	}
	checker := checkerFunc(func(expr string) error {
		if strings.HasSuffix(expr, ">") {
			return errors.New("compile: unexpected end of input")
		}
		return nil
	})

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := memory.LoadCouponCatalog(strings.NewReader(doc), checker)
			assert.Error(t, err)
		})
	}
}

func TestCouponRepository(t *testing.T) {
	ctx := context.Background()
	coupons, err := memory.LoadCouponCatalog(strings.NewReader(catalogYAML), nil)
	require.NoError(t, err)

	repo, err := memory.NewCouponRepository(coupons...)
	require.NoError(t, err)

	found, err := repo.GetByCode(ctx, "  save10 ")
	require.NoError(t, err)
	assert.Equal(t, "coupon-save10", found.ID)

	byID, err := repo.GetByID(ctx, "coupon-save10")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", byID.Code)

	_, err = repo.GetByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)

	renamed := found
	renamed.Code = "SAVE15"
	renamed.Rate = decimal.RequireFromString("0.15")
	require.NoError(t, repo.Upsert(ctx, renamed))

	_, err = repo.GetByCode(ctx, "SAVE10")
	assert.ErrorIs(t, err, domain.ErrCouponNotFound, "old code must be released")

	clash := domain.Coupon{ID: "other", Code: "save15", Kind: domain.CouponKindFixed}
	assert.ErrorIs(t, repo.Upsert(ctx, clash), domain.ErrAlreadyExists)
}
