// Package rules вычисляет условия применимости купонов на CEL.
package rules

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// costLimit ограничивает сложность одного выражения.
const costLimit = 10000

// Evaluator компилирует выражения один раз и кэширует программы.
//
// Доступные переменные: cart.subtotal, cart.shipping_fee, cart.tax, cart.wallet_used,
// cart.currency, cart.customer_id, cart.shipping_method, cart.payment_method,
// cart.item_count, cart.items (variant_id, qty, price).
type Evaluator struct {
	env      *cel.Env
	mu       sync.RWMutex
	programs map[string]cel.Program
}

// NewEvaluator создаёт окружение CEL.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("cart", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &Evaluator{env: env, programs: make(map[string]cel.Program)}, nil
}

// Check компилирует выражение без вычисления. Используется при загрузке каталога.
func (e *Evaluator) Check(expression string) error {
	_, err := e.program(expression)
	return err
}

// Eval вычисляет условие для корзины. Результат не bool считается ошибкой.
func (e *Evaluator) Eval(expression string, cart domain.Cart) (bool, error) {
	prg, err := e.program(expression)
	if err != nil {
		return false, err
	}

	out, _, err := prg.Eval(map[string]any{"cart": cartInput(cart)})
	if err != nil {
		return false, fmt.Errorf("eval: %w", err)
	}
	val, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("condition %q returned %T, want bool", expression, out.Value())
	}
	return val, nil
}

func (e *Evaluator) program(expression string) (cel.Program, error) {
	e.mu.RLock()
	prg, hit := e.programs[expression]
	e.mu.RUnlock()
	if hit {
		return prg, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if prg, hit = e.programs[expression]; hit {
		return prg, nil
	}

	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile: %w", issues.Err())
	}
	prg, err := e.env.Program(ast,
		cel.InterruptCheckFrequency(100),
		cel.CostLimit(costLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	e.programs[expression] = prg
	return prg, nil
}

func cartInput(cart domain.Cart) map[string]any {
	items := make([]any, 0, len(cart.Items))
	var count int64
	for _, item := range cart.Items {
		items = append(items, map[string]any{
			"variant_id": item.VariantID,
			"qty":        int64(item.Qty),
			"price":      item.PriceMinor,
		})
		count += int64(item.Qty)
	}

	input := map[string]any{
		"subtotal":        cart.SubtotalMinor,
		"shipping_fee":    cart.ShippingFeeMinor,
		"tax":             cart.TaxMinor,
		"wallet_used":     cart.WalletUsedMinor,
		"currency":        cart.Currency,
		"customer_id":     cart.CustomerID,
		"shipping_method": "",
		"payment_method":  "",
		"item_count":      count,
		"items":           items,
	}
	if cart.ShippingMethod != nil {
		input["shipping_method"] = string(*cart.ShippingMethod)
	}
	if cart.PaymentMethod != nil {
		input["payment_method"] = string(*cart.PaymentMethod)
	}
	return input
}
