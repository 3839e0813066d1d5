package lifecycle

import "github.com/vladislavdragonenkov/checkout/internal/domain"

// Step - шаг оформления заказа, который покупатель должен пройти.
type Step string

const (
	StepAuth     Step = "AUTH"
	StepDelivery Step = "DELIVERY"
	StepAddress  Step = "ADDRESS"
	StepPayment  Step = "PAYMENT"
)

// Steps перечисляет шаги в порядке отображения.
var Steps = []Step{StepAuth, StepDelivery, StepAddress, StepPayment}

// ResolveStep вычисляет текущий шаг по снимку корзины. Результат не кэшируется:
// корзина могла измениться в другой вкладке, поэтому шаг пересчитывается на каждый запрос.
func ResolveStep(authenticated bool, cart domain.Cart) Step {
	switch {
	case !authenticated:
		return StepAuth
	case cart.ShippingMethod == nil:
		return StepDelivery
	case cart.IsPickup():
		return StepPayment
	case cart.ShippingAddress == nil:
		return StepAddress
	default:
		return StepPayment
	}
}

// StepSet - множество пройденных шагов.
type StepSet map[Step]bool

// Has сообщает, пройден ли шаг.
func (s StepSet) Has(step Step) bool {
	return s[step]
}

// List возвращает пройденные шаги в порядке Steps.
func (s StepSet) List() []Step {
	out := make([]Step, 0, len(s))
	for _, step := range Steps {
		if s[step] {
			out = append(out, step)
		}
	}
	return out
}

// CompletedSteps считает пройденные шаги для индикатора прогресса.
// Шаг может быть пройден, не будучи текущим.
func CompletedSteps(authenticated bool, cart domain.Cart) StepSet {
	return StepSet{
		StepAuth:     authenticated,
		StepDelivery: cart.ShippingMethod != nil,
		StepAddress:  !cart.IsPickup() && cart.ShippingAddress != nil,
		StepPayment:  cart.PaymentMethod != nil,
	}
}

// CheckoutProgress объединяет текущий шаг и пройденные шаги.
type CheckoutProgress struct {
	Current   Step
	Completed []Step
}

// Progress собирает состояние индикатора оформления.
func Progress(authenticated bool, cart domain.Cart) CheckoutProgress {
	return CheckoutProgress{
		Current:   ResolveStep(authenticated, cart),
		Completed: CompletedSteps(authenticated, cart).List(),
	}
}
