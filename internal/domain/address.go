package domain

// AddressType классифицирует адрес клиента.
type AddressType string

const (
	AddressTypeHome     AddressType = "HOME"
	AddressTypeWork     AddressType = "WORK"
	AddressTypeBilling  AddressType = "BILLING"
	AddressTypeShipping AddressType = "SHIPPING"
	AddressTypeOther    AddressType = "OTHER"
)

// Valid проверяет, что тип адреса поддерживается.
func (t AddressType) Valid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeBilling, AddressTypeShipping, AddressTypeOther:
		return true
	default:
		return false
	}
}

// Address принадлежит клиенту. Корзина и заказ хранят копию адреса,
// а не владеют им.
type Address struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Type       AddressType `json:"type"`
	FullName   string      `json:"full_name"`
	Line1      string      `json:"line1"`
	Line2      string      `json:"line2,omitempty"`
	City       string      `json:"city"`
	State      string      `json:"state,omitempty"`
	PostalCode string      `json:"postal_code,omitempty"`
	Country    string      `json:"country"`
}

// Validate возвращает список проблем адреса.
func (a *Address) Validate() []error {
	var errs []error
	if !a.Type.Valid() {
		errs = append(errs, Invalid("address type %q is not supported", a.Type))
	}
	if a.Line1 == "" {
		errs = append(errs, Invalid("address line1 is required"))
	}
	if a.City == "" {
		errs = append(errs, Invalid("address city is required"))
	}
	if a.Country == "" {
		errs = append(errs, Invalid("address country is required"))
	}
	return errs
}
