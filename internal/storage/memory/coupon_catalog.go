package memory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// couponCatalogFile - формат YAML-файла каталога купонов.
type couponCatalogFile struct {
	Coupons []couponEntry `yaml:"coupons"`
}

type couponEntry struct {
	ID               string     `yaml:"id"`
	Code             string     `yaml:"code"`
	Kind             string     `yaml:"kind"`
	AmountMinor      int64      `yaml:"amount_minor"`
	Rate             string     `yaml:"rate"`
	Active           *bool      `yaml:"active"`
	ValidFrom        *time.Time `yaml:"valid_from"`
	ValidTo          *time.Time `yaml:"valid_to"`
	MinSubtotalMinor int64      `yaml:"min_subtotal_minor"`
	Condition        string     `yaml:"condition"`
}

// ConditionChecker проверяет синтаксис условия купона при загрузке.
type ConditionChecker interface {
	Check(expression string) error
}

// LoadCouponCatalog разбирает YAML-каталог. Ставка процента задаётся строкой
// ("0.10"), чтобы не терять точность на float.
func LoadCouponCatalog(r io.Reader, checker ConditionChecker) ([]domain.Coupon, error) {
	var file couponCatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode coupon catalog: %w", err)
	}

	coupons := make([]domain.Coupon, 0, len(file.Coupons))
	seen := make(map[string]struct{}, len(file.Coupons))
	for i, entry := range file.Coupons {
		coupon, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("coupon[%d] %q: %w", i, entry.Code, err)
		}
		if errs := coupon.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("coupon[%d] %q: %w", i, entry.Code, errors.Join(errs...))
		}
		if coupon.Condition != "" && checker != nil {
			if err := checker.Check(coupon.Condition); err != nil {
				return nil, fmt.Errorf("coupon[%d] %q condition: %w", i, entry.Code, err)
			}
		}
		if _, dup := seen[coupon.Code]; dup {
			return nil, fmt.Errorf("coupon[%d] %q: duplicate code", i, entry.Code)
		}
		seen[coupon.Code] = struct{}{}
		coupons = append(coupons, coupon)
	}
	return coupons, nil
}

// LoadCouponCatalogFile читает каталог с диска.
func LoadCouponCatalogFile(path string, checker ConditionChecker) ([]domain.Coupon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open coupon catalog: %w", err)
	}
	defer f.Close()

	return LoadCouponCatalog(f, checker)
}

func (e couponEntry) toDomain() (domain.Coupon, error) {
	coupon := domain.Coupon{
		ID:               e.ID,
		Code:             NormalizeCode(e.Code),
		Kind:             domain.CouponKind(e.Kind),
		AmountMinor:      e.AmountMinor,
		Active:           true,
		ValidFrom:        e.ValidFrom,
		ValidTo:          e.ValidTo,
		MinSubtotalMinor: e.MinSubtotalMinor,
		Condition:        e.Condition,
	}
	if e.Active != nil {
		coupon.Active = *e.Active
	}
	if e.ID == "" {
		coupon.ID = "coupon-" + coupon.Code
	}
	if e.Rate != "" {
		rate, err := decimal.NewFromString(e.Rate)
		if err != nil {
			return domain.Coupon{}, domain.Invalid("rate %q is not a decimal", e.Rate)
		}
		coupon.Rate = rate
	}
	return coupon, nil
}
