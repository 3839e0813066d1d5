package domain

import "context"

// CartRepository описывает требования к хранилищу корзин.
type CartRepository interface {
	// Create сохраняет новую корзину или возвращает ErrAlreadyExists.
	Create(ctx context.Context, cart Cart) error
	// Get возвращает корзину или ErrCartNotFound.
	Get(ctx context.Context, id string) (Cart, error)
	// GetActiveByCustomer возвращает последнюю неконвертированную корзину клиента.
	GetActiveByCustomer(ctx context.Context, customerID string) (Cart, error)
	// Save применяет обновления с учётом optimistic locking и возвращает корзину с новой версией.
	Save(ctx context.Context, cart Cart) (Cart, error)
	// Unlock снимает блокировку заказа orderID, если заказ так и не был создан.
	// Блокировка другим заказом даёт ErrVersionConflict.
	Unlock(ctx context.Context, id, orderID string) (Cart, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ. Возвращает ErrAlreadyExists, если ID или номер заняты.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id string) (Order, error)
	// GetByNumber ищет заказ по человекочитаемому номеру.
	GetByNumber(ctx context.Context, number string) (Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]Order, error)
	// Save атомарно сохраняет статусы, новые записи таймлайна и возвраты
	// с учётом optimistic locking и возвращает заказ с новой версией.
	Save(ctx context.Context, order Order) (Order, error)
}

// CouponRepository - каталог купонов.
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (Coupon, error)
	GetByID(ctx context.Context, id string) (Coupon, error)
	Upsert(ctx context.Context, coupon Coupon) error
}
