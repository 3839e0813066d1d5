package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

const (
	defaultPrefix = "checkout"
	opTimeout     = 2 * time.Second
)

// Коды результата saveCartScript.
const (
	saveOK       = 1
	saveMissing  = -1
	saveConflict = -2
	saveLocked   = -3
)

// saveCartScript атомарно сравнивает версию и перезаписывает корзину.
// KEYS[1] = ключ корзины
// KEYS[2] = индекс корзин клиента (sorted set), у гостевой корзины отсутствует
// ARGV[1] = ожидаемая версия
// ARGV[2] = новый JSON корзины
// ARGV[3] = id корзины
// ARGV[4] = updated_at (unix micro) для индекса
var saveCartScript = redis.NewScript(`
local raw = redis.call("GET", KEYS[1])
if not raw then
    return -1
end

local current = cjson.decode(raw)
if current["order_id"] and current["order_id"] ~= "" then
    return -3
end
if tostring(current["version"]) ~= ARGV[1] then
    return -2
end

redis.call("SET", KEYS[1], ARGV[2])
if KEYS[2] then
    redis.call("ZADD", KEYS[2], ARGV[4], ARGV[3])
end
return 1
`)

// CartRepository хранит корзины в Redis как JSON-документы.
type CartRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewCartRepository создаёт репозиторий поверх готового клиента.
func NewCartRepository(client redis.UniversalClient, prefix string) *CartRepository {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &CartRepository{client: client, prefix: prefix}
}

// NewClient открывает клиент и проверяет соединение.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (r *CartRepository) cartKey(id string) string {
	return fmt.Sprintf("%s:cart:%s", r.prefix, id)
}

func (r *CartRepository) customerKey(customerID string) string {
	return fmt.Sprintf("%s:customer-carts:%s", r.prefix, customerID)
}

func (r *CartRepository) Create(ctx context.Context, cart domain.Cart) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if cart.ID == "" {
		return domain.Invalid("cart id is required")
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	created, err := r.client.SetNX(ctx, r.cartKey(cart.ID), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("create cart: %w", err)
	}
	if !created {
		return domain.ErrAlreadyExists
	}
	if cart.CustomerID != "" {
		member := redis.Z{Score: float64(cart.UpdatedAt.UnixMicro()), Member: cart.ID}
		if err := r.client.ZAdd(ctx, r.customerKey(cart.CustomerID), member).Err(); err != nil {
			return fmt.Errorf("index cart: %w", err)
		}
	}
	return nil
}

func (r *CartRepository) Get(ctx context.Context, id string) (domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return r.get(ctx, id)
}

func (r *CartRepository) get(ctx context.Context, id string) (domain.Cart, error) {
	raw, err := r.client.Get(ctx, r.cartKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{}, domain.ErrCartNotFound
		}
		return domain.Cart{}, fmt.Errorf("get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart %s: %w", id, err)
	}
	return cart, nil
}

// GetActiveByCustomer перебирает индекс клиента от свежих корзин к старым.
func (r *CartRepository) GetActiveByCustomer(ctx context.Context, customerID string) (domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	ids, err := r.client.ZRevRange(ctx, r.customerKey(customerID), 0, -1).Result()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("list customer carts: %w", err)
	}
	for _, id := range ids {
		cart, err := r.get(ctx, id)
		if errors.Is(err, domain.ErrCartNotFound) {
			continue
		}
		if err != nil {
			return domain.Cart{}, err
		}
		if !cart.Locked() {
			return cart, nil
		}
	}
	return domain.Cart{}, domain.ErrCartNotFound
}

func (r *CartRepository) Save(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	expected := cart.Version
	next := cart.Clone()
	next.Version = expected + 1

	payload, err := json.Marshal(next)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("marshal cart: %w", err)
	}

	res, err := saveCartScript.Run(ctx, r.client, r.saveKeys(cart),
		expected, payload, cart.ID, next.UpdatedAt.UnixMicro(),
	).Int64()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("save cart: %w", err)
	}
	if err := saveResultError(res); err != nil {
		return domain.Cart{}, err
	}
	return next, nil
}

func (r *CartRepository) saveKeys(cart domain.Cart) []string {
	keys := []string{r.cartKey(cart.ID)}
	if cart.CustomerID != "" {
		keys = append(keys, r.customerKey(cart.CustomerID))
	}
	return keys
}

// Unlock снимает order_id в WATCH-транзакции: скрипт здесь не подходит,
// cjson не сохраняет пустые массивы при перекодировании документа.
func (r *CartRepository) Unlock(ctx context.Context, id, orderID string) (domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	key := r.cartKey(id)
	var unlocked domain.Cart
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrCartNotFound
			}
			return fmt.Errorf("get cart: %w", err)
		}

		var cart domain.Cart
		if err := json.Unmarshal(raw, &cart); err != nil {
			return fmt.Errorf("decode cart %s: %w", id, err)
		}
		if cart.OrderID != orderID {
			return domain.ErrVersionConflict
		}
		cart.OrderID = ""
		cart.Version++

		payload, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("marshal cart: %w", err)
		}
		if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		}); err != nil {
			return err
		}
		unlocked = cart
		return nil
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return domain.Cart{}, domain.ErrVersionConflict
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return unlocked, nil
}

func saveResultError(code int64) error {
	switch code {
	case saveOK:
		return nil
	case saveMissing:
		return domain.ErrCartNotFound
	case saveConflict:
		return domain.ErrVersionConflict
	case saveLocked:
		return domain.ErrCartLocked
	default:
		return fmt.Errorf("save cart: unexpected script result %d", code)
	}
}

var _ domain.CartRepository = (*CartRepository)(nil)
