package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/inventrack-api/internal/application/order"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
	"github.com/tu-usuario/inventrack-api/pkg/logger"
)

var _ repository.ProductRepository = (*CachedProductRepo)(nil)
var _ order.CacheInvalidator = (*CachedProductRepo)(nil)

// CachedProductRepo decora ProductRepository con cache-aside sobre Redis.
// Solo cachea lecturas (GetByUserAndID, ListByUser); las escrituras invalidan.
// Cualquier error de Redis degrada a la BD, nunca falla la petición.
// Las mutaciones de stock hechas por la transacción de órdenes no pasan por
// aquí: el coordinador invalida explícitamente vía InvalidateProducts.
type CachedProductRepo struct {
	real  repository.ProductRepository
	redis *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedProductRepo construye el decorador con TTL de 5 minutos.
func NewCachedProductRepo(real repository.ProductRepository, client *redis.Client, log *logger.Logger) *CachedProductRepo {
	return &CachedProductRepo{
		real:  real,
		redis: client,
		ttl:   5 * time.Minute,
		log:   log.Component("product-cache"),
	}
}

func productKey(userID, id string) string {
	return fmt.Sprintf("products:%s:%s", userID, id)
}

func listKey(userID string) string {
	return fmt.Sprintf("products:%s:all", userID)
}

// GetByUserAndID intenta el caché y cae a la BD; cachea también el "no existe".
func (c *CachedProductRepo) GetByUserAndID(userID, id string) (*entity.Product, error) {
	ctx := context.Background()
	key := productKey(userID, id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == "notfound" {
			return nil, nil
		}
		var p entity.Product
		if err := json.Unmarshal(data, &p); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("entrada de caché corrupta, se consulta BD")
			break
		}
		return &p, nil
	case errors.Is(err, redis.Nil):
		// cache miss
	default:
		c.log.Warn().Err(err).Msg("error de Redis, se consulta BD")
	}

	p, err := c.real.GetByUserAndID(userID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		if setErr := c.redis.Set(ctx, key, "notfound", time.Minute).Err(); setErr != nil {
			c.log.Warn().Err(setErr).Str("key", key).Msg("no se pudo cachear notfound")
		}
		return nil, nil
	}
	c.store(ctx, key, p, c.ttl)
	return p, nil
}

// ListByUser intenta el caché de la lista completa y cae a la BD.
func (c *CachedProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	ctx := context.Background()
	key := listKey(userID)

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var list []*entity.Product
		if err := json.Unmarshal(data, &list); err == nil {
			return list, nil
		}
		c.log.Warn().Str("key", key).Msg("lista cacheada corrupta, se consulta BD")
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("error de Redis, se consulta BD")
	}

	list, err := c.real.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, list, c.ttl)
	return list, nil
}

// Create delega e invalida la lista del usuario.
func (c *CachedProductRepo) Create(product *entity.Product) error {
	if err := c.real.Create(product); err != nil {
		return err
	}
	c.InvalidateProducts(context.Background(), product.UserID, product.ID)
	return nil
}

// Update delega e invalida producto y lista.
func (c *CachedProductRepo) Update(product *entity.Product) error {
	if err := c.real.Update(product); err != nil {
		return err
	}
	c.InvalidateProducts(context.Background(), product.UserID, product.ID)
	return nil
}

// Delete delega e invalida producto y lista.
func (c *CachedProductRepo) Delete(userID, id string) error {
	if err := c.real.Delete(userID, id); err != nil {
		return err
	}
	c.InvalidateProducts(context.Background(), userID, id)
	return nil
}

// GetForUpdate delega directo: el bloqueo de fila solo tiene sentido dentro de una tx.
func (c *CachedProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return c.real.GetForUpdate(id)
}

// AdjustStock delega directo; el caller (coordinador de órdenes) invalida post-commit.
func (c *CachedProductRepo) AdjustStock(id string, delta int) (*entity.Product, error) {
	return c.real.AdjustStock(id, delta)
}

// InvalidateProducts borra las entradas de los productos indicados y la lista del usuario.
// Best-effort: un fallo se loggea y se descarta.
func (c *CachedProductRepo) InvalidateProducts(ctx context.Context, userID string, productIDs ...string) {
	keys := make([]string, 0, len(productIDs)+1)
	for _, id := range productIDs {
		keys = append(keys, productKey(userID, id))
	}
	keys = append(keys, listKey(userID))
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("no se pudo invalidar el caché de productos")
	}
}

func (c *CachedProductRepo) store(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("no se pudo serializar para el caché")
		return
	}
	if err := c.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("no se pudo escribir el caché")
	}
}
