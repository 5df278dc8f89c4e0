package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventrack-api/internal/application/order"
	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
)

func newQueryUC(s *storeState) *order.QueryUseCase {
	return order.NewQueryUseCase(&fakeOrderRepo{s: s}, &fakeItemRepo{s: s})
}

func TestQuery_OrdersDevuelveSoloLasDelUsuario(t *testing.T) {
	s := newStoreState()
	seedOrder(s, "o1", entity.OrderStatusPending)
	seedOrder(s, "o2", entity.OrderStatusCompleted)
	ajena := seedOrder(s, "o3", entity.OrderStatusPending)
	ajena.UserID = "otro-usuario"

	orders, err := newQueryUC(s).Orders(context.Background(), testUser)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, testUser, o.UserID)
	}
}

func TestQuery_ItemsDevuelveLasLineas(t *testing.T) {
	s := newStoreState()
	seedOrder(s, "o1", entity.OrderStatusPending)
	s.items = append(s.items,
		&entity.OrderItem{ID: "i1", OrderID: "o1", UserID: testUser, ProductID: "p1", Quantity: 2},
		&entity.OrderItem{ID: "i2", OrderID: "o1", UserID: testUser, ProductID: "p2", Quantity: 1},
	)

	items, err := newQueryUC(s).Items(context.Background(), testUser, "o1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p2", items[1].ProductID)
}

func TestQuery_ItemsDeOrdenInexistenteRetornaNotFound(t *testing.T) {
	s := newStoreState()
	_, err := newQueryUC(s).Items(context.Background(), testUser, "no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestQuery_ItemsDeOtroUsuarioRetornaNotFound(t *testing.T) {
	s := newStoreState()
	seedOrder(s, "o1", entity.OrderStatusPending)
	s.items = append(s.items,
		&entity.OrderItem{ID: "i1", OrderID: "o1", UserID: testUser, ProductID: "p1", Quantity: 2},
	)

	_, err := newQueryUC(s).Items(context.Background(), "otro-usuario", "o1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestQuery_ItemsSinIDRetornaInvalid(t *testing.T) {
	s := newStoreState()
	_, err := newQueryUC(s).Items(context.Background(), testUser, "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
