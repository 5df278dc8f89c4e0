package order_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventrack-api/internal/application/activity"
	"github.com/tu-usuario/inventrack-api/internal/application/order"
	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
	"github.com/tu-usuario/inventrack-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const testUser = "00000000-0000-0000-0000-000000000001"

// storeState es el estado compartido de los fakes. El fakeTxRunner lo
// snapshotea antes de ejecutar fn y lo restaura si fn falla, emulando el
// rollback de una transacción real.
type storeState struct {
	orders   map[string]*entity.Order
	items    []*entity.OrderItem
	products map[string]*entity.Product
	nextCode int64
}

func newStoreState() *storeState {
	return &storeState{
		orders:   make(map[string]*entity.Order),
		products: make(map[string]*entity.Product),
		nextCode: 1000,
	}
}

func (s *storeState) clone() *storeState {
	cp := &storeState{
		orders:   make(map[string]*entity.Order, len(s.orders)),
		items:    make([]*entity.OrderItem, len(s.items)),
		products: make(map[string]*entity.Product, len(s.products)),
		nextCode: s.nextCode,
	}
	for k, v := range s.orders {
		o := *v
		cp.orders[k] = &o
	}
	for i, it := range s.items {
		c := *it
		cp.items[i] = &c
	}
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	return cp
}

func (s *storeState) addProduct(id, name, sku string, stock, lowStock int) {
	s.products[id] = &entity.Product{
		ID:              id,
		UserID:          testUser,
		Name:            name,
		SKU:             sku,
		Price:           decimal.NewFromInt(10),
		QuantityInStock: stock,
		LowStock:        lowStock,
	}
}

type fakeOrderRepo struct {
	s         *storeState
	createNil bool // simula INSERT sin fila retornada
}

func (r *fakeOrderRepo) Create(o *entity.Order) (*entity.Order, error) {
	if r.createNil {
		return nil, nil
	}
	c := *o
	c.Code = r.s.nextCode
	r.s.nextCode++
	r.s.orders[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeOrderRepo) GetByUserAndID(userID, id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok || o.UserID != userID {
		return nil, nil
	}
	c := *o
	return &c, nil
}

func (r *fakeOrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(userID, id, status string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok || o.UserID != userID {
		return nil, nil
	}
	o.Status = status
	c := *o
	return &c, nil
}

type fakeItemRepo struct {
	s            *storeState
	nilOnProduct string // simula fallo de inserción para un producto concreto
}

func (r *fakeItemRepo) Create(item *entity.OrderItem) (*entity.OrderItem, error) {
	if r.nilOnProduct != "" && item.ProductID == r.nilOnProduct {
		return nil, nil
	}
	c := *item
	r.s.items = append(r.s.items, &c)
	out := c
	return &out, nil
}

func (r *fakeItemRepo) ListByOrder(userID, orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range r.s.items {
		if it.UserID == userID && it.OrderID == orderID {
			c := *it
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	s *storeState
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	c := *p
	r.s.products[c.ID] = &c
	return nil
}

func (r *fakeProductRepo) GetByUserAndID(userID, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.UserID == userID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	c := *p
	r.s.products[c.ID] = &c
	return nil
}

func (r *fakeProductRepo) Delete(userID, id string) error {
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductRepo) AdjustStock(id string, delta int) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	p.QuantityInStock += delta
	c := *p
	return &c, nil
}

// fakeTxRunner emula la atomicidad: si fn retorna error, el estado vuelve al
// snapshot previo (equivalente a un ROLLBACK).
type fakeTxRunner struct {
	s            *storeState
	runs         int
	orderRepo    *fakeOrderRepo
	itemRepo     *fakeItemRepo
	nilOnProduct string
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx.runs++
	snapshot := tx.s.clone()
	oRepo := tx.orderRepo
	if oRepo == nil {
		oRepo = &fakeOrderRepo{s: tx.s}
	}
	iRepo := tx.itemRepo
	if iRepo == nil {
		iRepo = &fakeItemRepo{s: tx.s, nilOnProduct: tx.nilOnProduct}
	}
	if err := fn(oRepo, iRepo, &fakeProductRepo{s: tx.s}); err != nil {
		*tx.s = *snapshot
		return err
	}
	return nil
}

type fakeActivityRepo struct {
	records []*entity.Activity
	fail    bool
}

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	if r.fail {
		return errors.New("feed no disponible")
	}
	c := *a
	r.records = append(r.records, &c)
	return nil
}

func (r *fakeActivityRepo) ListByUser(userID string) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range r.records {
		if a.UserID == userID {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) byType(activityType string) []*entity.Activity {
	var out []*entity.Activity
	for _, a := range r.records {
		if a.ActivityType == activityType {
			out = append(out, a)
		}
	}
	return out
}

type fakeCache struct {
	userID     string
	productIDs []string
	calls      int
}

func (c *fakeCache) InvalidateProducts(_ context.Context, userID string, productIDs ...string) {
	c.calls++
	c.userID = userID
	c.productIDs = append(c.productIDs, productIDs...)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func strPtr(s string) *string { return &s }

func salesInput(lines ...order.OrderLine) order.PlaceOrderInput {
	return order.PlaceOrderInput{
		UserID:      testUser,
		Type:        entity.OrderTypeSales,
		CustomerID:  strPtr("customer-1"),
		Name:        "ACME Corp",
		TotalAmount: decimal.NewFromInt(100),
		Products:    lines,
	}
}

func purchaseInput(lines ...order.OrderLine) order.PlaceOrderInput {
	return order.PlaceOrderInput{
		UserID:      testUser,
		Type:        entity.OrderTypePurchase,
		SupplierID:  strPtr("supplier-1"),
		Name:        "Proveedora SA",
		TotalAmount: decimal.NewFromInt(100),
		Products:    lines,
	}
}

func line(productID string, qty int, price int64) order.OrderLine {
	return order.OrderLine{
		ProductID: productID,
		Quantity:  qty,
		Price:     decimal.NewFromInt(price),
		Name:      "Producto " + productID,
		SKU:       "SKU-" + productID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Colocación de órdenes — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_VentaDescuentaStockYCreaLineas(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	s.addProduct("p2", "Mouse", "MOU-01", 8, 2)
	tx := &fakeTxRunner{s: s}
	actRepo := &fakeActivityRepo{}
	uc := order.NewPlaceOrderUseCase(tx, activity.NewRecorder(actRepo, testLogger()), nil)

	created, err := uc.PlaceOrder(context.Background(), salesInput(
		line("p1", 3, 50),
		line("p2", 2, 25),
	))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entity.OrderTypeSales, created.Type)
	assert.Equal(t, entity.OrderStatusPending, created.Status,
		"sin estado explícito la orden debe quedar Pending")
	assert.Equal(t, int64(1000), created.Code, "el código viene del consecutivo")

	// Stock decrementado exactamente por la cantidad vendida
	assert.Equal(t, 7, s.products["p1"].QuantityInStock)
	assert.Equal(t, 6, s.products["p2"].QuantityInStock)

	// Líneas persistidas en el orden del request, con total calculado en servidor
	require.Len(t, s.items, 2)
	assert.Equal(t, "p1", s.items[0].ProductID)
	assert.Equal(t, "p2", s.items[1].ProductID)
	assert.True(t, s.items[0].TotalAmount.Equal(decimal.NewFromInt(150)),
		"total de línea = cantidad × precio (3 × 50)")
	assert.True(t, s.items[1].TotalAmount.Equal(decimal.NewFromInt(50)))
	for _, it := range s.items {
		assert.Equal(t, created.ID, it.OrderID)
	}
}

func TestPlaceOrder_VentaRegistraActividadNewOrder(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	tx := &fakeTxRunner{s: s}
	actRepo := &fakeActivityRepo{}
	uc := order.NewPlaceOrderUseCase(tx, activity.NewRecorder(actRepo, testLogger()), nil)

	created, err := uc.PlaceOrder(context.Background(), salesInput(line("p1", 1, 50)))
	require.NoError(t, err)

	newOrder := actRepo.byType(entity.ActivityNewOrder)
	require.Len(t, newOrder, 1)
	assert.Equal(t, fmt.Sprintf("New order received - #%d", created.Code), newOrder[0].Description,
		"con cliente la descripción usa la variante received")
	assert.Equal(t, created.ID, newOrder[0].RelatedID)
}

func TestPlaceOrder_CompraIncrementaSinVerificarStock(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Cable", "CAB-01", 0, 5) // stock cero: una venta fallaría
	tx := &fakeTxRunner{s: s}
	actRepo := &fakeActivityRepo{}
	uc := order.NewPlaceOrderUseCase(tx, activity.NewRecorder(actRepo, testLogger()), nil)

	created, err := uc.PlaceOrder(context.Background(), purchaseInput(line("p1", 20, 5)))
	require.NoError(t, err)

	assert.Equal(t, 20, s.products["p1"].QuantityInStock,
		"la compra incrementa el stock sin verificación de suficiencia")

	newOrder := actRepo.byType(entity.ActivityNewOrder)
	require.Len(t, newOrder, 1)
	assert.Equal(t, fmt.Sprintf("New order - #%d", created.Code), newOrder[0].Description,
		"sin cliente la descripción omite received")
}

func TestPlaceOrder_EstadoExplicitoSeRespeta(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	uc := order.NewPlaceOrderUseCase(&fakeTxRunner{s: s},
		activity.NewRecorder(&fakeActivityRepo{}, testLogger()), nil)

	in := salesInput(line("p1", 1, 50))
	in.Status = entity.OrderStatusCompleted
	created, err := uc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, created.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad — cualquier fallo dentro de la tx revierte cabecera, líneas y stock
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_StockInsuficienteRevierteTodo(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	s.addProduct("p2", "Mouse", "MOU-01", 1, 0) // insuficiente para la segunda línea
	tx := &fakeTxRunner{s: s}
	actRepo := &fakeActivityRepo{}
	cache := &fakeCache{}
	uc := order.NewPlaceOrderUseCase(tx, activity.NewRecorder(actRepo, testLogger()), cache)

	created, err := uc.PlaceOrder(context.Background(), salesInput(
		line("p1", 3, 50), // esta línea sí alcanzaba
		line("p2", 5, 25), // esta no
	))
	require.Error(t, err)
	assert.Nil(t, created)

	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	var insErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, "p2", insErr.ProductID, "el error identifica el producto ofensor")

	// Rollback completo: el decremento de p1 también se revierte
	assert.Equal(t, 10, s.products["p1"].QuantityInStock)
	assert.Equal(t, 1, s.products["p2"].QuantityInStock)
	assert.Empty(t, s.orders, "no debe quedar cabecera")
	assert.Empty(t, s.items, "no deben quedar líneas")
	assert.Empty(t, actRepo.records, "una orden fallida no genera actividad")
	assert.Zero(t, cache.calls, "una orden fallida no invalida caché")
}

func TestPlaceOrder_StockNuncaQuedaNegativo(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 4, 0)
	uc := order.NewPlaceOrderUseCase(&fakeTxRunner{s: s},
		activity.NewRecorder(&fakeActivityRepo{}, testLogger()), nil)

	// Pedir exactamente el stock disponible sí procede
	_, err := uc.PlaceOrder(context.Background(), salesInput(line("p1", 4, 10)))
	require.NoError(t, err)
	assert.Equal(t, 0, s.products["p1"].QuantityInStock)

	// Pedir una unidad más falla sin tocar nada
	_, err = uc.PlaceOrder(context.Background(), salesInput(line("p1", 1, 10)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 0, s.products["p1"].QuantityInStock)
}

func TestPlaceOrder_ProductoInexistenteEnVentaRevierte(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	uc := order.NewPlaceOrderUseCase(&fakeTxRunner{s: s},
		activity.NewRecorder(&fakeActivityRepo{}, testLogger()), nil)

	_, err := uc.PlaceOrder(context.Background(), salesInput(
		line("p1", 2, 50),
		line("fantasma", 1, 10),
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock),
		"producto inexistente en venta se trata como stock insuficiente")
	assert.Equal(t, 10, s.products["p1"].QuantityInStock, "rollback del primer decremento")
	assert.Empty(t, s.orders)
}

func TestPlaceOrder_FalloAlCrearLineaRevierte(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	s.addProduct("p2", "Mouse", "MOU-01", 10, 2)
	tx := &fakeTxRunner{s: s, nilOnProduct: "p2"}
	uc := order.NewPlaceOrderUseCase(tx,
		activity.NewRecorder(&fakeActivityRepo{}, testLogger()), nil)

	_, err := uc.PlaceOrder(context.Background(), salesInput(
		line("p1", 2, 50),
		line("p2", 1, 25),
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrItemCreateFailed))
	var itemErr *domain.ItemCreateError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, "p2", itemErr.ProductID)

	assert.Equal(t, 10, s.products["p1"].QuantityInStock)
	assert.Empty(t, s.orders)
	assert.Empty(t, s.items)
}

func TestPlaceOrder_CabeceraSinFilaRevierte(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	tx := &fakeTxRunner{s: s, orderRepo: &fakeOrderRepo{s: s, createNil: true}}
	uc := order.NewPlaceOrderUseCase(tx,
		activity.NewRecorder(&fakeActivityRepo{}, testLogger()), nil)

	_, err := uc.PlaceOrder(context.Background(), salesInput(line("p1", 1, 50)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOrderCreateFailed))
	assert.Empty(t, s.items)
	assert.Equal(t, 10, s.products["p1"].QuantityInStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_AlertaLowStockAlCruzarUmbral(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 5) // 10-5=5 ≤ 5: dispara
	s.addProduct("p2", "Mouse", "MOU-01", 20, 5)   // 20-5=15 > 5: no dispara
	actRepo := &fakeActivityRepo{}
	uc := order.NewPlaceOrderUseCase(&fakeTxRunner{s: s},
		activity.NewRecorder(actRepo, testLogger()), nil)

	_, err := uc.PlaceOrder(context.Background(), salesInput(
		line("p1", 5, 50),
		line("p2", 5, 25),
	))
	require.NoError(t, err)

	alerts := actRepo.byType(entity.ActivityLowStock)
	require.Len(t, alerts, 1, "solo el producto que cruzó el umbral genera alerta")
	assert.Equal(t, "Low stock alert - Teclado(SKU: TEC-01)", alerts[0].Description)
	assert.Equal(t, "p1", alerts[0].RelatedID)
}

func TestPlaceOrder_CompraNoGeneraAlertaLowStock(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Cable", "CAB-01", 0, 5)
	actRepo := &fakeActivityRepo{}
	uc := order.NewPlaceOrderUseCase(&fakeTxRunner{s: s},
		activity.NewRecorder(actRepo, testLogger()), nil)

	// Tras la compra el stock (2) sigue ≤ umbral (5), pero las compras no alertan
	_, err := uc.PlaceOrder(context.Background(), purchaseInput(line("p1", 2, 5)))
	require.NoError(t, err)
	assert.Empty(t, actRepo.byType(entity.ActivityLowStock))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación previa — nada se escribe si la entrada es inválida
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_EntradaInvalidaNoTocaLaBase(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*order.PlaceOrderInput)
	}{
		{"tipo desconocido", func(in *order.PlaceOrderInput) { in.Type = "Transfer" }},
		{"venta sin cliente", func(in *order.PlaceOrderInput) { in.CustomerID = nil }},
		{"venta con cliente vacío", func(in *order.PlaceOrderInput) { in.CustomerID = strPtr("") }},
		{"venta con proveedor", func(in *order.PlaceOrderInput) { in.SupplierID = strPtr("supplier-1") }},
		{"sin líneas", func(in *order.PlaceOrderInput) { in.Products = nil }},
		{"cantidad cero", func(in *order.PlaceOrderInput) { in.Products[0].Quantity = 0 }},
		{"cantidad negativa", func(in *order.PlaceOrderInput) { in.Products[0].Quantity = -3 }},
		{"precio cero", func(in *order.PlaceOrderInput) { in.Products[0].Price = decimal.Zero }},
		{"línea sin producto", func(in *order.PlaceOrderInput) { in.Products[0].ProductID = "" }},
		{"estado desconocido", func(in *order.PlaceOrderInput) { in.Status = "Shipped" }},
		{"sin total", func(in *order.PlaceOrderInput) { in.TotalAmount = decimal.Decimal{} }},
		{"total cero", func(in *order.PlaceOrderInput) { in.TotalAmount = decimal.Zero }},
		{"total negativo", func(in *order.PlaceOrderInput) { in.TotalAmount = decimal.NewFromInt(-100) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStoreState()
			s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
			tx := &fakeTxRunner{s: s}
			uc := order.NewPlaceOrderUseCase(tx,
				activity.NewRecorder(&fakeActivityRepo{}, testLogger()), nil)

			in := salesInput(line("p1", 1, 50))
			tc.mutate(&in)

			created, err := uc.PlaceOrder(context.Background(), in)
			assert.Nil(t, created)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Zero(t, tx.runs, "la validación debe rechazar antes de abrir la transacción")
		})
	}
}

func TestPlaceOrder_CompraConClienteEsInvalida(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Cable", "CAB-01", 0, 5)
	tx := &fakeTxRunner{s: s}
	uc := order.NewPlaceOrderUseCase(tx,
		activity.NewRecorder(&fakeActivityRepo{}, testLogger()), nil)

	in := purchaseInput(line("p1", 2, 5))
	in.CustomerID = strPtr("customer-1")
	_, err := uc.PlaceOrder(context.Background(), in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput),
		"cliente y proveedor son mutuamente excluyentes")
	assert.Zero(t, tx.runs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Post-commit — actividad best-effort y caché
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_FalloDeActividadNoRevierteLaOrden(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	uc := order.NewPlaceOrderUseCase(&fakeTxRunner{s: s},
		activity.NewRecorder(&fakeActivityRepo{fail: true}, testLogger()), nil)

	created, err := uc.PlaceOrder(context.Background(), salesInput(line("p1", 2, 50)))
	require.NoError(t, err, "el feed caído no debe afectar la orden")
	require.NotNil(t, created)
	assert.Equal(t, 8, s.products["p1"].QuantityInStock)
	assert.Len(t, s.orders, 1)
}

func TestPlaceOrder_InvalidaCacheDeProductosTocados(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 10, 2)
	s.addProduct("p2", "Mouse", "MOU-01", 10, 2)
	cache := &fakeCache{}
	uc := order.NewPlaceOrderUseCase(&fakeTxRunner{s: s},
		activity.NewRecorder(&fakeActivityRepo{}, testLogger()), cache)

	_, err := uc.PlaceOrder(context.Background(), salesInput(
		line("p1", 1, 50),
		line("p2", 1, 25),
	))
	require.NoError(t, err)
	assert.Equal(t, 1, cache.calls)
	assert.Equal(t, testUser, cache.userID)
	assert.ElementsMatch(t, []string{"p1", "p2"}, cache.productIDs)
}

func TestPlaceOrder_CodigosConsecutivos(t *testing.T) {
	s := newStoreState()
	s.addProduct("p1", "Teclado", "TEC-01", 100, 2)
	uc := order.NewPlaceOrderUseCase(&fakeTxRunner{s: s},
		activity.NewRecorder(&fakeActivityRepo{}, testLogger()), nil)

	first, err := uc.PlaceOrder(context.Background(), salesInput(line("p1", 1, 50)))
	require.NoError(t, err)
	second, err := uc.PlaceOrder(context.Background(), salesInput(line("p1", 1, 50)))
	require.NoError(t, err)
	assert.Equal(t, first.Code+1, second.Code)
}
