package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/config"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/enum"
	domainRepo "github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/pagination"
)

// fakeOrderRepo stores orders in memory.
type fakeOrderRepo struct {
	orders  map[uuid.UUID]*entity.Order
	revenue float64
	due     float64
	count   int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	return nil
}
func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}
func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if order, ok := f.orders[id]; ok {
		order.OrderStatus = status
	}
	return nil
}
func (f *fakeOrderRepo) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}
func (f *fakeOrderRepo) GetDueOrders(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}
func (f *fakeOrderRepo) SalesTotals(ctx context.Context, from, to time.Time) (float64, float64, int64, error) {
	return f.revenue, f.due, f.count, nil
}

// fakeOrderItemRepo records created item batches.
type fakeOrderItemRepo struct {
	batches [][]entity.OrderItem
}

func (f *fakeOrderItemRepo) CreateBatch(ctx context.Context, items []entity.OrderItem) error {
	f.batches = append(f.batches, items)
	return nil
}
func (f *fakeOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	return nil, nil
}
func (f *fakeOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return nil
}

// fakeCustomerRepo records balance adjustments.
type fakeCustomerRepo struct {
	customers   map[uuid.UUID]*entity.Customer
	adjustments []float64
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}
func (f *fakeCustomerRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	f.adjustments = append(f.adjustments, delta)
	return nil
}

type orderServiceFixture struct {
	svc          *OrderService
	orderRepo    *fakeOrderRepo
	itemRepo     *fakeOrderItemRepo
	productRepo  *fakeProductRepo
	customerRepo *fakeCustomerRepo
}

func newOrderServiceFixture(rates []entity.MetalRate, products map[uuid.UUID]entity.Product) *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo:    newFakeOrderRepo(),
		itemRepo:     &fakeOrderItemRepo{},
		productRepo:  &fakeProductRepo{products: products},
		customerRepo: &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)},
	}
	cfg := &config.PricingConfig{GSTPercent: 18, DefaultGoldRate: 6000, InvoicePrefix: "INV-"}
	pricingSvc := NewPricingService(&fakeRateRepo{rates: rates}, f.productRepo, cfg)
	f.svc = NewOrderService(f.orderRepo, f.itemRepo, f.productRepo, f.customerRepo, pricingSvc, "INV-")
	return f
}

func TestCheckoutAdHocLinePersistsWithoutProductRef(t *testing.T) {
	rates := []entity.MetalRate{{MaterialName: "Gold", MaterialType: "22K", PricePerGram: 6000}}
	f := newOrderServiceFixture(rates, nil)

	// 5g * 6000 = 30000; GST 18% = 5400; total 35400, fully paid in cash.
	order, err := f.svc.Checkout(context.Background(), &CheckoutInput{
		UserID: uuid.New(),
		Lines: []QuoteLineInput{{
			Quantity:         1,
			TotalWeightGrams: 5,
			MaterialType:     "22K",
		}},
		Split: pricing.PaymentSplit{Cash: 35400},
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 35400.0, order.FinalTotal)

	// A line sold outside the catalog keeps no product reference and never
	// touches stock.
	require.Len(t, f.itemRepo.batches, 1)
	require.Len(t, f.itemRepo.batches[0], 1)
	assert.Nil(t, f.itemRepo.batches[0][0].ProductID)
	assert.Empty(t, f.productRepo.decrements)
}

func TestCheckoutMixedCartDecrementsOnlyCatalogStock(t *testing.T) {
	productID := uuid.New()
	products := map[uuid.UUID]entity.Product{
		productID: {
			ID:               productID,
			Name:             "Gold Ring",
			MaterialType:     "22K",
			GrossWeightGrams: 2,
		},
	}
	rates := []entity.MetalRate{{MaterialName: "Gold", MaterialType: "22K", PricePerGram: 1000}}
	f := newOrderServiceFixture(rates, products)

	// Catalog line 2g*1000=2000, ad-hoc line 1g*1000=1000; GST 0 for easy sums.
	order, err := f.svc.Checkout(context.Background(), &CheckoutInput{
		UserID:     uuid.New(),
		GSTPercent: float64Ptr(0),
		Lines: []QuoteLineInput{
			{ProductID: &productID, Quantity: 1},
			{Quantity: 1, TotalWeightGrams: 1, MaterialType: "22K"},
		},
		Split: pricing.PaymentSplit{Cash: 3000},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	require.Len(t, f.productRepo.decrements, 1)
	assert.Equal(t, map[uuid.UUID]int{productID: 1}, f.productRepo.decrements[0])

	require.Len(t, f.itemRepo.batches, 1)
	items := f.itemRepo.batches[0]
	require.Len(t, items, 2)
	require.NotNil(t, items[0].ProductID)
	assert.Equal(t, productID, *items[0].ProductID)
	assert.Nil(t, items[1].ProductID)
}

func TestPayDueCreditsSelectedChannel(t *testing.T) {
	f := newOrderServiceFixture(nil, nil)
	orderID := uuid.New()
	f.orderRepo.orders[orderID] = &entity.Order{
		ID:          orderID,
		OrderStatus: enum.OrderStatusPending,
		FinalTotal:  11800,
		CashAmount:  8000,
		DueAmount:   3800,
	}

	order, err := f.svc.PayDue(context.Background(), &PayDueInput{
		OrderID: orderID,
		Amount:  1000,
		Channel: PayChannelCard,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, order.CardAmount)
	assert.Equal(t, 8000.0, order.CashAmount)
	assert.Equal(t, 2800.0, order.DueAmount)
}

func TestPayDueRejectsUnknownChannel(t *testing.T) {
	f := newOrderServiceFixture(nil, nil)
	orderID := uuid.New()
	f.orderRepo.orders[orderID] = &entity.Order{
		ID:          orderID,
		OrderStatus: enum.OrderStatusPending,
		FinalTotal:  1000,
		DueAmount:   1000,
	}

	_, err := f.svc.PayDue(context.Background(), &PayDueInput{
		OrderID: orderID,
		Amount:  100,
		Channel: "cheque",
	})
	assert.Error(t, err)
}
