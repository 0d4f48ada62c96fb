package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/enum"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/repository"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/apperror"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/pagination"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/utils"
)

// OrderService handles checkout and order lifecycle operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	pricing       *PricingService
	invoicePrefix string
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	pricingService *PricingService,
	invoicePrefix string,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		pricing:       pricingService,
		invoicePrefix: invoicePrefix,
	}
}

// CheckoutInput represents the checkout request: the same inputs the quote
// endpoint takes, bound to a staff user and an optional customer.
type CheckoutInput struct {
	UserID     uuid.UUID
	CustomerID *uuid.UUID
	Lines      []QuoteLineInput
	GSTPercent *float64
	Discount   *pricing.DiscountSpec
	Exchange   *pricing.ExchangeGold
	Split      pricing.PaymentSplit
}

// Checkout recomputes the settlement from scratch, refuses to persist while
// it is not confirmable, then writes the order, decrements stock and adjusts
// the customer's running balance by the due amount.
func (s *OrderService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}

	// Validate customer if provided
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	items, productMap, err := s.pricing.resolveLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	rates, err := s.pricing.RateSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := pricing.Settle(pricing.SettlementInput{
		Items:      items,
		Rates:      rates,
		GSTPercent: s.pricing.gstPercent(input.GSTPercent),
		Discount:   input.Discount,
		Exchange:   input.Exchange,
		Split:      input.Split,
	})

	// Blocking warnings hold confirmation; the client must fix the inputs
	// and quote again
	if !result.Confirmable() {
		msg := apperror.ErrSettlementInvalid.Message
		if len(result.Warnings) > 0 {
			msg = result.Warnings[len(result.Warnings)-1].Message
		}
		return nil, apperror.NewAppError(apperror.ErrSettlementInvalid.Code, msg)
	}

	// Catalog lines decrement stock; ad-hoc lines do not
	stockDecrements := make(map[uuid.UUID]int)
	var totalProducts int
	for _, line := range input.Lines {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		totalProducts += qty
		if line.ProductID != nil {
			stockDecrements[*line.ProductID] += qty
		}
	}

	if len(stockDecrements) > 0 {
		failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
		if err != nil {
			return nil, err
		}
		if len(failedIDs) > 0 {
			var failedNames []string
			for _, id := range failedIDs {
				if product, exists := productMap[id]; exists {
					failedNames = append(failedNames, product.Name)
				}
			}
			return nil, apperror.NewAppError(apperror.ErrInsufficientStock.Code,
				fmt.Sprintf("Insufficient stock for: %v", failedNames))
		}
	}

	order := &entity.Order{
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		OrderDate:     time.Now(),
		OrderStatus:   enum.OrderStatusPending,
		PaymentStatus: enum.FromDue(result.Split.Due, result.FinalTotal),
		InvoiceNo:     utils.GenerateInvoiceNo(s.invoicePrefix),
		TotalProducts: totalProducts,

		Subtotal:       result.Subtotal,
		DiscountAmount: result.DiscountAmount,
		GST:            result.GST,
		FinalTotal:     result.FinalTotal,
		ExchangeCredit: result.ExchangeCredit,

		CashAmount:   result.Split.Cash,
		CardAmount:   result.Split.Card,
		BankAmount:   result.Split.Bank,
		OnlineAmount: result.Split.Online,
		DueAmount:    result.Split.Due,
	}

	if input.Discount != nil {
		order.DiscountMode = input.Discount.Mode
		order.DiscountValue = input.Discount.Value
	}
	if input.Exchange != nil {
		order.ExchangeWeightGrams = input.Exchange.WeightGrams
		order.ExchangePurity = input.Exchange.Purity
		order.ExchangeRatePerGram = input.Exchange.RatePerGram
	}
	if order.DueAmount <= 0 {
		order.OrderStatus = enum.OrderStatusComplete
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Stock was already decremented; restore it
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	orderItems := make([]entity.OrderItem, 0, len(result.Items))
	for i, priced := range result.Items {
		item := entity.OrderItem{
			OrderID:        order.ID,
			ProductID:      input.Lines[i].ProductID,
			Quantity:       priced.Quantity,
			NetWeightGrams: priced.NetWeight,
			MaterialRate:   priced.MaterialRate,
			MaterialCost:   priced.MaterialCost,
			MakingCharges:  priced.MakingCharges,
			StoneAmount:    priced.StoneAmount,
			VACharges:      priced.VACharges,
			LineTotal:      priced.LineTotal,
			RateFallback:   priced.RateFallback,
		}
		orderItems = append(orderItems, item)
	}

	if err := s.orderItemRepo.CreateBatch(ctx, orderItems); err != nil {
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	// The due amount rides on the customer's running balance
	if input.CustomerID != nil && order.DueAmount > 0 {
		if err := s.customerRepo.AdjustBalance(ctx, *input.CustomerID, order.DueAmount); err != nil {
			return nil, err
		}
	}

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// GetOrder retrieves an order by ID with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// GetDueOrders returns orders with outstanding dues
func (s *OrderService) GetDueOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.GetDueOrders(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// Payment channels accepted for due payments.
const (
	PayChannelCash   = "cash"
	PayChannelCard   = "card"
	PayChannelBank   = "bank"
	PayChannelOnline = "online"
)

// PayDueInput represents a payment towards an order's outstanding due.
// Channel names how the customer paid; empty defaults to cash.
type PayDueInput struct {
	OrderID      uuid.UUID
	Amount       float64
	Channel      string
	LateDiscount float64
}

// PayDue records a payment towards an order's due amount. An optional late
// discount reduces the outstanding due alongside the payment.
func (s *OrderService) PayDue(ctx context.Context, input *PayDueInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if order.OrderStatus == enum.OrderStatusCancel {
		return nil, apperror.NewBadRequestError("Order is cancelled")
	}
	if input.Amount < 0 || input.LateDiscount < 0 {
		return nil, apperror.NewBadRequestError("Payment and discount must not be negative")
	}

	reduction := input.Amount + input.LateDiscount
	settled := pricing.AdjustedDue(order.Split(), input.LateDiscount) - input.Amount
	if settled < -pricing.Epsilon {
		return nil, apperror.NewBadRequestError("Payment exceeds the outstanding due")
	}
	if settled < pricing.Epsilon {
		settled = 0
	}
	order.DueAmount = settled
	switch input.Channel {
	case PayChannelCard:
		order.CardAmount += input.Amount
	case PayChannelBank:
		order.BankAmount += input.Amount
	case PayChannelOnline:
		order.OnlineAmount += input.Amount
	case PayChannelCash, "":
		order.CashAmount += input.Amount
	default:
		return nil, apperror.NewBadRequestError("Unknown payment channel")
	}
	order.PaymentStatus = enum.FromDue(order.DueAmount, order.FinalTotal)
	if order.DueAmount == 0 {
		order.OrderStatus = enum.OrderStatusComplete
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	// Mirror the reduction on the customer's running balance
	if order.CustomerID != nil && reduction > 0 {
		if err := s.customerRepo.AdjustBalance(ctx, *order.CustomerID, -reduction); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// CancelOrder cancels an order, restores stock and reverses any balance the
// order put on the customer
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.OrderStatus == enum.OrderStatusCancel {
		return apperror.NewBadRequestError("Order is already cancelled")
	}

	stockIncrements := make(map[uuid.UUID]int)
	for _, item := range order.Items {
		if item.ProductID != nil {
			stockIncrements[*item.ProductID] += item.Quantity
		}
	}

	if len(stockIncrements) > 0 {
		if err := s.productRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
			return err
		}
	}

	if order.CustomerID != nil && order.DueAmount > 0 {
		if err := s.customerRepo.AdjustBalance(ctx, *order.CustomerID, -order.DueAmount); err != nil {
			return err
		}
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusCancel)
}
