package checkout

import (
	"context"
	"net/http"
	"time"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/messaging/kafka/producer"
	"go-storefront-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	freeShippingThreshold = 50.0
	shippingFee           = 5.99
	taxRate               = 0.08
)

// DefaultProcessingDelay simulates the payment round trip. There is no
// real payment processor behind this flow.
const DefaultProcessingDelay = 2 * time.Second

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error)
}

type service struct {
	cartSvc   cart.Service
	publisher producer.Publisher
	validate  *validator.Validate
	delay     time.Duration
	logger    *zap.Logger
}

type Deps struct {
	CartSvc   cart.Service
	Publisher producer.Publisher
	Delay     time.Duration
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Delay <= 0 {
		deps.Delay = DefaultProcessingDelay
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		cartSvc:   deps.CartSvc,
		publisher: deps.Publisher,
		validate:  validator.New(),
		delay:     deps.Delay,
		logger:    deps.Logger,
	}
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CheckoutResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid checkout information", http.StatusBadRequest)
	}

	snapshot := s.cartSvc.Cart()
	if len(snapshot.Items) == 0 {
		return CheckoutResponse{}, ErrEmptyCart
	}

	quote := quoteFor(snapshot)

	// Simulated payment processing; the delay is all there is.
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return CheckoutResponse{}, ctx.Err()
	}

	res := CheckoutResponse{
		OrderNumber: uuid.New().String(),
		TotalItems:  snapshot.TotalItems,
		Subtotal:    quote.subtotal,
		Shipping:    quote.shipping,
		Tax:         quote.tax,
		Total:       quote.total,
		PlacedAt:    time.Now(),
	}

	s.cartSvc.Clear()

	if s.publisher != nil {
		event := producer.OrderPlacedEvent{
			OrderNumber: res.OrderNumber,
			Email:       req.Email,
			TotalItems:  res.TotalItems,
			Total:       res.Total,
			PlacedAt:    res.PlacedAt,
		}
		if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
			// Best-effort: the order already succeeded for the customer.
			s.logger.Warn("order.placed publish failed",
				zap.String("orderNumber", res.OrderNumber),
				zap.Error(err),
			)
		}
	}

	return res, nil
}

type quote struct {
	subtotal float64
	shipping float64
	tax      float64
	total    float64
}

// quoteFor prices the order: free shipping above the threshold, flat fee
// below, 8% tax on the subtotal. Decimal arithmetic, rounded to cents.
func quoteFor(snapshot cart.Cart) quote {
	subtotal := decimal.NewFromFloat(snapshot.TotalPrice).Round(2)

	shipping := decimal.NewFromFloat(shippingFee)
	if subtotal.GreaterThan(decimal.NewFromFloat(freeShippingThreshold)) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Round(2)
	total := subtotal.Add(shipping).Add(tax).Round(2)

	return quote{
		subtotal: subtotal.InexactFloat64(),
		shipping: shipping.InexactFloat64(),
		tax:      tax.InexactFloat64(),
		total:    total.InexactFloat64(),
	}
}
