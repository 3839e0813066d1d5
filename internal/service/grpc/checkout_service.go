package grpcsvc

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/lifecycle"
	"github.com/vladislavdragonenkov/checkout/internal/service/checkout"
	"github.com/vladislavdragonenkov/checkout/internal/service/jobs"
	checkoutv1 "github.com/vladislavdragonenkov/checkout/proto/checkout/v1"
)

// CustomerMetadataKey - заголовок с идентификатором аутентифицированного клиента.
const CustomerMetadataKey = "x-customer-id"

// CheckoutService реализует gRPC API поверх сервисов корзины, заказов и ленты задач.
type CheckoutService struct {
	checkoutv1.UnimplementedCheckoutServiceServer

	carts  *checkout.CartService
	orders *checkout.OrderService
	jobs   *jobs.Tracker
	logger *log.Entry
}

// NewCheckoutService конструирует сервис с зависимостями.
func NewCheckoutService(carts *checkout.CartService, orders *checkout.OrderService, tracker *jobs.Tracker, logger *log.Entry) *CheckoutService {
	if logger == nil {
		logger = log.New().WithField("component", "grpc-checkout")
	}
	return &CheckoutService{
		carts:  carts,
		orders: orders,
		jobs:   tracker,
		logger: logger,
	}
}

// OpenCart возвращает активную корзину клиента или создаёт новую.
func (s *CheckoutService) OpenCart(ctx context.Context, req *checkoutv1.OpenCartRequest) (*checkoutv1.CartResponse, error) {
	ctx = session(ctx)
	cart, err := s.carts.OpenCart(ctx, req.GetCurrency())
	return s.cartResponse(ctx, "OpenCart", cart, err)
}

func (s *CheckoutService) GetCart(ctx context.Context, req *checkoutv1.GetCartRequest) (*checkoutv1.CartResponse, error) {
	if req.GetCartId() == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}
	ctx = session(ctx)
	cart, err := s.carts.GetCart(ctx, req.GetCartId())
	return s.cartResponse(ctx, "GetCart", cart, err)
}

func (s *CheckoutService) AddCartItem(ctx context.Context, req *checkoutv1.AddCartItemRequest) (*checkoutv1.CartResponse, error) {
	if req.GetCartId() == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}
	item := req.GetItem()
	if item == nil {
		return nil, status.Error(codes.InvalidArgument, "item is required")
	}
	ctx = session(ctx)
	cart, err := s.carts.AddItem(ctx, req.GetCartId(), domain.CartItem{
		VariantID:  item.VariantId,
		Name:       item.Name,
		Image:      item.Image,
		PriceMinor: item.PriceMinor,
		Qty:        item.Qty,
	})
	return s.cartResponse(ctx, "AddCartItem", cart, err)
}

func (s *CheckoutService) ChangeItemQuantity(ctx context.Context, req *checkoutv1.ChangeItemQuantityRequest) (*checkoutv1.CartResponse, error) {
	if req.GetCartId() == "" || req.GetItemId() == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id and item_id are required")
	}
	ctx = session(ctx)
	cart, err := s.carts.ChangeItemQuantity(ctx, req.GetCartId(), req.GetItemId(), req.GetQty())
	return s.cartResponse(ctx, "ChangeItemQuantity", cart, err)
}

func (s *CheckoutService) UpdateCartDetails(ctx context.Context, req *checkoutv1.UpdateCartDetailsRequest) (*checkoutv1.CartResponse, error) {
	if req.GetCartId() == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}

	// optional-поля: nil означает "не менять"
	patch := checkout.CartPatch{
		ShippingAddress: fromProtoAddress(req.GetShippingAddress()),
		BillingAddress:  fromProtoAddress(req.GetBillingAddress()),
		Phone:           req.Phone,
		WalletUsedMinor: req.WalletUsedMinor,
		ExpectedVersion: req.ExpectedVersion,
	}
	if req.ShippingMethod != nil {
		value := domain.ShippingMethod(strings.ToUpper(strings.TrimSpace(req.GetShippingMethod())))
		patch.ShippingMethod = &value
	}
	if req.PaymentMethod != nil {
		value := domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(req.GetPaymentMethod())))
		patch.PaymentMethod = &value
	}

	ctx = session(ctx)
	cart, err := s.carts.UpdateCartDetails(ctx, req.GetCartId(), patch)
	return s.cartResponse(ctx, "UpdateCartDetails", cart, err)
}

func (s *CheckoutService) ApplyCoupon(ctx context.Context, req *checkoutv1.ApplyCouponRequest) (*checkoutv1.CartResponse, error) {
	if req.GetCartId() == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}
	ctx = session(ctx)
	cart, err := s.carts.ApplyCoupon(ctx, req.GetCartId(), req.GetCode())
	return s.cartResponse(ctx, "ApplyCoupon", cart, err)
}

func (s *CheckoutService) RemoveCoupon(ctx context.Context, req *checkoutv1.RemoveCouponRequest) (*checkoutv1.CartResponse, error) {
	if req.GetCartId() == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}
	ctx = session(ctx)
	cart, err := s.carts.RemoveCoupon(ctx, req.GetCartId())
	return s.cartResponse(ctx, "RemoveCoupon", cart, err)
}

func (s *CheckoutService) GetCheckoutProgress(ctx context.Context, req *checkoutv1.GetCheckoutProgressRequest) (*checkoutv1.CheckoutProgressResponse, error) {
	if req.GetCartId() == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}
	progress, err := s.carts.Progress(session(ctx), req.GetCartId())
	if err != nil {
		return nil, s.fail("GetCheckoutProgress", err)
	}

	completed := make([]string, 0, len(progress.Completed))
	for _, step := range progress.Completed {
		completed = append(completed, string(step))
	}
	return &checkoutv1.CheckoutProgressResponse{
		CurrentStep:    string(progress.Current),
		CompletedSteps: completed,
	}, nil
}

// PlaceOrder оформляет заказ из корзины на шаге PAYMENT.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req *checkoutv1.PlaceOrderRequest) (*checkoutv1.OrderResponse, error) {
	if req.GetCartId() == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}
	order, err := s.carts.PlaceOrder(session(ctx), req.GetCartId())
	return s.orderResponse("PlaceOrder", order, err)
}

func (s *CheckoutService) GetOrder(ctx context.Context, req *checkoutv1.GetOrderRequest) (*checkoutv1.OrderResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	view, err := s.orders.GetOrder(session(ctx), req.GetOrderId())
	if err != nil {
		return nil, s.fail("GetOrder", err)
	}
	return &checkoutv1.OrderResponse{Order: toProtoOrder(view.Order, view.Timeline)}, nil
}

func (s *CheckoutService) GetOrderByNumber(ctx context.Context, req *checkoutv1.GetOrderByNumberRequest) (*checkoutv1.OrderResponse, error) {
	if req.GetNumber() == "" {
		return nil, status.Error(codes.InvalidArgument, "number is required")
	}
	view, err := s.orders.GetOrderByNumber(session(ctx), req.GetNumber())
	if err != nil {
		return nil, s.fail("GetOrderByNumber", err)
	}
	return &checkoutv1.OrderResponse{Order: toProtoOrder(view.Order, view.Timeline)}, nil
}

func (s *CheckoutService) ListOrders(ctx context.Context, req *checkoutv1.ListOrdersRequest) (*checkoutv1.ListOrdersResponse, error) {
	orders, err := s.orders.ListOrders(session(ctx), int(req.GetLimit()))
	if err != nil {
		return nil, s.fail("ListOrders", err)
	}

	resp := &checkoutv1.ListOrdersResponse{Orders: make([]*checkoutv1.Order, 0, len(orders))}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, toProtoOrder(order, lifecycle.Timeline(order)))
	}
	return resp, nil
}

// ChangeOrderStatus - административная смена статуса.
func (s *CheckoutService) ChangeOrderStatus(ctx context.Context, req *checkoutv1.ChangeOrderStatusRequest) (*checkoutv1.OrderResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	order, err := s.orders.ChangeOrderStatus(ctx, checkout.ChangeStatusRequest{
		OrderID:        req.GetOrderId(),
		Status:         domain.OrderStatus(strings.ToUpper(req.GetStatus())),
		Message:        req.GetMessage(),
		ExpectedStatus: domain.OrderStatus(strings.ToUpper(req.GetExpectedStatus())),
	})
	return s.orderResponse("ChangeOrderStatus", order, err)
}

func (s *CheckoutService) AdvanceOrder(ctx context.Context, req *checkoutv1.AdvanceOrderRequest) (*checkoutv1.OrderResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	order, err := s.orders.AdvanceOrder(ctx, req.GetOrderId(), req.GetMessage())
	return s.orderResponse("AdvanceOrder", order, err)
}

func (s *CheckoutService) ChangePaymentStatus(ctx context.Context, req *checkoutv1.ChangePaymentStatusRequest) (*checkoutv1.OrderResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	order, err := s.orders.ChangePaymentStatus(ctx, req.GetOrderId(), domain.PaymentStatus(strings.ToUpper(req.GetPaymentStatus())))
	return s.orderResponse("ChangePaymentStatus", order, err)
}

// ReturnOrderItem оформляет возврат позиции от имени клиента.
func (s *CheckoutService) ReturnOrderItem(ctx context.Context, req *checkoutv1.ReturnOrderItemRequest) (*checkoutv1.OrderResponse, error) {
	if req.GetOrderId() == "" || req.GetItemId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id and item_id are required")
	}
	order, err := s.orders.ReturnOrderItem(session(ctx), req.GetOrderId(), req.GetItemId(), req.GetReason())
	return s.orderResponse("ReturnOrderItem", order, err)
}

func (s *CheckoutService) GetJobTimeline(ctx context.Context, req *checkoutv1.GetJobTimelineRequest) (*checkoutv1.JobTimelineResponse, error) {
	if s.jobs == nil {
		return nil, status.Error(codes.FailedPrecondition, "job feed is disabled")
	}
	events, err := s.jobs.Timeline(ctx, req.GetJobId())
	if err != nil {
		return nil, s.fail("GetJobTimeline", err)
	}

	resp := &checkoutv1.JobTimelineResponse{Events: make([]*checkoutv1.JobEvent, 0, len(events))}
	for _, event := range events {
		resp.Events = append(resp.Events, &checkoutv1.JobEvent{
			JobId:      event.JobID,
			Kind:       event.Kind,
			Status:     string(event.Status),
			Message:    event.Message,
			OccurredAt: formatTime(event.OccurredAt),
		})
	}
	return resp, nil
}

func (s *CheckoutService) cartResponse(ctx context.Context, method string, cart domain.Cart, err error) (*checkoutv1.CartResponse, error) {
	if err != nil {
		return nil, s.fail(method, err)
	}
	step := lifecycle.ResolveStep(checkout.CustomerFromContext(ctx) != "", cart)
	return &checkoutv1.CartResponse{Cart: toProtoCart(cart, step)}, nil
}

func (s *CheckoutService) orderResponse(method string, order domain.Order, err error) (*checkoutv1.OrderResponse, error) {
	if err != nil {
		return nil, s.fail(method, err)
	}
	return &checkoutv1.OrderResponse{Order: toProtoOrder(order, lifecycle.Timeline(order))}, nil
}

func (s *CheckoutService) fail(method string, err error) error {
	st := toStatus(err)
	entry := s.logger.WithError(err).WithField("method", method)
	if status.Code(st) == codes.Internal {
		entry.Error("request failed")
	} else {
		entry.WithField("reason", domain.ReasonCode(err)).Debug("request rejected")
	}
	return st
}

// session переносит x-customer-id из метаданных в контекст сервиса.
func session(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	if values := md.Get(CustomerMetadataKey); len(values) > 0 && strings.TrimSpace(values[0]) != "" {
		return checkout.WithCustomer(ctx, values[0])
	}
	return ctx
}

func toProtoCart(cart domain.Cart, step lifecycle.Step) *checkoutv1.Cart {
	out := &checkoutv1.Cart{
		Id:               cart.ID,
		CustomerId:       cart.CustomerID,
		Currency:         cart.Currency,
		Items:            make([]*checkoutv1.CartItem, 0, len(cart.Items)),
		ShippingAddress:  toProtoAddress(cart.ShippingAddress),
		BillingAddress:   toProtoAddress(cart.BillingAddress),
		CouponCode:       cart.CouponCode,
		SubtotalMinor:    cart.SubtotalMinor,
		DiscountMinor:    cart.DiscountMinor,
		ShippingFeeMinor: cart.ShippingFeeMinor,
		TaxMinor:         cart.TaxMinor,
		WalletUsedMinor:  cart.WalletUsedMinor,
		TotalMinor:       cart.TotalMinor,
		OrderId:          cart.OrderID,
		Version:          cart.Version,
		CurrentStep:      string(step),
		UpdatedAt:        formatTime(cart.UpdatedAt),
	}
	for _, item := range cart.Items {
		out.Items = append(out.Items, &checkoutv1.CartItem{
			Id:         item.ID,
			VariantId:  item.VariantID,
			Name:       item.Name,
			Image:      item.Image,
			PriceMinor: item.PriceMinor,
			Qty:        item.Qty,
		})
	}
	if cart.ShippingMethod != nil {
		out.ShippingMethod = string(*cart.ShippingMethod)
	}
	if cart.PaymentMethod != nil {
		out.PaymentMethod = string(*cart.PaymentMethod)
	}
	if cart.Phone != nil {
		out.Phone = *cart.Phone
	}
	return out
}

func toProtoOrder(order domain.Order, timeline []domain.OrderStatusEvent) *checkoutv1.Order {
	out := &checkoutv1.Order{
		Id:               order.ID,
		Number:           order.Number,
		CustomerId:       order.CustomerID,
		Currency:         order.Currency,
		Status:           string(order.Status),
		PaymentStatus:    string(order.PaymentStatus),
		ShippingMethod:   string(order.ShippingMethod),
		PaymentMethod:    string(order.PaymentMethod),
		ShippingAddress:  toProtoAddress(order.ShippingAddress),
		BillingAddress:   toProtoAddress(order.BillingAddress),
		Phone:            order.Phone,
		CouponCode:       order.CouponCode,
		SubtotalMinor:    order.SubtotalMinor,
		DiscountMinor:    order.DiscountMinor,
		ShippingFeeMinor: order.ShippingFeeMinor,
		TaxMinor:         order.TaxMinor,
		WalletUsedMinor:  order.WalletUsedMinor,
		TotalMinor:       order.TotalMinor,
		Items:            make([]*checkoutv1.OrderItem, 0, len(order.Items)),
		Timeline:         make([]*checkoutv1.TimelineEvent, 0, len(timeline)),
		Returns:          make([]*checkoutv1.ReturnRequest, 0, len(order.Returns)),
		Version:          order.Version,
		CreatedAt:        formatTime(order.CreatedAt),
		UpdatedAt:        formatTime(order.UpdatedAt),
	}
	for _, item := range order.Items {
		protoItem := &checkoutv1.OrderItem{
			Id:         item.ID,
			Name:       item.Name,
			Image:      item.Image,
			PriceMinor: item.PriceMinor,
			Qty:        item.Qty,
			VariantId:  item.VariantID,
			InStock:    item.InStock(),
			Returned:   order.Returned(item.ID),
		}
		if item.Variant != nil {
			protoItem.Inventory = item.Variant.Inventory
		}
		out.Items = append(out.Items, protoItem)
	}
	for _, event := range timeline {
		out.Timeline = append(out.Timeline, &checkoutv1.TimelineEvent{
			FromStatus: string(event.FromStatus),
			ToStatus:   string(event.ToStatus),
			Message:    event.Message,
			CreatedAt:  formatTime(event.CreatedAt),
		})
	}
	for _, ret := range order.Returns {
		out.Returns = append(out.Returns, &checkoutv1.ReturnRequest{
			ItemId:      ret.ItemID,
			Reason:      ret.Reason,
			RequestedAt: formatTime(ret.RequestedAt),
		})
	}
	return out
}

func toProtoAddress(addr *domain.Address) *checkoutv1.Address {
	if addr == nil {
		return nil
	}
	return &checkoutv1.Address{
		Id:         addr.ID,
		Type:       string(addr.Type),
		FullName:   addr.FullName,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		State:      addr.State,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}
}

func fromProtoAddress(addr *checkoutv1.Address) *domain.Address {
	if addr == nil {
		return nil
	}
	return &domain.Address{
		ID:         addr.Id,
		Type:       domain.AddressType(strings.ToUpper(addr.Type)),
		FullName:   addr.FullName,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		State:      addr.State,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
