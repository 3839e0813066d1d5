package checkoutv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestFileDescriptor_RegisteredForReflection(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath("checkout/v1/checkout_service.proto")
	require.NoError(t, err)
	assert.Equal(t, protoreflect.FullName("checkout.v1"), fd.Package())

	svc := fd.Services().ByName("CheckoutService")
	require.NotNil(t, svc)
	assert.Equal(t, len(CheckoutService_ServiceDesc.Methods), svc.Methods().Len())

	placeOrder := svc.Methods().ByName("PlaceOrder")
	require.NotNil(t, placeOrder)
	assert.Equal(t, protoreflect.FullName("checkout.v1.PlaceOrderRequest"), placeOrder.Input().FullName())
	assert.Equal(t, protoreflect.FullName("checkout.v1.OrderResponse"), placeOrder.Output().FullName())

	mt, err := protoregistry.GlobalTypes.FindMessageByName("checkout.v1.Cart")
	require.NoError(t, err)
	assert.IsType(t, &Cart{}, mt.New().Interface())
}

func TestUpdateCartDetailsRequest_KeepsOptionalPresence(t *testing.T) {
	phone := "+2348000000000"
	var wallet int64
	req := &UpdateCartDetailsRequest{CartId: "cart-1", Phone: &phone, WalletUsedMinor: &wallet}

	data, err := proto.Marshal(req)
	require.NoError(t, err)

	var decoded UpdateCartDetailsRequest
	require.NoError(t, proto.Unmarshal(data, &decoded))
	assert.Equal(t, "cart-1", decoded.GetCartId())
	require.NotNil(t, decoded.Phone)
	assert.Equal(t, phone, decoded.GetPhone())
	// явный ноль отличается от незаданного поля
	require.NotNil(t, decoded.WalletUsedMinor)
	assert.Zero(t, decoded.GetWalletUsedMinor())
	assert.Nil(t, decoded.ShippingMethod)
	assert.Nil(t, decoded.ExpectedVersion)
}

func TestOrder_WireRoundTrip(t *testing.T) {
	order := &Order{
		Id:            "order-1",
		Number:        "ORD-20261019-AB12CD34",
		Status:        "PROCESSING",
		PaymentStatus: "SUCCESS",
		TotalMinor:    410000,
		Items:         []*OrderItem{{Id: "item-1", Name: "Mug", PriceMinor: 200000, Qty: 2, InStock: true}},
		Timeline:      []*TimelineEvent{{FromStatus: "PENDING", ToStatus: "PROCESSING"}},
	}

	data, err := proto.Marshal(&OrderResponse{Order: order})
	require.NoError(t, err)

	var decoded OrderResponse
	require.NoError(t, proto.Unmarshal(data, &decoded))
	assert.True(t, proto.Equal(order, decoded.GetOrder()))
	assert.Equal(t, int32(2), decoded.GetOrder().GetItems()[0].GetQty())
}

func TestCart_ProtojsonUsesCamelCaseNames(t *testing.T) {
	data, err := protojson.Marshal(&Cart{Id: "cart-1", SubtotalMinor: 4000, CurrentStep: "SHIPPING"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"cart-1","subtotalMinor":"4000","currentStep":"SHIPPING"}`, string(data))

	var cart Cart
	require.NoError(t, protojson.Unmarshal([]byte(`{"id":"cart-2","shipping_fee_minor":"1500"}`), &cart))
	assert.Equal(t, int64(1500), cart.GetShippingFeeMinor())
}

func TestNilGettersReturnZeroValues(t *testing.T) {
	var req *ChangeOrderStatusRequest
	assert.Empty(t, req.GetOrderId())
	assert.Empty(t, req.GetExpectedStatus())

	var patch *UpdateCartDetailsRequest
	assert.Empty(t, patch.GetPhone())
	assert.Zero(t, patch.GetExpectedVersion())

	var resp *ListOrdersResponse
	assert.Nil(t, resp.GetOrders())
}
