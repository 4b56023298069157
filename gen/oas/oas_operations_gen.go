// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	CancelOrderOperation       OperationName = "CancelOrder"
	CreateCouponOperation      OperationName = "CreateCoupon"
	CreateOrderOperation       OperationName = "CreateOrder"
	DeactivateCouponOperation  OperationName = "DeactivateCoupon"
	DeleteCouponOperation      OperationName = "DeleteCoupon"
	GetCartOperation           OperationName = "GetCart"
	GetCouponOperation         OperationName = "GetCoupon"
	GetOrderOperation          OperationName = "GetOrder"
	GetProductOperation        OperationName = "GetProduct"
	ListCouponsOperation       OperationName = "ListCoupons"
	ListOrdersOperation        OperationName = "ListOrders"
	ListProductsOperation      OperationName = "ListProducts"
	RemoveCartItemOperation    OperationName = "RemoveCartItem"
	SetCartItemOperation       OperationName = "SetCartItem"
	UpdateOrderStatusOperation OperationName = "UpdateOrderStatus"
	UseCouponOperation         OperationName = "UseCoupon"
	ValidateCouponOperation    OperationName = "ValidateCoupon"
)
