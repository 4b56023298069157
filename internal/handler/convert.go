package handler

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
)

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func optString(s string) oas.OptString {
	if s == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(s)
}

func (h *Handler) toProduct(p product.Product) oas.Product {
	base := h.imageBaseURL
	return oas.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         money(p.Price),
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		InStock:       p.InStock(1),
		Image: oas.Image{
			Thumbnail: base + p.Image.Thumbnail,
			Mobile:    base + p.Image.Mobile,
			Tablet:    base + p.Image.Tablet,
			Desktop:   base + p.Image.Desktop,
		},
	}
}

func toCartItem(it cart.Item) oas.CartItem {
	return oas.CartItem{
		ProductId:  it.ProductID,
		Quantity:   it.Quantity,
		PriceAtAdd: money(it.PriceAtAdd),
		AddedAt:    it.AddedAt.UTC(),
	}
}

func toAddress(a order.Address) oas.Address {
	return oas.Address{
		FullName:   a.FullName,
		Phone:      optString(a.Phone),
		Line1:      a.Line1,
		Line2:      optString(a.Line2),
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    optString(a.Country),
	}
}

func fromAddress(a oas.Address) order.Address {
	return order.Address{
		FullName:   a.FullName,
		Phone:      a.Phone.Or(""),
		Line1:      a.Line1,
		Line2:      a.Line2.Or(""),
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country.Or(""),
	}
}

func toOrder(o *order.Order) oas.Order {
	items := make([]oas.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = oas.OrderItem{
			ProductId:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   money(it.UnitPrice),
			LineTotal:   money(it.LineTotal),
		}
	}
	history := make([]oas.StatusChange, len(o.History))
	for i, c := range o.History {
		history[i] = oas.StatusChange{
			Status:    string(c.Status),
			Comment:   c.Comment,
			Actor:     c.Actor,
			CreatedAt: c.CreatedAt.UTC(),
		}
	}

	res := oas.Order{
		ID:              o.ID,
		OrderNumber:     o.Number,
		UserId:          o.UserID,
		Status:          string(o.Status),
		Items:           items,
		Subtotal:        money(o.Subtotal),
		TaxAmount:       money(o.TaxAmount),
		ShippingAmount:  money(o.ShippingAmount),
		DiscountAmount:  money(o.DiscountAmount),
		TotalAmount:     money(o.TotalAmount),
		CouponCode:      optString(o.CouponCode),
		PaymentMethod:   string(o.PaymentMethod),
		ShippingAddress: toAddress(o.ShippingAddress),
		BillingAddress:  toAddress(o.BillingAddress),
		Notes:           optString(o.Notes),
		StatusHistory:   history,
		CreatedAt:       o.CreatedAt.UTC(),
		UpdatedAt:       o.UpdatedAt.UTC(),
	}
	if o.TrackingNumber != nil {
		res.TrackingNumber = oas.NewOptString(*o.TrackingNumber)
	}
	if o.DeliveredAt != nil {
		res.DeliveredAt = oas.NewOptDateTime(o.DeliveredAt.UTC())
	}
	return res
}

func toCoupon(c *coupon.Coupon) oas.Coupon {
	res := oas.Coupon{
		ID:                 c.ID,
		Code:               c.Code,
		Description:        c.Description,
		DiscountType:       string(c.DiscountType),
		DiscountValue:      money(c.Value),
		MinimumOrderAmount: money(c.MinimumOrderAmount),
		UsedCount:          c.UsedCount,
		ValidFrom:          c.ValidFrom.UTC(),
		ValidUntil:         c.ValidUntil.UTC(),
		IsActive:           c.IsActive,
	}
	if c.MaximumDiscountAmount != nil {
		res.MaximumDiscountAmount = oas.NewOptFloat64(money(*c.MaximumDiscountAmount))
	}
	if c.UsageLimit != nil {
		res.UsageLimit = oas.NewOptInt(*c.UsageLimit)
	}
	return res
}
