package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/pkg/httpmiddleware"
)

// NewError maps errors returned by handler methods to the failure envelope.
// Unexpected errors are logged and reported without detail.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	status, msg := classify(err)
	return failure(ctx, status, msg, err)
}

func failure(ctx context.Context, status int, msg string, err error) *oas.ErrorStatusCode {
	resp := oas.Error{Success: false, Message: msg}
	if status >= http.StatusInternalServerError {
		zctx.From(ctx).Error("Request failed", zap.Int("status", status), zap.Error(err))
		if id := httpmiddleware.RequestIDFromContext(ctx); id != "" {
			resp.RequestId = oas.NewOptString(id)
		}
	}
	return &oas.ErrorStatusCode{StatusCode: status, Response: resp}
}

// HandleError writes failures raised by the generated server before a
// handler method runs: security, parameter and body decoding errors.
func HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var (
		secErr    *ogenerrors.SecurityError
		paramsErr *ogenerrors.DecodeParamsError
		bodyErr   *ogenerrors.DecodeRequestError
		res       *oas.ErrorStatusCode
	)
	switch {
	case errors.As(err, &secErr):
		if errors.Is(err, auth.ErrForbidden) {
			res = failure(ctx, http.StatusForbidden, auth.ErrForbidden.Error(), err)
		} else {
			res = failure(ctx, http.StatusUnauthorized, "invalid or missing API key", err)
		}
	case errors.As(err, &paramsErr):
		res = failure(ctx, http.StatusBadRequest, "invalid request parameters", err)
	case errors.As(err, &bodyErr):
		res = failure(ctx, http.StatusBadRequest, "malformed request body", err)
	case errors.Is(err, ht.ErrNotImplemented):
		res = failure(ctx, http.StatusNotImplemented, "not implemented", err)
	default:
		res = failure(ctx, http.StatusInternalServerError, "internal error", err)
	}
	writeError(w, res)
}

// NotFound answers API paths no operation matches.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, failure(r.Context(), http.StatusNotFound, "route not found", nil))
}

func writeError(w http.ResponseWriter, res *oas.ErrorStatusCode) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}

var sentinels = []struct {
	err    error
	status int
}{
	{auth.ErrForbidden, http.StatusForbidden},
	{errNoUser, http.StatusForbidden},

	{order.ErrEmptyCart, http.StatusBadRequest},
	{order.ErrInvalidPaymentMethod, http.StatusBadRequest},
	{order.ErrTrackingNumberRequired, http.StatusBadRequest},
	{order.ErrUnknownStatus, http.StatusBadRequest},

	{product.ErrNotFound, http.StatusNotFound},
	{cart.ErrItemNotFound, http.StatusNotFound},
	{order.ErrNotFound, http.StatusNotFound},
	{coupon.ErrNotFound, http.StatusNotFound},
	{coupon.ErrOrderNotFound, http.StatusNotFound},

	{coupon.ErrCodeTaken, http.StatusConflict},
	{coupon.ErrInUse, http.StatusConflict},
	{coupon.ErrUsageLimitReached, http.StatusConflict},
	{coupon.ErrAlreadyUsed, http.StatusConflict},
}

// classify maps err to a status code and a client-facing message.
func classify(err error) (int, string) {
	var (
		qty       *cart.QuantityError
		short     *cart.StockError
		addr      *order.AddressError
		invalid   *coupon.ValidationError
		rejected  *order.CouponRejectedError
		stock     *order.InsufficientStockError
		gone      *order.ProductUnavailableError
		badStatus *order.TransitionError
	)
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized, "invalid or missing API key"
	case errors.As(err, &qty):
		return http.StatusBadRequest, qty.Error()
	case errors.As(err, &addr):
		return http.StatusBadRequest, addr.Error()
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Error()
	case errors.As(err, &rejected):
		return http.StatusBadRequest, rejected.Reason
	case errors.As(err, &short):
		return http.StatusConflict, short.Error()
	case errors.As(err, &stock):
		return http.StatusConflict, stock.Error()
	case errors.As(err, &gone):
		return http.StatusConflict, gone.Error()
	case errors.As(err, &badStatus):
		return http.StatusConflict, badStatus.Error()
	case errors.Is(err, order.ErrOrderNumberExhausted):
		return http.StatusServiceUnavailable, "order could not be placed, please retry"
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.status, s.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal error"
}
