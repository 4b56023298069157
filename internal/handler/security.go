package handler

import (
	"context"
	"strings"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/auth"
)

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// adminOperations need the admin scope, keyed by lower-cased operation name.
// Every other secured operation needs the orders scope.
var adminOperations = map[string]struct{}{
	"updateorderstatus": {},
	"listcoupons":       {},
	"createcoupon":      {},
	"getcoupon":         {},
	"deactivatecoupon":  {},
	"deletecoupon":      {},
}

func requiredScope(op oas.OperationName) string {
	if _, ok := adminOperations[strings.ToLower(string(op))]; ok {
		return auth.ScopeAdmin
	}
	return auth.ScopeOrders
}

// SecurityHandler implements ogen's SecurityHandler interface. It resolves
// the api_key header to a principal and checks the scope the operation needs.
type SecurityHandler struct {
	auth *auth.Authenticator
}

// NewSecurityHandler creates a SecurityHandler over authn.
func NewSecurityHandler(authn *auth.Authenticator) *SecurityHandler {
	return &SecurityHandler{auth: authn}
}

// HandleAPIKey authenticates the key and stores the principal in the
// returned context.
func (s *SecurityHandler) HandleAPIKey(ctx context.Context, op oas.OperationName, t oas.APIKey) (context.Context, error) {
	p, err := s.auth.Authenticate(ctx, t.APIKey)
	if err != nil {
		return ctx, err
	}
	if !p.Has(requiredScope(op)) {
		return ctx, auth.ErrForbidden
	}
	return auth.WithPrincipal(ctx, p), nil
}
