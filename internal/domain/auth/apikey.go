// Package auth authenticates API keys and carries the resulting principal
// through request contexts.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"slices"

	"github.com/go-faster/errors"
)

// Scopes granted to API keys.
const (
	// ScopeOrders allows a key to act as its user: cart, checkout, own orders.
	ScopeOrders = "orders"
	// ScopeAdmin allows order status management and coupon administration.
	ScopeAdmin = "admin"
)

var (
	// ErrUnauthorized is returned for missing, unknown or revoked keys.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a valid key lacks a required scope.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned by repositories when no key matches.
	ErrNotFound = errors.New("api key not found")
)

// APIKeyInfo holds the identity and permission data for a validated API key.
type APIKeyInfo struct {
	ID      string
	KeyHash string
	Name    string
	// UserID is the storefront user the key acts for. Admin-only keys may
	// have none.
	UserID *int64
	Scopes []string
}

// Repository provides lookup of API keys by their HMAC hash.
type Repository interface {
	FindByHash(ctx context.Context, hash string) (*APIKeyInfo, error)
}

// Principal is the authenticated caller of a request.
type Principal struct {
	KeyID  string
	UserID *int64
	Scopes []string
}

// Has reports whether p was granted scope.
func (p Principal) Has(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}

// HashKey returns the hex HMAC-SHA256 of key under pepper, the form in
// which keys are stored.
func HashKey(pepper []byte, key string) string {
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(key))
	return hex.EncodeToString(mac.Sum(nil))
}

// Authenticator resolves raw API keys into principals.
type Authenticator struct {
	keys   Repository
	pepper []byte
}

// NewAuthenticator creates an Authenticator over the key repository.
func NewAuthenticator(keys Repository, pepper []byte) *Authenticator {
	return &Authenticator{keys: keys, pepper: pepper}
}

// Authenticate hashes key, looks it up and compares the stored hash in
// constant time. Unknown or mismatched keys yield ErrUnauthorized.
func (a *Authenticator) Authenticate(ctx context.Context, key string) (Principal, error) {
	if key == "" {
		return Principal{}, ErrUnauthorized
	}
	mac := hmac.New(sha256.New, a.pepper)
	mac.Write([]byte(key))
	hash := mac.Sum(nil)

	info, err := a.keys.FindByHash(ctx, hex.EncodeToString(hash))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Principal{}, ErrUnauthorized
		}
		return Principal{}, errors.Wrap(err, "find api key")
	}

	stored, err := hex.DecodeString(info.KeyHash)
	if err != nil || subtle.ConstantTimeCompare(hash, stored) != 1 {
		return Principal{}, ErrUnauthorized
	}

	return Principal{KeyID: info.ID, UserID: info.UserID, Scopes: info.Scopes}, nil
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
