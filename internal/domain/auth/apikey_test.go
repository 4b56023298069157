package auth

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockKeys struct {
	byHash map[string]*APIKeyInfo
	err    error
}

func (m *mockKeys) FindByHash(_ context.Context, hash string) (*APIKeyInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	info, ok := m.byHash[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return info, nil
}

func TestAuthenticate(t *testing.T) {
	pepper := []byte("pepper")
	uid := int64(42)
	hash := HashKey(pepper, "secret-key")
	keys := &mockKeys{byHash: map[string]*APIKeyInfo{
		hash: {ID: "k1", KeyHash: hash, Name: "test", UserID: &uid, Scopes: []string{ScopeOrders}},
		// A row whose stored hash doesn't match the lookup key.
		HashKey(pepper, "tampered"): {ID: "k2", KeyHash: hash, Scopes: []string{ScopeAdmin}},
	}}
	a := NewAuthenticator(keys, pepper)
	ctx := context.Background()

	p, err := a.Authenticate(ctx, "secret-key")
	require.NoError(t, err)
	assert.Equal(t, "k1", p.KeyID)
	require.NotNil(t, p.UserID)
	assert.Equal(t, uid, *p.UserID)
	assert.True(t, p.Has(ScopeOrders))
	assert.False(t, p.Has(ScopeAdmin))

	for _, key := range []string{"", "wrong", "tampered"} {
		_, err := a.Authenticate(ctx, key)
		assert.ErrorIs(t, err, ErrUnauthorized, "key %q", key)
	}

	// Same key under another pepper must not match.
	_, err = NewAuthenticator(keys, []byte("other")).Authenticate(ctx, "secret-key")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticateRepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	a := NewAuthenticator(&mockKeys{err: boom}, nil)

	_, err := a.Authenticate(context.Background(), "key")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFrom(context.Background())
	assert.False(t, ok)

	ctx := WithPrincipal(context.Background(), Principal{KeyID: "k1", Scopes: []string{ScopeAdmin}})
	p, ok := PrincipalFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "k1", p.KeyID)
	assert.True(t, p.Has(ScopeAdmin))
}
