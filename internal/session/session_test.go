package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/session"
)

func TestNew_PopulatesFields(t *testing.T) {
	s := session.New("bearer-token", domain.RoleGestor, "Maria Souza", time.Hour)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "bearer-token", s.Token)
	assert.Equal(t, domain.RoleGestor, s.Role)
	assert.Equal(t, "Maria Souza", s.UserName)
	assert.True(t, s.ExpiresAt.After(s.CreatedAt))
}

func TestNew_UniqueIDs(t *testing.T) {
	a := session.New("t", domain.RoleAdmin, "a", time.Hour)
	b := session.New("t", domain.RoleAdmin, "b", time.Hour)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	s := session.New("tok", domain.RoleAdmin, "Ana", time.Hour)

	assert.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, s.ID)
	assert.NoError(t, err)
	assert.Equal(t, s.Token, got.Token)
	assert.Equal(t, s.Role, got.Role)

	assert.NoError(t, store.Delete(ctx, s.ID))

	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestMemoryStore_UnknownID(t *testing.T) {
	store := session.NewMemoryStore()
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestMemoryStore_ExpiredSessionEvicted(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	s := session.New("tok", domain.RoleConsultor, "Ana", -time.Minute)

	assert.NoError(t, store.Put(ctx, s))

	_, err := store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestMemoryStore_DeleteUnknownIsNoop(t *testing.T) {
	store := session.NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec := session.NewCookieCodec("test-secret", "intellidocs-console")
	s := session.New("tok", domain.RoleAdmin, "Ana", time.Hour)

	value, err := codec.Encode(s)
	assert.NoError(t, err)
	assert.NotEmpty(t, value)

	id, err := codec.Decode(value)
	assert.NoError(t, err)
	assert.Equal(t, s.ID, id)
}

func TestCookieCodec_RejectsTamperedValue(t *testing.T) {
	codec := session.NewCookieCodec("test-secret", "intellidocs-console")
	s := session.New("tok", domain.RoleAdmin, "Ana", time.Hour)

	value, err := codec.Encode(s)
	assert.NoError(t, err)

	_, err = codec.Decode(value + "x")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestCookieCodec_RejectsWrongSecret(t *testing.T) {
	issuing := session.NewCookieCodec("secret-one", "intellidocs-console")
	verifying := session.NewCookieCodec("secret-two", "intellidocs-console")
	s := session.New("tok", domain.RoleAdmin, "Ana", time.Hour)

	value, err := issuing.Encode(s)
	assert.NoError(t, err)

	_, err = verifying.Decode(value)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestCookieCodec_RejectsExpiredCookie(t *testing.T) {
	codec := session.NewCookieCodec("test-secret", "intellidocs-console")
	s := session.New("tok", domain.RoleAdmin, "Ana", -time.Minute)

	value, err := codec.Encode(s)
	assert.NoError(t, err)

	_, err = codec.Decode(value)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestCookieCodec_RejectsGarbage(t *testing.T) {
	codec := session.NewCookieCodec("test-secret", "intellidocs-console")
	_, err := codec.Decode("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}
