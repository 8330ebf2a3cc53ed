package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (*SessionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	svc, err := NewSessionService(mr.Host(), port, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc, mr
}

func TestSessionRoundTrip(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	data := SessionData{UserID: 3, Login: "admin", IsModerator: true}
	require.NoError(t, svc.Create(ctx, "sid-1", data))

	got, err := svc.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, data, *got)
}

func TestSessionMissing(t *testing.T) {
	svc, _ := newTestSessionService(t)

	// отсутствие сессии — это nil, а не ошибка
	got, err := svc.Get(context.Background(), "no-such")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionDelete(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "sid-2", SessionData{UserID: 1, Login: "u"}))
	require.NoError(t, svc.Delete(ctx, "sid-2"))

	got, err := svc.Get(ctx, "sid-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionExpires(t *testing.T) {
	svc, mr := newTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "sid-3", SessionData{UserID: 2, Login: "v"}))

	// по истечении TTL сессия пропадает
	mr.FastForward(25 * time.Hour)

	got, err := svc.Get(ctx, "sid-3")
	require.NoError(t, err)
	assert.Nil(t, got)
}
