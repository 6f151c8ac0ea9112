package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient(&RedisConfig{Mode: "standalone", Addr: mr.Addr()}, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestNewClient_Standalone_Success(t *testing.T) {
	_, client := newTestClient(t)

	assert.NoError(t, client.Check(context.Background()))
	assert.Equal(t, "redis", client.Name())
}

func TestNewClient_ConnectionFailed(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client, err := NewClient(&RedisConfig{Addr: addr, DialTimeout: 200 * time.Millisecond}, nil)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBroadcastUnavailable))
}

func TestNewClient_UnknownModeFallsBackToStandalone(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(&RedisConfig{Mode: "weird", Addr: mr.Addr()}, nil)
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()))
}

func TestBuildTLSConfig_MissingCAFile(t *testing.T) {
	_, err := buildTLSConfig(&RedisConfig{TLSEnabled: true, TLSCAFile: "/nonexistent/ca.pem"})
	assert.Error(t, err)

	cfg, err := buildTLSConfig(&RedisConfig{})
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestClient_PublishSubscribe(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	ps, err := client.Subscribe(ctx, "frames")
	require.NoError(t, err)
	defer ps.Close()

	n, err := client.Publish(ctx, "frames", []byte(`{"tick":1}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	select {
	case msg := <-ps.Channel():
		assert.Equal(t, `{"tick":1}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestClient_Close(t *testing.T) {
	_, client := newTestClient(t)
	require.NoError(t, client.Close())
	assert.NoError(t, client.Close(), "second close is a no-op")

	ctx := context.Background()
	assert.ErrorIs(t, client.Ping(ctx), ErrClientClosed)
	_, err := client.Publish(ctx, "frames", nil)
	assert.ErrorIs(t, err, ErrClientClosed)
	_, err = client.Subscribe(ctx, "frames")
	assert.ErrorIs(t, err, ErrClientClosed)
}

//Personal.AI order the ending
