package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	assert.Equal(t, "0.0.0.0:8080", cfg.GetString("server.listen_address"))
	assert.Equal(t, "info", cfg.GetString("logging.level"))
	assert.Equal(t, "memory", cfg.GetString("classifier.store_type"))
	assert.True(t, cfg.GetBool("cache.enabled"))

	ttl, err := cfg.GetDuration("cache.ttl")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)
}

func TestGetNetwork(t *testing.T) {
	v := NewEmptyViper()
	v.Set("network.dns_timeout", "750ms")
	v.Set("network.dns_server", "1.1.1.1:53")
	cfg := NewFromViper(v)

	net := cfg.GetNetwork()
	assert.Equal(t, "1.1.1.1:53", net.DNSServer)
	assert.Equal(t, 750*time.Millisecond, net.DNSTimeout)
	assert.Equal(t, 3*time.Second, net.TLSTimeout)
}

func TestGetNetworkFallsBackOnBadDuration(t *testing.T) {
	v := NewEmptyViper()
	v.Set("network.dns_timeout", "not a duration")
	cfg := NewFromViper(v)

	assert.Equal(t, 2*time.Second, cfg.GetNetwork().DNSTimeout)
}

func TestGetClassifier(t *testing.T) {
	v := NewEmptyViper()
	v.Set("classifier.store_type", "sqlite")
	v.Set("classifier.sqlite_path", "/tmp/models.db")
	v.Set("classifier.seed", 7)
	cfg := NewFromViper(v)

	c := cfg.GetClassifier()
	assert.Equal(t, "sqlite", c.StoreType)
	assert.Equal(t, "/tmp/models.db", c.SQLitePath)
	assert.Equal(t, "phishing-text-v1", c.ModelKey)
	assert.Equal(t, int64(7), c.Seed)
}

func TestGetServer(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	s := cfg.GetServer()
	assert.Equal(t, "0.0.0.0:8080", s.ListenAddress)
	assert.Equal(t, "release", s.Mode)
	assert.Equal(t, 1048576, s.MaxContentSize)
	assert.Equal(t, 5242880, s.MaxImageSize)
}
