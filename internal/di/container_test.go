package di

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/ports"
	"github.com/mikey/fraud-detector/internal/utils"
)

func TestBuildContainerResolvesServer(t *testing.T) {
	container, err := BuildContainer()
	require.NoError(t, err)

	err = container.Invoke(func(srv ports.ArtifactServer, svc *core.FraudDetectionService, cache core.ResultCache) {
		assert.NotNil(t, srv)
		assert.NotNil(t, svc)
		cache.Stop()
	})
	assert.NoError(t, err)
}

func TestBuildContainerResolvesTextProcessor(t *testing.T) {
	container, err := BuildContainer()
	require.NoError(t, err)

	err = container.Invoke(func(tp *utils.TextProcessor, cache core.ResultCache) {
		assert.NotNil(t, tp)
		cache.Stop()
	})
	assert.NoError(t, err)
}

func TestBuildCLIContainerResolvesService(t *testing.T) {
	flags := &CLIFlags{
		DNSServer:  "8.8.8.8:53",
		DNSTimeout: 2 * time.Second,
		TLSTimeout: 3 * time.Second,
	}
	container, err := BuildCLIContainer(flags)
	require.NoError(t, err)

	err = container.Invoke(func(svc *core.FraudDetectionService) {
		assert.NotNil(t, svc)
	})
	assert.NoError(t, err)
}
