package container

import (
	"io"
	"testing"

	"interfaces-generator/internal/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewContainer(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		Log:       config.LogConfig{Level: "info", Format: "text"},
		Server:    config.ServerConfig{ListenAddr: ":8080"},
		Generator: config.GeneratorConfig{TargetPath: "/tmp/interfaces"},
	}

	c := NewContainer(cfg, logger)

	assert.Same(t, cfg, c.GetConfig())
	assert.Same(t, logger, c.GetLogger())
	assert.NotNil(t, c.GetHealthService())
	assert.NotNil(t, c.GetRenderConfigUseCase())
	assert.NotNil(t, c.GetDiscoverInterfacesUseCase())
	assert.NotNil(t, c.GetAPIHandler())

	editor := c.GetInterfaceEditor()
	record := editor.Add()
	assert.Len(t, record.ID, 36)
	assert.Contains(t, editor.Generate(), "# Target: /tmp/interfaces\n")
}
