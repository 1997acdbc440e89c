package strategy_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/strategy"
)

func TestDefaultConfig(t *testing.T) {
	cfg := strategy.DefaultConfig()
	assert.False(t, cfg.PauseStream)
	assert.Equal(t, "user", cfg.UserProperty)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("SESSION_STRATEGY_PAUSE_STREAM", "")
		t.Setenv("SESSION_STRATEGY_USER_PROPERTY", "")
		os.Unsetenv("SESSION_STRATEGY_PAUSE_STREAM")
		os.Unsetenv("SESSION_STRATEGY_USER_PROPERTY")

		cfg, err := strategy.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, strategy.DefaultConfig(), cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("SESSION_STRATEGY_PAUSE_STREAM", "true")
		t.Setenv("SESSION_STRATEGY_USER_PROPERTY", "account")

		cfg, err := strategy.LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.PauseStream)
		assert.Equal(t, "account", cfg.UserProperty)
	})

	t.Run("invalid value", func(t *testing.T) {
		config.Reset()
		t.Setenv("SESSION_STRATEGY_PAUSE_STREAM", "sometimes")

		_, err := strategy.LoadConfig()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	config.Reset()
}

func TestConfig_NewInit(t *testing.T) {
	d := &MockDeserializer{}
	sess := session.New()

	initCtx := strategy.Config{UserProperty: "member"}.NewInit(d, sess)

	assert.Same(t, d, initCtx.Instance)
	assert.Same(t, sess, initCtx.Session)
	assert.Equal(t, "member", initCtx.UserProperty)
}
