package strategy

import (
	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// Config holds environment driven defaults for the session strategy.
type Config struct {
	// PauseStream buffers request stream events on every invocation,
	// in addition to the per-call Options.PauseStream.
	PauseStream bool `env:"SESSION_STRATEGY_PAUSE_STREAM" envDefault:"false"`

	// UserProperty is the request slot for restored users.
	UserProperty string `env:"SESSION_STRATEGY_USER_PROPERTY" envDefault:"user"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		PauseStream:  false,
		UserProperty: DefaultUserProperty,
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewInit builds the initialization sub-context for one request using the
// configured user slot.
func (c Config) NewInit(instance Deserializer, sess *session.Session) *Init {
	return &Init{
		Instance:     instance,
		Session:      sess,
		UserProperty: c.UserProperty,
	}
}
