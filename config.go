package covenant

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config holds the environment-tunable knobs of a Registry.
type Config struct {
	IDPrefix string `env:"COVENANT_ID_PREFIX" envDefault:"cov_"`
	Debug    bool   `env:"COVENANT_DEBUG"     envDefault:"false"`
}

// LoadConfigFromEnv parses Config from the process environment.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse covenant env")
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = DefaultIDPrefix
	}
	return cfg, nil
}

// Options turns the config into registry options. When Debug is set, registry activity is
// logged through a development zap logger.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithIDPrefix(c.IDPrefix)}
	if !c.Debug {
		return opts, nil
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, errors.Wrap(err, "build debug logger")
	}
	return append(opts, WithLogger(NewZapLogger(l.Sugar()))), nil
}
