package verify

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/statelayer/sigil/pkg/log"
	"github.com/statelayer/sigil/pkg/sign"
)

const (
	configDirPathEnv     = "SIGIL_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
)

// Config is the environment-driven configuration for a Verifier.
type Config struct {
	// AcceptHighS opts in to non-canonical high-s signatures. Off unless a
	// legacy external signer requires it.
	AcceptHighS bool `env:"SIGIL_ACCEPT_HIGH_S" env-default:"false"`

	Log log.Config
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment, then validates it.
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	dotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(dotEnvPath); err != nil {
		logger.Debug(".env file not found", "path", dotEnvPath)
	}

	var conf Config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		logger.Error("failed to read env", "err", err)
		return nil, errors.WithMessage(err, "could not read configuration from environment")
	}

	if err := validator.New().Struct(conf); err != nil {
		logger.Error("invalid configuration", "err", err)
		return nil, errors.WithMessage(err, "invalid configuration")
	}

	logger.Info("configuration loaded", "acceptHighS", conf.AcceptHighS)
	return &conf, nil
}

// NewLogger creates the configured production logger.
func (c *Config) NewLogger() log.Logger {
	return log.NewZapLogger(c.Log)
}

// NewVerifier creates a Verifier with the configured recovery policy.
func (c *Config) NewVerifier(logger log.Logger, metrics *Metrics) *Verifier {
	var recovererOpts []sign.RecovererOption
	if c.AcceptHighS {
		recovererOpts = append(recovererOpts, sign.WithAllowHighS())
	}

	return NewVerifier(
		WithRecoverer(sign.NewEthereumAddressRecoverer(recovererOpts...)),
		WithLogger(logger),
		WithMetrics(metrics),
	)
}
