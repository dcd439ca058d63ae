package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	LogLevel    string `env:"DASH_SAVIOR_LOG_LEVEL,default=info"`
	LogEncoding string `env:"DASH_SAVIOR_LOG_ENCODING,default=console"`
}

const EnvFile = ".env.local"

func LoadConfig(ctx context.Context) (*Config, error) {
	config := Config{}

	if err := godotenv.Load(EnvFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "LoadConfig error")
		}
	}

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, errors.Wrap(err, "LoadConfig error")
	}

	return &config, nil
}

// MakeLogger writes to stderr so that decoded output on stdout stays clean.
func MakeLogger(config Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		return nil, errors.Wrapf(err, `MakeLogger error: level "%s"`, config.LogLevel)
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(level)
	logConfig.Encoding = config.LogEncoding
	logConfig.OutputPaths = []string{"stderr"}
	if config.LogEncoding == "console" {
		logConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return logConfig.Build()
}
