package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
)

type Environment struct {
	ARIN
	MQ
}

type ARIN struct {
	BaseURL        string
	Timeout        time.Duration
	MaxConcurrency int
	UserAgent      string
	LogfilePath    string
	LogLevel       string
}

type MQ struct {
	URL string
}

// New loads settings from environment variables (an optional .env file is applied first).
func New() (e Environment, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return e, fmt.Errorf("New: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("ARIN")
	v.AutomaticEnv()

	v.SetDefault("BASE_URL", constants.ARINBaseURL)
	v.SetDefault("TIMEOUT", constants.ARINRequestTimeout)
	v.SetDefault("MAX_CONCURRENCY", constants.ARINMaxConcurrency)
	v.SetDefault("MQ_URL", nats.DefaultURL)

	e.ARIN.BaseURL = v.GetString("BASE_URL")
	e.ARIN.Timeout = v.GetDuration("TIMEOUT")
	if e.ARIN.Timeout <= 0 {
		return e, fmt.Errorf("New: invalid request timeout %q", v.GetString("TIMEOUT"))
	}

	e.ARIN.MaxConcurrency = v.GetInt("MAX_CONCURRENCY")
	if e.ARIN.MaxConcurrency < 1 {
		return e, fmt.Errorf("New: max concurrency must be positive, got %d", e.ARIN.MaxConcurrency)
	}

	e.ARIN.UserAgent = v.GetString("USER_AGENT")
	if lo.IsEmpty(e.ARIN.UserAgent) {
		e.ARIN.UserAgent = constants.ARINUserAgent
	}

	e.ARIN.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.ARIN.LogfilePath) {
		e.ARIN.LogfilePath = constants.DefaultLogfilePath
	}

	e.ARIN.LogLevel = v.GetString("LOG_LEVEL")
	if lo.IsEmpty(e.ARIN.LogLevel) {
		e.ARIN.LogLevel = constants.DefaultLogLevel
	}

	e.MQ.URL = v.GetString("MQ_URL")

	return e, nil
}

func (e ARIN) IsDebug() bool {
	return e.LogLevel == "debug" || e.LogLevel == "trace"
}
