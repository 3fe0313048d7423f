package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/arin-enricher/infrastructure"
	"github.com/Fivegen-LLC/arin-enricher/internal/environment"
	"github.com/Fivegen-LLC/arin-enricher/internal/logger"
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := logger.SetupRollingLogFile(env.ARIN.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	logger.SetOutput(logWriter)
	if err = logger.SetLogLevel(env.ARIN.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().
		Any("app", env).
		Str("version", serviceVersion).
		Str("log path", env.ARIN.LogfilePath).
		Str("log level", env.ARIN.LogLevel).
		Str("registry", env.ARIN.BaseURL).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().Msg("main: start initializing app services...")
	if err = initServices(kernel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel)
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(kernel *infrastructure.Kernel) (err error) {
	// connect to message broker
	log.Info().Msg("initServices: connecting to MQ broker...")
	mqService := kernel.InjectMQService()
	mqService.RegisterHandlers(getMQRoutes(kernel))
	if err = mqService.Connect(); err != nil {
		return fmt.Errorf("initServices: connection to message broker failed: %w", err)
	}
	log.Info().Msg("initServices: connected to MQ broker")

	return nil
}

func shutdownServices(kernel *infrastructure.Kernel) {
	if err := kernel.InjectMQService().Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close MQ error")
	}
}
