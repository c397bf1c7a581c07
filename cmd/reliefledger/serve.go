package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reliefledger/internal/ledger"
	"reliefledger/internal/seed"
	"reliefledger/internal/server"
	"reliefledger/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP call surface",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx.String("env-prefix"))
	if err != nil {
		return err
	}

	logger := newLogger(config)

	l := ledger.New(types.BlockHeight(config.GenesisHeight), logger)

	if config.SeedNeeds > 0 || config.SeedResources > 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))

		needs, err := seed.Needs(l, config.SeedNeeds, rng)
		if err != nil {
			return err
		}

		resources, err := seed.Resources(l, config.SeedResources, rng)
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"needs":     needs,
			"resources": resources,
			"height":    l.Height(),
		}).Info("seeded registries")
	}

	srv := server.New(config, logger, l)

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
