package main

import (
	"fmt"
	"math"

	"reliefledger/pkg/types"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// maxGenesisHeight leaves the block clock room to advance without wrapping.
const maxGenesisHeight = math.MaxInt64

func loadConfig(prefix string) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.ServerPort == 0 {
		return nil, fmt.Errorf("set %s_SERVER_PORT to a non-zero port", prefix)
	}

	if c.GenesisHeight > maxGenesisHeight {
		return nil, fmt.Errorf("%s_GENESIS_HEIGHT %d is above the maximum %d", prefix, c.GenesisHeight, uint64(maxGenesisHeight))
	}

	if c.PrincipalHeader == "" {
		return nil, fmt.Errorf("set %s_PRINCIPAL_HEADER", prefix)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	if c.SeedNeeds < 0 || c.SeedResources < 0 {
		return nil, fmt.Errorf("seed counts must not be negative")
	}

	return c, nil
}

func newLogger(c *types.Config) *logrus.Logger {
	logger := logrus.New()
	if c.IsDevelopment() {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Level was validated by loadConfig.
	level, _ := logrus.ParseLevel(c.LogLevel)
	logger.SetLevel(level)

	return logger
}
