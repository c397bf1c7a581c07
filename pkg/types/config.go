package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Ledger
	GenesisHeight uint64 `envconfig:"GENESIS_HEIGHT" default:"100"`

	// Caller identity
	PrincipalHeader string `envconfig:"PRINCIPAL_HEADER" default:"X-Principal"`

	// Fake records created when the server starts
	SeedNeeds     int `envconfig:"SEED_NEEDS" default:"0"`
	SeedResources int `envconfig:"SEED_RESOURCES" default:"0"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
