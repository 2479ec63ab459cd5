package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	// Dataset generation
	DatasetSize int
	DatasetSeed int64

	// Simulated processing cost on the query endpoint, in milliseconds.
	DelayMinMS int
	DelayMaxMS int
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	env := Env{
		AppAddr:     appAddr,
		GinMode:     ginMode,
		DatasetSize: envInt("DATASET_SIZE", 10000),
		DatasetSeed: int64(envInt("DATASET_SEED", 0)),
		DelayMinMS:  envInt("API_DELAY_MIN_MS", 50),
		DelayMaxMS:  envInt("API_DELAY_MAX_MS", 150),
	}

	if env.DatasetSize < 1 {
		env.DatasetSize = 10000
	}
	if env.DelayMinMS < 0 {
		env.DelayMinMS = 0
	}
	if env.DelayMaxMS < env.DelayMinMS {
		env.DelayMaxMS = env.DelayMinMS
	}
	return env
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
