package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blogauth/internal/flagx"
	"github.com/dmitrijs2005/blogauth/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "5s" strings and integer nanoseconds. Only keys present in the file
// override the current values.
type JsonConfig struct {
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	BcryptCost            *int            `json:"bcrypt_cost"`
	HashWorkers           *int            `json:"hash_workers"`
	HashTimeout           *timex.Duration `json:"hash_timeout"`
	StoreTimeout          *timex.Duration `json:"store_timeout"`
	DefaultProfileImage   *string         `json:"default_profile_image"`
	ConnectAttempts       *uint64         `json:"db_connect_attempts"`
}

// parseJson loads the file named by -c/-config, if any, into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.HashWorkers, c.HashWorkers)
	setIf(&config.DefaultProfileImage, c.DefaultProfileImage)
	setIf(&config.ConnectAttempts, c.ConnectAttempts)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.HashTimeout != nil {
		config.HashTimeout = c.HashTimeout.Duration
	}
	if c.StoreTimeout != nil {
		config.StoreTimeout = c.StoreTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
