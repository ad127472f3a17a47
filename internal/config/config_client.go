package config

import (
	"fmt"
	"time"
)

// Default values applied by [GetClientConfig] when a field is left unset by
// every configuration source.
const (
	DefaultFeedGrace       = 5 * time.Second
	DefaultLocationTimeout = 5 * time.Second
	DefaultClientDSN       = "notes.db"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// FeedGrace is the keep-warm grace period of the notes feed cache.
	FeedGrace time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientLocation holds the location provider settings used by the client.
type ClientLocation struct {
	// Endpoint is the coordinate lookup HTTP endpoint; empty disables it.
	Endpoint string
	// RequestTimeout bounds a single coordinate fetch.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains client storage settings.
	Storage ClientStorage
	// Location contains location provider settings.
	Location ClientLocation
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for unset values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			FeedGrace: cfg.App.FeedGrace,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Location: ClientLocation{
			Endpoint:       cfg.Location.Endpoint,
			RequestTimeout: cfg.Location.RequestTimeout,
		},
	}

	if clientCfg.App.FeedGrace == 0 {
		clientCfg.App.FeedGrace = DefaultFeedGrace
	}
	if clientCfg.Location.RequestTimeout == 0 {
		clientCfg.Location.RequestTimeout = DefaultLocationTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultClientDSN
	}

	return clientCfg, clientCfg.validate()
}
