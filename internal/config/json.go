package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		TokenDuration          Duration `json:"token_duration"`
		ArgonTime              uint32   `json:"argon_time"`
		ArgonMemory            uint32   `json:"argon_memory"`
		ArgonThreads           uint8    `json:"argon_threads"`
		LoginAttemptsPerMinute int      `json:"login_attempts_per_minute"`
		Version                string   `json:"version"`
		LogLevel               string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Cache struct {
			RedisURL string `json:"redis_url"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Assets struct {
		Provider  string `json:"provider"`
		Endpoint  string `json:"endpoint"`
		CloudName string `json:"cloud_name"`
		APIKey    string `json:"api_key"`
		APISecret string `json:"api_secret"`
		Bucket    string `json:"bucket"`
		Region    string `json:"region"`
	} `json:"assets,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:           jsonCfg.App.TokenSignKey,
			TokenIssuer:            jsonCfg.App.TokenIssuer,
			TokenDuration:          time.Duration(jsonCfg.App.TokenDuration),
			ArgonTime:              jsonCfg.App.ArgonTime,
			ArgonMemory:            jsonCfg.App.ArgonMemory,
			ArgonThreads:           jsonCfg.App.ArgonThreads,
			LoginAttemptsPerMinute: jsonCfg.App.LoginAttemptsPerMinute,
			Version:                jsonCfg.App.Version,
			LogLevel:               jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Cache: Cache{
				RedisURL: jsonCfg.Storage.Cache.RedisURL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Assets: Assets{
			Provider:  jsonCfg.Assets.Provider,
			Endpoint:  jsonCfg.Assets.Endpoint,
			CloudName: jsonCfg.Assets.CloudName,
			APIKey:    jsonCfg.Assets.APIKey,
			APISecret: jsonCfg.Assets.APISecret,
			Bucket:    jsonCfg.Assets.Bucket,
			Region:    jsonCfg.Assets.Region,
		},
	}

	return cfg, nil
}

// Duration is a [time.Duration] that unmarshals from either a Go duration
// string ("15m") or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
