package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version        string `json:"version"`
		LogLevel       string `json:"log_level"`
		NotFoundPolicy string `json:"not_found_policy"`
		PasswordHasher string `json:"password_hasher"`
		BcryptCost     int    `json:"bcrypt_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver         string `json:"driver"`
			DSN            string `json:"dsn"`
			MaxOpenConns   int    `json:"max_open_conns"`
			SkipMigrations bool   `json:"skip_migrations"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		RateLimit       float64  `json:"rate_limit"`
		RateBurst       int      `json:"rate_burst"`
		MetricsPath     string   `json:"metrics_path"`
		MetricsDisabled bool     `json:"metrics_disabled"`
	} `json:"server,omitempty"`
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
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
			NotFoundPolicy: jsonCfg.App.NotFoundPolicy,
			PasswordHasher: jsonCfg.App.PasswordHasher,
			BcryptCost:     jsonCfg.App.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Driver:         jsonCfg.Storage.DB.Driver,
				DSN:            jsonCfg.Storage.DB.DSN,
				MaxOpenConns:   jsonCfg.Storage.DB.MaxOpenConns,
				SkipMigrations: jsonCfg.Storage.DB.SkipMigrations,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			RateLimit:       jsonCfg.Server.RateLimit,
			RateBurst:       jsonCfg.Server.RateBurst,
			MetricsPath:     jsonCfg.Server.MetricsPath,
			MetricsDisabled: jsonCfg.Server.MetricsDisabled,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
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
