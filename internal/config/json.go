package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Environment   string   `json:"env"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN  string `json:"dsn"`
			Name string `json:"name"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Upload struct {
		Provider   string   `json:"provider"`
		Timeout    Duration `json:"timeout"`
		Cloudinary struct {
			CloudName string `json:"cloud_name"`
			APIKey    string `json:"api_key"`
			APISecret string `json:"api_secret"`
			Folder    string `json:"folder"`
			BaseURL   string `json:"base_url"`
		} `json:"cloudinary,omitempty"`
		S3 struct {
			Bucket        string `json:"bucket"`
			Region        string `json:"region"`
			Endpoint      string `json:"endpoint"`
			AccessKey     string `json:"access_key"`
			SecretKey     string `json:"secret_key"`
			PublicBaseURL string `json:"public_base_url"`
			UsePathStyle  bool   `json:"use_path_style"`
		} `json:"s3,omitempty"`
	} `json:"upload,omitempty"`
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
			Environment:   jsonCfg.App.Environment,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN:  jsonCfg.Storage.DB.DSN,
				Name: jsonCfg.Storage.DB.Name,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		Upload: Upload{
			Provider: jsonCfg.Upload.Provider,
			Timeout:  time.Duration(jsonCfg.Upload.Timeout),
			Cloudinary: Cloudinary{
				CloudName: jsonCfg.Upload.Cloudinary.CloudName,
				APIKey:    jsonCfg.Upload.Cloudinary.APIKey,
				APISecret: jsonCfg.Upload.Cloudinary.APISecret,
				Folder:    jsonCfg.Upload.Cloudinary.Folder,
				BaseURL:   jsonCfg.Upload.Cloudinary.BaseURL,
			},
			S3: S3{
				Bucket:        jsonCfg.Upload.S3.Bucket,
				Region:        jsonCfg.Upload.S3.Region,
				Endpoint:      jsonCfg.Upload.S3.Endpoint,
				AccessKey:     jsonCfg.Upload.S3.AccessKey,
				SecretKey:     jsonCfg.Upload.S3.SecretKey,
				PublicBaseURL: jsonCfg.Upload.S3.PublicBaseURL,
				UsePathStyle:  jsonCfg.Upload.S3.UsePathStyle,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
