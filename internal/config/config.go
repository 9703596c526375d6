package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v2"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Listing  ListingConfig  `yaml:"listing"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" validate:"required"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver         string        `yaml:"driver" validate:"oneof=mongo memory"`
	URI            string        `yaml:"uri"`
	Scheme         string        `yaml:"scheme"`
	Host           string        `yaml:"host"`
	User           string        `yaml:"user"`
	Password       string        `yaml:"password"`
	Name           string        `yaml:"name" validate:"required"`
	Options        string        `yaml:"options"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

type AuthConfig struct {
	SecretKey string `yaml:"secret_key" validate:"required"`
	Header    string `yaml:"header" validate:"required"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// ListingConfig bounds the limit accepted by GET /services.
type ListingConfig struct {
	DefaultLimit int `yaml:"default_limit" validate:"gte=1"`
	MaxLimit     int `yaml:"max_limit" validate:"gtefield=DefaultLimit"`
}

// envKeys maps the environment variables the server reads to config paths.
var envKeys = map[string]string{
	"PORT":                 "server.port",
	"CORS_ALLOWED_ORIGINS": "server.allowed_origins",
	"MONGODB_DRIVER":       "database.driver",
	"MONGODB_URI":          "database.uri",
	"MONGODB_HOST":         "database.host",
	"MONGODB_USER_NAME":    "database.user",
	"MONGODB_PASSWORD":     "database.password",
	"MONGODB_DATABASE":     "database.name",
	"JWT_SECRET_KEY":       "auth.secret_key",
	"JWT_HEADER":           "auth.header",
	"LOG_LEVEL":            "log.level",
	"LOG_PRETTY":           "log.pretty",
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "5000",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:         DriverMongo,
			Scheme:         "mongodb+srv",
			Host:           "cluster0.cjfgfqu.mongodb.net",
			Name:           "lawMan",
			Options:        "retryWrites=true&w=majority",
			ConnectTimeout: 10 * time.Second,
		},
		Auth: AuthConfig{
			Header: "lawman-jwt",
		},
		Log: LogConfig{
			Level: "info",
		},
		Listing: ListingConfig{
			DefaultLimit: 20,
			MaxLimit:     100,
		},
	}
}

// LoadConfig starts from the defaults, applies the YAML file at path when
// one is given, then the environment on top.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config file: %w", err)
		}
	}

	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		target, ok := envKeys[key]
		if !ok || value == "" {
			return "", nil
		}
		if key == "CORS_ALLOWED_ORIGINS" {
			return target, splitList(value)
		}
		return target, value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	db := c.Database
	if db.Driver == DriverMongo && db.URI == "" && (db.Host == "" || db.User == "" || db.Password == "") {
		return errors.New("invalid config: database needs a uri or host, user and password")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Server.Port, ":") {
		return c.Server.Port
	}
	return ":" + c.Server.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
