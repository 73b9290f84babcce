// Package config carga la configuración desde variables de entorno.
//
// Las variables usan el prefijo WELOVEPETS_ y "__" para anidar:
//
//	WELOVEPETS_SERVER__ADDR=:8080         -> server.addr
//	WELOVEPETS_STORE__DRIVER=sqlite       -> store.driver
//	WELOVEPETS_STORE__DSN=./welovepets.db -> store.dsn
//
// Un archivo .env (si existe) se carga antes sin pisar el entorno real.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "WELOVEPETS_"

type Config struct {
	App    string       `koanf:"app" validate:"required"`
	Server ServerConfig `koanf:"server"`
	Store  StoreConfig  `koanf:"store"`
	Log    LogConfig    `koanf:"log"`
	Render RenderConfig `koanf:"render"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type StoreConfig struct {
	// memory | postgres | sqlite
	Driver string `koanf:"driver" validate:"oneof=memory postgres sqlite"`
	// DSN de Postgres o path del archivo sqlite.
	DSN string `koanf:"dsn" validate:"required_unless=Driver memory"`
	// Fixtures YAML para el driver memory (opcional).
	Fixtures string `koanf:"fixtures"`
	Migrate  bool   `koanf:"migrate"`

	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn warning error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

type RenderConfig struct {
	// Dir lee templates del disco en lugar de los embebidos (dev).
	Dir string `koanf:"dir"`
}

func Default() Config {
	return Config{
		App: "welovepets",
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver:          "memory",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxIdleTime: 5 * time.Minute,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

type LoadOptions struct {
	// EnvFiles a cargar si existen. Default: [".env"].
	EnvFiles []string
}

// Load arma la Config: defaults, luego .env, luego entorno. Falla si no valida.
func Load(opts LoadOptions) (Config, error) {
	files := opts.EnvFiles
	if files == nil {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	applyLegacyEnv(k, &cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyLegacyEnv respeta PORT y DB_DSN si no hay equivalente con prefijo.
func applyLegacyEnv(k *koanf.Koanf, cfg *Config) {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && !k.Exists("server.addr") {
		cfg.Server.Addr = ":" + port
	}
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" && !k.Exists("store.dsn") {
		cfg.Store.DSN = dsn
		if !k.Exists("store.driver") {
			cfg.Store.Driver = "postgres"
		}
	}
}

var validate = validator.New()

func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
