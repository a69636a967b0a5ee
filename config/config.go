// Package config loads settings for the server, the reminder job and the
// socialctl client.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Server struct {
	DatabaseURL     string        `env:"DATABASE_URL,required"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	JWTSecret       string        `env:"JWT_SECRET,required"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	NATSURL         string        `env:"NATS_URL"`
	FirebasePath    string        `env:"FIREBASE_CREDENTIALS_PATH"`
	LogDebug        bool          `env:"LOG_DEBUG" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadServer reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadServer(envFiles ...string) (*Server, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var c Server
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

type Client struct {
	ServerURL string `toml:"server_url"`
	Token     string `toml:"token"`
	UserID    string `toml:"user_id"`
	NATSURL   string `toml:"nats_url"`
}

func DefaultClientPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "socialctl", "config.toml")
}

// LoadClient returns defaults when the file does not exist yet.
func LoadClient(path string) (*Client, error) {
	c := &Client{ServerURL: "http://localhost:8080"}
	if _, err := toml.DecodeFile(path, c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, nil
}

func SaveClient(path string, c *Client) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
