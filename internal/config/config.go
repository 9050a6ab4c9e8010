// Package config loads server configuration from TOML files.
//
// The server reads one optional file (default ~/.config/warevis/server.toml)
// selecting the listen address and the storage backend. Every field has a
// working default so a missing file yields a usable development server.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default server settings.
const (
	DefaultAddr    = ":8080"
	DefaultBackend = "memory"
)

// Server is the top-level server configuration.
type Server struct {
	// Addr is the listen address, e.g. ":8080" or "127.0.0.1:9000".
	Addr string `toml:"addr"`

	// Backend selects the storage backend: memory, file, redis, or mongo.
	Backend string `toml:"backend"`

	File  FileBackend  `toml:"file"`
	Redis RedisBackend `toml:"redis"`
	Mongo MongoBackend `toml:"mongo"`
}

// FileBackend configures the file storage backend.
type FileBackend struct {
	// Dir is the record directory. Empty uses ~/.config/warevis/warehouses/.
	Dir string `toml:"dir"`
}

// RedisBackend configures the Redis storage backend.
type RedisBackend struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoBackend configures the MongoDB storage backend.
type MongoBackend struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// validBackends is the set of recognized backend names.
var validBackends = map[string]bool{
	"memory": true,
	"file":   true,
	"redis":  true,
	"mongo":  true,
}

// Default returns the configuration used when no file is present.
func Default() Server {
	return Server{
		Addr:    DefaultAddr,
		Backend: DefaultBackend,
		Redis:   RedisBackend{Addr: "localhost:6379"},
		Mongo:   MongoBackend{URI: "mongodb://localhost:27017"},
	}
}

// DefaultPath returns the standard location of the server config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "warevis", "server.toml"), nil
}

// Load reads a server configuration from path. A missing file is not an
// error: defaults are returned. A present but unparsable file is.
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Server{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Server{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (s Server) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if !validBackends[s.Backend] {
		return fmt.Errorf("unknown backend %q (must be one of: memory, file, redis, mongo)", s.Backend)
	}
	if s.Backend == "redis" && s.Redis.Addr == "" {
		return fmt.Errorf("redis backend requires redis.addr")
	}
	if s.Backend == "mongo" && s.Mongo.URI == "" {
		return fmt.Errorf("mongo backend requires mongo.uri")
	}
	return nil
}
