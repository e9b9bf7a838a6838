// Package config loads the archplane configuration file.
//
// Configuration lives in a TOML file, by default at
// $XDG_CONFIG_HOME/archplane/config.toml. Every key is optional; missing
// keys keep their defaults, and a missing file is not an error. Flags and
// environment always take precedence over the file, which is why Load
// never reads the environment itself.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/archplane/archplane/pkg/layout"
)

const appName = "archplane"

// Config is the top-level configuration document.
type Config struct {
	Server Server `toml:"server"`
	Cache  Cache  `toml:"cache"`
	Store  Store  `toml:"store"`
	Layout Layout `toml:"layout"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Cache configures layout result caching. When RedisAddr is set the Redis
// backend is used; otherwise entries go to Dir on the local filesystem.
type Cache struct {
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       duration `toml:"ttl"`
}

// Store configures diagram persistence. An empty MongoURI selects the
// in-memory store.
type Store struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// Layout overrides the engine's spacing and refinement parameters.
type Layout struct {
	NodeWidth  float64 `toml:"node_width"`
	NodeHeight float64 `toml:"node_height"`
	PaddingX   float64 `toml:"padding_x"`
	PaddingY   float64 `toml:"padding_y"`
	ColumnGap  float64 `toml:"column_gap"`
	RowGap     float64 `toml:"row_gap"`

	CollisionMargin   float64 `toml:"collision_margin"`
	Passes            int     `toml:"passes"`
	LaneBias          float64 `toml:"lane_bias"`
	CompactDepthBelow int     `toml:"compact_depth_below"`
	CompactNodesAbove int     `toml:"compact_nodes_above"`
	CompactFactor     float64 `toml:"compact_factor"`

	SolverTimeout duration `toml:"solver_timeout"`
}

// duration wraps time.Duration so TOML values can be written as "5s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the configuration used when no file is present.
func Default() Config {
	lc := layout.DefaultConfig()
	return Config{
		Server: Server{Addr: ":8080"},
		Cache:  Cache{TTL: duration{24 * time.Hour}},
		Store:  Store{Database: appName},
		Layout: Layout{
			NodeWidth:         lc.NodeWidth,
			NodeHeight:        lc.NodeHeight,
			PaddingX:          lc.PaddingX,
			PaddingY:          lc.PaddingY,
			ColumnGap:         lc.ColumnGap,
			RowGap:            lc.RowGap,
			CollisionMargin:   lc.CollisionMargin,
			Passes:            lc.Passes,
			LaneBias:          lc.LaneBias,
			CompactDepthBelow: lc.CompactDepthBelow,
			CompactNodesAbove: lc.CompactNodesAbove,
			CompactFactor:     lc.CompactFactor,
			SolverTimeout:     duration{lc.SolverTimeout},
		},
	}
}

// Load reads the configuration at path, applying the file's keys on top of
// the defaults. An empty path means the default location; a file that does
// not exist yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		if path, err = defaultPath(); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// defaultPath returns the XDG location of the config file.
func defaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LayoutConfig converts the layout section into engine parameters.
func (c Config) LayoutConfig() layout.Config {
	return layout.Config{
		NodeWidth:         c.Layout.NodeWidth,
		NodeHeight:        c.Layout.NodeHeight,
		PaddingX:          c.Layout.PaddingX,
		PaddingY:          c.Layout.PaddingY,
		ColumnGap:         c.Layout.ColumnGap,
		RowGap:            c.Layout.RowGap,
		CollisionMargin:   c.Layout.CollisionMargin,
		Passes:            c.Layout.Passes,
		LaneBias:          c.Layout.LaneBias,
		CompactDepthBelow: c.Layout.CompactDepthBelow,
		CompactNodesAbove: c.Layout.CompactNodesAbove,
		CompactFactor:     c.Layout.CompactFactor,
		SolverTimeout:     c.Layout.SolverTimeout.Duration,
	}
}
