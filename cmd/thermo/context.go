package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/couchcryptid/thermo-data-service/internal/catalog"
	"github.com/couchcryptid/thermo-data-service/internal/thermo"
	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

// fileConfig is the optional TOML configuration file
// (~/.config/thermo/config.toml or --config):
//
//	database = "/path/to/thermo.inp"
//	temperatures = [200.0, 298.15, 500.0, 1000.0]
type fileConfig struct {
	Database     string    `toml:"database"`
	Temperatures []float64 `toml:"temperatures"`
}

// defaultTemperatures is the sweep used when neither the config file nor
// --temps provides one.
var defaultTemperatures = []float64{200, 298.15, 500, 1000, 2000}

// commandContext lazily resolves configuration and loads the catalog once
// for whichever subcommand runs.
type commandContext struct {
	dbFlag     *string
	configFlag *string

	cfg     *fileConfig
	catalog *catalog.Catalog
}

func newCommandContext(dbFlag, configFlag *string) *commandContext {
	return &commandContext{dbFlag: dbFlag, configFlag: configFlag}
}

// ensureConfig reads the TOML config file if one exists. A missing default
// config file is not an error; a missing --config path is.
func (c *commandContext) ensureConfig() (*fileConfig, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	path := *c.configFlag
	explicit := path != ""
	if !explicit {
		confDir, err := os.UserConfigDir()
		if err != nil {
			c.cfg = &fileConfig{}
			return c.cfg, nil
		}
		path = filepath.Join(confDir, "thermo", "config.toml")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			c.cfg = &fileConfig{}
			return c.cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &fileConfig{}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.cfg = cfg
	return cfg, nil
}

// databasePath resolves the source file path: --db flag, then config file,
// then the THERMO_DB_PATH environment variable.
func (c *commandContext) databasePath() (string, error) {
	if *c.dbFlag != "" {
		return *c.dbFlag, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Database != "" {
		return cfg.Database, nil
	}
	if path := os.Getenv("THERMO_DB_PATH"); path != "" {
		return path, nil
	}
	return "", errors.New("no database configured: pass --db, set database in the config file, or set THERMO_DB_PATH")
}

// temperatures resolves the default sweep for table commands.
func (c *commandContext) temperatures() []float64 {
	if cfg, err := c.ensureConfig(); err == nil && len(cfg.Temperatures) > 0 {
		return cfg.Temperatures
	}
	return defaultTemperatures
}

// ensureCatalog loads and decodes the database on first use.
func (c *commandContext) ensureCatalog() (*catalog.Catalog, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}
	path, err := c.databasePath()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read database %s: %w", path, err)
	}
	db, err := thermoinp.Decode(string(raw))
	if err != nil {
		return nil, fmt.Errorf("decode database %s: %w", path, err)
	}
	c.catalog = catalog.New(db, thermo.CEA())
	return c.catalog, nil
}
