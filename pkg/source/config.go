package source

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the tunables for loading and presenting the roster.
type Config struct {
	DataURL    string
	RosterSize int
	PageSize   int
	CachePath  string
}

const (
	defaultDataURL    = "https://jsonplaceholder.typicode.com/users"
	defaultRosterSize = 100
	defaultPageSize   = 10
	defaultCachePath  = "~/.roster.db"
)

// LoadConfig reads settings from an optional .roster config file and the
// ROSTER_* environment, falling back to defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("dataurl", defaultDataURL)
	v.SetDefault("rostersize", defaultRosterSize)
	v.SetDefault("pagesize", defaultPageSize)
	v.SetDefault("cachepath", defaultCachePath)
	v.SetConfigName(".roster") // .yaml is implicit
	v.SetEnvPrefix("ROSTER")
	v.AutomaticEnv()

	if override := os.Getenv("ROSTER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	cfg := Config{
		DataURL:    v.GetString("dataurl"),
		RosterSize: v.GetInt("rostersize"),
		PageSize:   v.GetInt("pagesize"),
		CachePath:  v.GetString("cachepath"),
	}
	if cfg.RosterSize <= 0 {
		cfg.RosterSize = defaultRosterSize
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if expanded, err := homedir.Expand(cfg.CachePath); err == nil {
		cfg.CachePath = expanded
	}
	return cfg, nil
}
