package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/filterable-dev/filterable/internal/envconf"
	"github.com/filterable-dev/filterable/internal/logger"
	"github.com/filterable-dev/filterable/internal/repository"
)

// FilterConf carries the request-translation defaults shared by every
// list endpoint. It is loaded from an optional filterable.yaml so
// operators can change paging and ordering without a rebuild.
type FilterConf struct {
	PageSize        int    `mapstructure:"page_size"`
	DefaultSortBy   string `mapstructure:"default_sort_by"`
	DefaultSortDesc bool   `mapstructure:"default_sort_desc"`
	SortByParam     string `mapstructure:"sort_by_param"`
	SortDescParam   string `mapstructure:"sort_desc_param"`
}

type Config struct {
	// Logger for logging
	Logger *logger.Logger

	Repository *repository.Repository

	FilterConf FilterConf
}

// LoadFilterConf reads the filter configuration file, falling back to
// defaults when none exists.
func LoadFilterConf(path string) (FilterConf, error) {
	v := viper.New()

	v.SetDefault("page_size", 50)
	v.SetDefault("default_sort_by", "updated_at")
	v.SetDefault("default_sort_desc", true)
	v.SetDefault("sort_by_param", "sort_by")
	v.SetDefault("sort_desc_param", "sort_desc")

	v.SetEnvPrefix("FILTERABLE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("filterable")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/filterable/")
	}

	var conf FilterConf

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return conf, fmt.Errorf("could not read filter conf: %w", err)
		}
	}

	if err := v.Unmarshal(&conf); err != nil {
		return conf, fmt.Errorf("could not decode filter conf: %w", err)
	}

	return conf, nil
}

func GetConfig(envConf *envconf.EnvDecoderConf, repo *repository.Repository) (*Config, error) {
	filterConf, err := LoadFilterConf(envConf.FilterConfPath)

	if err != nil {
		return nil, err
	}

	return &Config{
		Logger:     logger.New(envConf.Debug, os.Stdout),
		Repository: repo,
		FilterConf: filterConf,
	}, nil
}
