package config

import (
	"bytes"
	"embed"
	"strconv"

	"github.com/pkg/errors"
	"github.com/smartconseil/sc_contact/environment"

	"go.uber.org/config"
)

//go:embed *.yaml
var configFiles embed.FS

// DatabaseConfig stores the settings of the document store connection
type DatabaseConfig struct {
	Name                  string `yaml:"name"`
	Collection            string `yaml:"collection"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`
	AwaitConnection       bool   `yaml:"await_connection"`
}

// MetricsConfig stores the settings of the Prometheus exposition
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name      string         `yaml:"name"`
	Port      int            `yaml:"port"`
	StaticDir string         `yaml:"static_dir"`
	Database  DatabaseConfig `yaml:"database"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	fileNames := []string{"base.yaml"}
	if env.Get(environment.Environment) == "prod" {
		fileNames = append(fileNames, "production.yaml")
	} else if env.Get(environment.Environment) == "dev" {
		fileNames = append(fileNames, "development.yaml")
	}

	var sources []config.YAMLOption
	for _, fileName := range fileNames {
		content, err := configFiles.ReadFile(fileName)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", fileName)
		}
		sources = append(sources, config.Source(bytes.NewReader(content)))
	}

	configProvider, err := config.NewYAML(sources...)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	if port := env.Get(environment.Port); len(port) > 0 {
		cfg.Port, err = strconv.Atoi(port)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s value %s", environment.Port, port)
		}
	}

	return &cfg, nil
}
