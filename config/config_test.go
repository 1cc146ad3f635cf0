package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap"

	"github.com/smartconseil/sc_contact/testutils"

	"github.com/smartconseil/sc_contact/environment"
)

func Test_NewAppConfig__should_return_correct_config_when_ENVIRONMENT_is_prod(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Environment: "prod", environment.Port: ""})
	defer restoreVars()

	env := environment.NewEnv(zap.NewNop())

	config, err := NewAppConfig(env)
	assert.NoError(t, err)

	assert.Equal(t, "SmartConseil", config.Name)
	assert.Equal(t, 30, config.Database.ConnectTimeoutSeconds)
	assert.Equal(t, "smartconseil", config.Database.Name)
}

func Test_NewAppConfig__should_return_correct_config_when_ENVIRONMENT_is_dev(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Environment: "dev", environment.Port: ""})
	defer restoreVars()

	env := environment.NewEnv(zap.NewNop())

	config, err := NewAppConfig(env)
	assert.NoError(t, err)

	assert.Equal(t, "SmartConseil (dev)", config.Name)
	assert.Equal(t, "smartconseil_dev", config.Database.Name)
	assert.Equal(t, 5, config.Database.ConnectTimeoutSeconds)
	assert.Equal(t, "contacts", config.Database.Collection)
}

func Test_NewAppConfig__should_return_base_config_when_ENVIRONMENT_not_set(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Environment: "", environment.Port: ""})
	defer restoreVars()

	env := environment.NewEnv(zap.NewNop())

	config, err := NewAppConfig(env)
	assert.NoError(t, err)

	assert.Equal(t, &AppConfig{
		Name:      "SmartConseil",
		Port:      3000,
		StaticDir: "public",
		Database: DatabaseConfig{
			Name:                  "smartconseil",
			Collection:            "contacts",
			ConnectTimeoutSeconds: 10,
			AwaitConnection:       false,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}, config)
}

func Test_NewAppConfig__should_use_PORT_when_set(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Port: "8080"})
	defer restoreVars()

	env := environment.NewEnv(zap.NewNop())

	config, err := NewAppConfig(env)
	assert.NoError(t, err)

	assert.Equal(t, 8080, config.Port)
}

func Test_NewAppConfig__should_return_err_when_PORT_is_not_a_number(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Port: "port"})
	defer restoreVars()

	env := environment.NewEnv(zap.NewNop())

	_, err := NewAppConfig(env)
	assert.Error(t, err)
}
