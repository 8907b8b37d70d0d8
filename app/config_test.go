package app

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/models"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestReadConfigFromConfigFile(t *testing.T) {
	t.Run("Config File Provided", func(t *testing.T) {
		configFile := "../config.sample.yml"

		read := readConfigFromConfigFile(configFile)

		assert.Equal(t, read, true)
		assert.Equal(t, Config.MongoDB.Database, "minting")
		assert.Equal(t, Config.MongoDB.TimeoutMillis, int64(2000))
		assert.Equal(t, Config.MintAPI.Environment, models.EnvironmentSandbox)
		assert.Equal(t, Config.MintAPI.ChainName, "imtbl-zkevm-testnet")
	})

	t.Run("No Config File Provided", func(t *testing.T) {
		configFile := ""

		read := readConfigFromConfigFile(configFile)
		assert.Equal(t, read, false)
	})

	t.Run("Invalid Config File Path", func(t *testing.T) {
		configFile := "../config.sample.invalid.yml"

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readConfigFromConfigFile(configFile) }, "readConfigFromConfigFile should panic")
	})
}

func TestInitConfig(t *testing.T) {
	t.Run("Config Initialization Success", func(t *testing.T) {
		configFile := "../config.sample.yml"
		envFile := "../sample.env"

		InitConfig(configFile, envFile)

		assert.Equal(t, Config.MintSubmitter.BatchSize, int64(50))
		assert.Equal(t, Config.MintAPI.MaxBatchSize, int64(100))
	})

	t.Run("Config Initialization No Config File", func(t *testing.T) {
		configFile := ""
		envFile := "../sample.env"

		InitConfig(configFile, envFile)
	})
}

func TestApplyDefaults(t *testing.T) {
	Config = models.Config{}

	applyDefaults()

	assert.Equal(t, Config.MintSubmitter.BatchSize, int64(50))
	assert.Equal(t, Config.MintSubmitter.MaxTries, int64(3))
	assert.Equal(t, Config.MintAPI.MaxBatchSize, int64(100))
	assert.Equal(t, Config.MintAPI.TimeoutMillis, int64(10000))
	assert.Equal(t, Config.MintSweeper.StaleAfterMillis, int64(300000))
}

func TestValidateConfig(t *testing.T) {
	t.Run("Valid Configuration", func(t *testing.T) {
		configFile := "../config.sample.yml"
		envFile := "../sample.env"

		InitConfig(configFile, envFile)

		validateConfig()
	})

	t.Run("Invalid Configuration", func(t *testing.T) {
		invalidConfig := models.Config{}

		Config = invalidConfig

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { validateConfig() }, "validateConfig should panic")
	})
}
