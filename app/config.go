package app

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/zkmint-labs/minting-backend/models"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readSecretsFromGSM()
	applyDefaults()
	validateConfig()
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file: ", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s", configFile, err.Error())
	}
	return true
}

func applyDefaults() {
	if Config.MintSubmitter.BatchSize == 0 {
		Config.MintSubmitter.BatchSize = 50
	}
	if Config.MintSubmitter.MaxTries == 0 {
		Config.MintSubmitter.MaxTries = 3
	}
	if Config.MintAPI.MaxBatchSize == 0 {
		// documented upstream ceiling, owned by the external service
		Config.MintAPI.MaxBatchSize = 100
	}
	if Config.MintAPI.TimeoutMillis == 0 {
		Config.MintAPI.TimeoutMillis = 10000
	}
	if Config.MintSweeper.StaleAfterMillis == 0 {
		Config.MintSweeper.StaleAfterMillis = 300000
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}
	if Config.MintAPI.Environment != models.EnvironmentSandbox &&
		Config.MintAPI.Environment != models.EnvironmentProduction {
		log.Fatal("[CONFIG] MintAPI.Environment must be sandbox or production")
	}
	if Config.MintAPI.ChainName == "" {
		log.Fatal("[CONFIG] MintAPI.ChainName is required")
	}
	if Config.MintAPI.APIKey == "" {
		log.Fatal("[CONFIG] MintAPI.APIKey is required")
	}
	if Config.MintSubmitter.Enabled && Config.MintSubmitter.IntervalMillis == 0 {
		log.Fatal("[CONFIG] MintSubmitter.IntervalMillis is required")
	}
	if Config.MintSweeper.Enabled && Config.MintSweeper.IntervalMillis == 0 {
		log.Fatal("[CONFIG] MintSweeper.IntervalMillis is required")
	}
	if Config.Webhook.Enabled && Config.Webhook.Port == 0 {
		log.Fatal("[CONFIG] Webhook.Port is required")
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis is required")
	}
	log.Debug("[CONFIG] Config validated")
}
