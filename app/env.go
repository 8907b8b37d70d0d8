package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func readConfigFromENV(envFile string) {
	log.Debug("[ENV] Reading config from env")
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// logger
	if os.Getenv("LOGGER_LEVEL") != "" {
		Config.Logger.Level = os.Getenv("LOGGER_LEVEL")
	}

	// mongodb
	if os.Getenv("MONGODB_URI") != "" {
		Config.MongoDB.URI = os.Getenv("MONGODB_URI")
	}
	if os.Getenv("MONGODB_DATABASE") != "" {
		Config.MongoDB.Database = os.Getenv("MONGODB_DATABASE")
	}
	if os.Getenv("MONGODB_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("MONGODB_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MONGODB_TIMEOUT_MS: ", err.Error())
		} else {
			Config.MongoDB.TimeoutMillis = timeoutMillis
		}
	}

	// mint api
	if os.Getenv("MINT_API_ENVIRONMENT") != "" {
		Config.MintAPI.Environment = os.Getenv("MINT_API_ENVIRONMENT")
	}
	if os.Getenv("MINT_API_BASE_URL") != "" {
		Config.MintAPI.BaseURL = os.Getenv("MINT_API_BASE_URL")
	}
	if os.Getenv("MINT_API_CHAIN_NAME") != "" {
		Config.MintAPI.ChainName = os.Getenv("MINT_API_CHAIN_NAME")
	}
	if os.Getenv("MINT_API_KEY") != "" {
		Config.MintAPI.APIKey = os.Getenv("MINT_API_KEY")
	}
	if os.Getenv("MINT_API_MAX_BATCH_SIZE") != "" {
		maxBatchSize, err := strconv.ParseInt(os.Getenv("MINT_API_MAX_BATCH_SIZE"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_API_MAX_BATCH_SIZE: ", err.Error())
		} else {
			Config.MintAPI.MaxBatchSize = maxBatchSize
		}
	}
	if os.Getenv("MINT_API_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("MINT_API_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_API_TIMEOUT_MS: ", err.Error())
		} else {
			Config.MintAPI.TimeoutMillis = timeoutMillis
		}
	}

	// mint submitter
	if os.Getenv("MINT_SUBMITTER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("MINT_SUBMITTER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_SUBMITTER_ENABLED: ", err.Error())
		} else {
			Config.MintSubmitter.Enabled = enabled
		}
	}
	if os.Getenv("MINT_SUBMITTER_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv("MINT_SUBMITTER_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_SUBMITTER_INTERVAL_MS: ", err.Error())
		} else {
			Config.MintSubmitter.IntervalMillis = intervalMillis
		}
	}
	if os.Getenv("MINT_SUBMITTER_BATCH_SIZE") != "" {
		batchSize, err := strconv.ParseInt(os.Getenv("MINT_SUBMITTER_BATCH_SIZE"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_SUBMITTER_BATCH_SIZE: ", err.Error())
		} else {
			Config.MintSubmitter.BatchSize = batchSize
		}
	}
	if os.Getenv("MINT_SUBMITTER_MAX_TRIES") != "" {
		maxTries, err := strconv.ParseInt(os.Getenv("MINT_SUBMITTER_MAX_TRIES"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_SUBMITTER_MAX_TRIES: ", err.Error())
		} else {
			Config.MintSubmitter.MaxTries = maxTries
		}
	}

	// mint sweeper
	if os.Getenv("MINT_SWEEPER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("MINT_SWEEPER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_SWEEPER_ENABLED: ", err.Error())
		} else {
			Config.MintSweeper.Enabled = enabled
		}
	}
	if os.Getenv("MINT_SWEEPER_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv("MINT_SWEEPER_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_SWEEPER_INTERVAL_MS: ", err.Error())
		} else {
			Config.MintSweeper.IntervalMillis = intervalMillis
		}
	}
	if os.Getenv("MINT_SWEEPER_STALE_AFTER_MS") != "" {
		staleAfterMillis, err := strconv.ParseInt(os.Getenv("MINT_SWEEPER_STALE_AFTER_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MINT_SWEEPER_STALE_AFTER_MS: ", err.Error())
		} else {
			Config.MintSweeper.StaleAfterMillis = staleAfterMillis
		}
	}

	// webhook
	if os.Getenv("WEBHOOK_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("WEBHOOK_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing WEBHOOK_ENABLED: ", err.Error())
		} else {
			Config.Webhook.Enabled = enabled
		}
	}
	if os.Getenv("WEBHOOK_PORT") != "" {
		port, err := strconv.ParseInt(os.Getenv("WEBHOOK_PORT"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing WEBHOOK_PORT: ", err.Error())
		} else {
			Config.Webhook.Port = port
		}
	}
	if os.Getenv("WEBHOOK_TOPIC_ARN_PREFIX") != "" {
		Config.Webhook.TopicArnPrefix = os.Getenv("WEBHOOK_TOPIC_ARN_PREFIX")
	}

	// health check
	if os.Getenv("HEALTH_CHECK_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv("HEALTH_CHECK_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing HEALTH_CHECK_INTERVAL_MS: ", err.Error())
		} else {
			Config.HealthCheck.IntervalMillis = intervalMillis
		}
	}
	if os.Getenv("HEALTH_CHECK_READ_LAST_HEALTH") != "" {
		readLastHealth, err := strconv.ParseBool(os.Getenv("HEALTH_CHECK_READ_LAST_HEALTH"))
		if err != nil {
			log.Warn("[ENV] Error parsing HEALTH_CHECK_READ_LAST_HEALTH: ", err.Error())
		} else {
			Config.HealthCheck.ReadLastHealth = readLastHealth
		}
	}

	// google secret manager
	if os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing GOOGLE_SECRET_MANAGER_ENABLED: ", err.Error())
		} else {
			Config.GoogleSecretManager.Enabled = enabled
		}
	}
	if os.Getenv("GOOGLE_PROJECT_ID") != "" {
		Config.GoogleSecretManager.ProjectId = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if os.Getenv("GOOGLE_MONGO_SECRET_NAME") != "" {
		Config.GoogleSecretManager.MongoSecretName = os.Getenv("GOOGLE_MONGO_SECRET_NAME")
	}
	if os.Getenv("GOOGLE_API_KEY_SECRET_NAME") != "" {
		Config.GoogleSecretManager.APIKeySecretName = os.Getenv("GOOGLE_API_KEY_SECRET_NAME")
	}

	log.Debug("[ENV] Config read from env")
}
