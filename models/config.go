package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	MintAPI             MintAPIConfig             `yaml:"mint_api" json:"mint_api"`
	MintSubmitter       MintSubmitterConfig       `yaml:"mint_submitter" json:"mint_submitter"`
	MintSweeper         MintSweeperConfig         `yaml:"mint_sweeper" json:"mint_sweeper"`
	Webhook             WebhookConfig             `yaml:"webhook" json:"webhook"`
}

type GoogleSecretManagerConfig struct {
	Enabled          bool   `yaml:"enabled" json:"enabled"`
	ProjectId        string `yaml:"project_id" json:"project_id"`
	MongoSecretName  string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	APIKeySecretName string `yaml:"api_key_secret_name" json:"api_key_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	ReadLastHealth bool  `yaml:"read_last_health" json:"read_last_health"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

// environments for the minting API and webhook topics
const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

type MintAPIConfig struct {
	Environment   string `yaml:"environment" json:"environment"`
	BaseURL       string `yaml:"base_url" json:"base_url"`
	ChainName     string `yaml:"chain_name" json:"chain_name"`
	APIKey        string `yaml:"api_key" json:"api_key"`
	MaxBatchSize  int64  `yaml:"max_batch_size" json:"max_batch_size"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type MintSubmitterConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	BatchSize      int64 `yaml:"batch_size" json:"batch_size"`
	MaxTries       int64 `yaml:"max_tries" json:"max_tries"`
}

type MintSweeperConfig struct {
	Enabled          bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis   int64 `yaml:"interval_ms" json:"interval_ms"`
	StaleAfterMillis int64 `yaml:"stale_after_ms" json:"stale_after_ms"`
}

type WebhookConfig struct {
	Enabled bool  `yaml:"enabled" json:"enabled"`
	Port    int64 `yaml:"port" json:"port"`
	// overrides the allow-list prefix derived from MintAPI.Environment
	TopicArnPrefix string `yaml:"topic_arn_prefix" json:"topic_arn_prefix"`
}
