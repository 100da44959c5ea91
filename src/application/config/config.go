package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"sam-audio-server/src/lib/cerr"
	"sam-audio-server/src/lib/env"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultModelID         = "facebook/sam-audio-large"
	DefaultPort            = 5001
	DefaultHost            = "localhost"
	DefaultMaxRequestBytes = 200 * 1024 * 1024
)

type Config struct {
	Environment string  `toml:"environment"`
	LogLevel    string  `toml:"log_level"`
	Server      Server  `toml:"server"`
	Model       Model   `toml:"model"`
	Queue       Queue   `toml:"queue"`
	Storage     Storage `toml:"storage"`
}

type Server struct {
	Host               string   `toml:"host"`
	Port               int      `toml:"port"`
	MaxRequestBytes    int64    `toml:"max_request_bytes"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
}

type Model struct {
	ID           string `toml:"id"`
	SeparatorBin string `toml:"separator_bin"`
	Device       string `toml:"device"`
	WorkingDir   string `toml:"working_dir"`
	// InferenceTimeout is a Go duration string; empty or "0" disables it.
	InferenceTimeout string `toml:"inference_timeout"`
}

type Queue struct {
	URL             string `toml:"url"`
	Name            string `toml:"name"`
	ResultQueueName string `toml:"result_queue_name"`
	NumWorkers      int    `toml:"num_workers"`
}

type Storage struct {
	GoogleCloudKey string `toml:"google_cloud_key"`
	AWSRegion      string `toml:"aws_region"`
	S3Endpoint     string `toml:"s3_endpoint"`
	// JobsTable names the DynamoDB table for job status records; empty disables them.
	JobsTable        string `toml:"jobs_table"`
	DynamoDBEndpoint string `toml:"dynamodb_endpoint"`
}

func Default() Config {
	return Config{
		Environment: string(env.Development),
		LogLevel:    "info",
		Server: Server{
			Host:            DefaultHost,
			Port:            DefaultPort,
			MaxRequestBytes: DefaultMaxRequestBytes,
		},
		Model: Model{
			ID:           DefaultModelID,
			SeparatorBin: "sam-audio",
			Device:       "auto",
			WorkingDir:   "./sam_audio_wd",
		},
		Queue: Queue{
			Name:            "separation_jobs",
			ResultQueueName: "separation_results",
			NumWorkers:      1,
		},
	}
}

// Load layers the optional TOML file at path and then the environment on top
// of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return Config{}, cerr.Field("path", path).Wrap(err).Error("Failed to read config file")
		}

		if err := toml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, cerr.Field("path", path).Wrap(err).Error("Failed to parse config file")
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrideString(&c.Environment, "ENVIRONMENT")
	overrideString(&c.LogLevel, "LOG_LEVEL")

	overrideString(&c.Server.Host, "HOST")
	if err := overrideInt(&c.Server.Port, "PORT"); err != nil {
		return err
	}
	if err := overrideInt64(&c.Server.MaxRequestBytes, "MAX_REQUEST_BYTES"); err != nil {
		return err
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.Server.CORSAllowedOrigins = splitList(origins)
	}

	overrideString(&c.Model.ID, "SAM_MODEL_ID")
	overrideString(&c.Model.SeparatorBin, "SAM_SEPARATOR_BIN")
	overrideString(&c.Model.Device, "SAM_DEVICE")
	overrideString(&c.Model.WorkingDir, "SAM_WORKING_DIR")
	overrideString(&c.Model.InferenceTimeout, "SAM_INFERENCE_TIMEOUT")

	overrideString(&c.Queue.URL, "RABBITMQ_URL")
	overrideString(&c.Queue.Name, "RABBITMQ_QUEUE_NAME")
	overrideString(&c.Queue.ResultQueueName, "RABBITMQ_RESULT_QUEUE_NAME")
	if err := overrideInt(&c.Queue.NumWorkers, "NUM_WORKERS"); err != nil {
		return err
	}

	overrideString(&c.Storage.GoogleCloudKey, "GOOGLE_CLOUD_KEY")
	overrideString(&c.Storage.AWSRegion, "AWS_REGION")
	overrideString(&c.Storage.S3Endpoint, "S3_ENDPOINT")
	overrideString(&c.Storage.JobsTable, "JOBS_TABLE")
	overrideString(&c.Storage.DynamoDBEndpoint, "DYNAMODB_ENDPOINT")

	return nil
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case string(env.Development), string(env.Production):
	default:
		return cerr.Field("environment", c.Environment).Error("Unknown environment")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return cerr.Field("port", c.Server.Port).Error("Port is out of range")
	}

	if c.Server.MaxRequestBytes <= 0 {
		return cerr.Field("max_request_bytes", c.Server.MaxRequestBytes).Error("Request size limit must be positive")
	}

	if strings.TrimSpace(c.Model.ID) == "" {
		return cerr.Error("Model identifier is required")
	}

	if strings.TrimSpace(c.Model.WorkingDir) == "" {
		return cerr.Error("Working directory is required")
	}

	if _, err := c.InferenceTimeout(); err != nil {
		return err
	}

	if c.QueueEnabled() {
		if c.Queue.Name == "" || c.Queue.ResultQueueName == "" {
			return cerr.Error("Queue names are required when a queue URL is set")
		}

		if c.Queue.NumWorkers < 1 {
			return cerr.Field("num_workers", c.Queue.NumWorkers).Error("At least one queue worker is required")
		}
	}

	return nil
}

func (c Config) Env() env.Environment {
	return env.Parse(c.Environment)
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func (c Config) QueueEnabled() bool {
	return c.Queue.URL != ""
}

func (c Config) JobStatusEnabled() bool {
	return c.Storage.JobsTable != ""
}

// InferenceTimeout accepts a Go duration or a bare number of seconds. Zero
// means no timeout.
func (c Config) InferenceTimeout() (time.Duration, error) {
	value := strings.TrimSpace(c.Model.InferenceTimeout)
	if value == "" {
		return 0, nil
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, cerr.Field("inference_timeout", value).Error("Inference timeout cannot be negative")
		}
		return time.Duration(seconds) * time.Second, nil
	}

	timeout, err := time.ParseDuration(value)
	if err != nil {
		return 0, cerr.Field("inference_timeout", value).Wrap(err).Error("Invalid inference timeout")
	}

	if timeout < 0 {
		return 0, cerr.Field("inference_timeout", value).Error("Inference timeout cannot be negative")
	}

	return timeout, nil
}

func overrideString(field *string, key string) {
	if value := os.Getenv(key); value != "" {
		*field = value
	}
}

func overrideInt(field *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return cerr.Field("key", key).Wrap(err).Error("Environment variable is not an integer")
	}

	*field = parsed
	return nil
}

func overrideInt64(field *int64, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return cerr.Field("key", key).Wrap(err).Error("Environment variable is not an integer")
	}

	*field = parsed
	return nil
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}
