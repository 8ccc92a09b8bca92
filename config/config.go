package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPort       = "5401"
	DefaultStorageKey = "vadi-demo-state-v1"
	DefaultSQLitePath = "vadi.db"
)

// Storage backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

var ConfigStore atomic.Value

type ServerConfig struct {
	Secure    bool   `json:"secure" envconfig:"VADI_SERVER_SECURE"`
	SecretKey string `json:"secret_key" envconfig:"VADI_SERVER_SECRET_KEY"`
	Port      string `json:"port" envconfig:"VADI_SERVER_PORT"`
}

type StorageConfig struct {
	Backend    string `json:"backend" envconfig:"VADI_STORAGE_BACKEND"`
	Key        string `json:"key" envconfig:"VADI_STORAGE_KEY"`
	SQLitePath string `json:"sqlite_path" envconfig:"VADI_STORAGE_SQLITE_PATH"`
	RedisDSN   string `json:"redis_dsn" envconfig:"VADI_STORAGE_REDIS_DSN"`
}

type WebhookConfig struct {
	Url     string            `json:"url" envconfig:"VADI_WEBHOOK_URL"`
	Headers map[string]string `json:"headers"`
}

type Notification struct {
	Webhook WebhookConfig `json:"webhook"`
}

type RateLimitConfig struct {
	RequestsPerSecond  *float64 `json:"requests_per_second" envconfig:"VADI_RATE_LIMIT_RPS"`
	Burst              *int     `json:"burst" envconfig:"VADI_RATE_LIMIT_BURST"`
	CleanupIntervalSec *int     `json:"cleanup_interval_sec" envconfig:"VADI_RATE_LIMIT_CLEANUP_INTERVAL_SEC"`
}

type Configuration struct {
	ProjectName  string          `json:"project_name" envconfig:"VADI_PROJECT_NAME"`
	Server       ServerConfig    `json:"server"`
	Storage      StorageConfig   `json:"storage"`
	Notification Notification    `json:"notification"`
	RateLimit    RateLimitConfig `json:"rate_limit"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				logrus.Error(err)
			}
		}()
		if err := json.NewDecoder(f).Decode(&cnf); err != nil {
			return err
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	if err := envconfig.Process("vadi", &cnf); err != nil {
		return err
	}

	if err := cnf.validateAndAddDefaults(); err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return nil
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called vadi.json with your config")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Vadi Server"
	}

	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	cnf.Storage.Backend = strings.TrimSpace(cnf.Storage.Backend)

	if cnf.Server.Port == "" {
		cnf.Server.Port = DefaultPort
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DefaultPort)
	}

	switch cnf.Storage.Backend {
	case "":
		cnf.Storage.Backend = BackendSQLite
	case BackendMemory, BackendSQLite:
	case BackendRedis:
		if cnf.Storage.RedisDSN == "" {
			log.Println("Error: Redis DSN is empty. It's required for the redis backend.")
			return errors.New("redis DSN is required for the redis storage backend")
		}
	default:
		return errors.New("unknown storage backend: " + cnf.Storage.Backend)
	}

	if cnf.Storage.Key == "" {
		cnf.Storage.Key = DefaultStorageKey
	}
	if cnf.Storage.SQLitePath == "" {
		cnf.Storage.SQLitePath = DefaultSQLitePath
	}

	// Rate limiting is disabled by default (when both RPS and Burst are nil)
	if cnf.RateLimit.RequestsPerSecond != nil && cnf.RateLimit.Burst == nil {
		defaultBurst := 2 * int(*cnf.RateLimit.RequestsPerSecond)
		cnf.RateLimit.Burst = &defaultBurst
		log.Printf("Warning: Rate limit burst not specified. Setting default value: %d", defaultBurst)
	}
	if cnf.RateLimit.RequestsPerSecond == nil && cnf.RateLimit.Burst != nil {
		defaultRPS := float64(*cnf.RateLimit.Burst) / 2
		cnf.RateLimit.RequestsPerSecond = &defaultRPS
		log.Printf("Warning: Rate limit RPS not specified. Setting default value: %.2f", defaultRPS)
	}
	if cnf.RateLimit.CleanupIntervalSec == nil {
		defaultCleanup := 10800 // 3 hours in seconds
		cnf.RateLimit.CleanupIntervalSec = &defaultCleanup
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	cnf := mockConfig
	if cnf == nil {
		cnf = &Configuration{}
	}
	_ = cnf.validateAndAddDefaults()
	ConfigStore.Store(cnf)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
