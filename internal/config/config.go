package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// MinPort is the minimum valid port number
	MinPort = 1
	// MaxPort is the maximum valid port number
	MaxPort = 65535
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Logging  LoggingConfig  `yaml:"logging"`
	App      AppConfig      `yaml:"app"`
	Careers  CareersConfig  `yaml:"careers"`
	Contact  ContactConfig  `yaml:"contact"`
	Admin    AdminConfig    `yaml:"admin"`
	Storage  StorageConfig  `yaml:"storage"`
	Worker   WorkerConfig   `yaml:"worker"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Database        string        `yaml:"database"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// RabbitMQConfig holds RabbitMQ connection and exchange/queue configuration
type RabbitMQConfig struct {
	Host       string           `yaml:"host"`
	Port       int              `yaml:"port"`
	User       string           `yaml:"user"`
	Password   string           `yaml:"password"`
	VHost      string           `yaml:"vhost"`
	Exchange   ExchangeConfig   `yaml:"exchange"`
	Queue      QueueConfig      `yaml:"queue"`
	RoutingKey string           `yaml:"routing_key"`
	Connection ConnectionConfig `yaml:"connection"`
	Publish    PublishConfig    `yaml:"publish"`
	Consumer   ConsumerConfig   `yaml:"consumer"`
}

// ExchangeConfig holds RabbitMQ exchange configuration
type ExchangeConfig struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Durable    bool   `yaml:"durable"`
	AutoDelete bool   `yaml:"auto_delete"`
}

// QueueConfig holds RabbitMQ queue configuration
type QueueConfig struct {
	Name       string `yaml:"name"`
	Durable    bool   `yaml:"durable"`
	AutoDelete bool   `yaml:"auto_delete"`
	Exclusive  bool   `yaml:"exclusive"`
}

// ConnectionConfig holds RabbitMQ connection settings
type ConnectionConfig struct {
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryInterval     time.Duration `yaml:"retry_interval"`
	Heartbeat         time.Duration `yaml:"heartbeat"`
	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
}

// PublishConfig holds RabbitMQ publish retry settings
type PublishConfig struct {
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryInterval     time.Duration `yaml:"retry_interval"`
	BackoffMultiplier float64       `yaml:"backoff_multiplier"`
}

// ConsumerConfig holds RabbitMQ consumer settings
type ConsumerConfig struct {
	PrefetchCount int  `yaml:"prefetch_count"`
	AutoAck       bool `yaml:"auto_ack"`
	Exclusive     bool `yaml:"exclusive"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"`
	Output           string `yaml:"output"`
	EnableCaller     bool   `yaml:"enable_caller"`
	EnableStackTrace bool   `yaml:"enable_stack_trace"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// CareersConfig holds the job-application submission pipeline configuration:
// the resume acceptance policy, the ordered upload provider chain, and the
// notification relay destinations.
type CareersConfig struct {
	MaxResumeBytes   int64            `yaml:"max_resume_bytes"`
	AllowedMimeTypes []string         `yaml:"allowed_mime_types"`
	UploadProviders  []ProviderConfig `yaml:"upload_providers"`
	Relays           []RelayConfig    `yaml:"relays"`
}

// ProviderConfig describes a single anonymous file-hosting endpoint.
// Response is "json" ({success, link}) or "text" (body is the link).
// A provider named "inline" needs no URL; it encodes the file in place.
type ProviderConfig struct {
	Name     string        `yaml:"name"`
	URL      string        `yaml:"url"`
	Response string        `yaml:"response"`
	Timeout  time.Duration `yaml:"timeout"`
}

// RelayConfig describes a mail-relay destination. Format is "multipart"
// (browser-style form fields) or "json" (ajax body with a success field).
type RelayConfig struct {
	Name    string        `yaml:"name"`
	URL     string        `yaml:"url"`
	Format  string        `yaml:"format"`
	Timeout time.Duration `yaml:"timeout"`
}

// ContactConfig holds the contact-form relay configuration
type ContactConfig struct {
	Relays []RelayConfig `yaml:"relays"`
	CC     string        `yaml:"cc"`
}

// AdminConfig holds the administrator gate configuration. AuthURL points at
// the hosted auth provider's user endpoint; Email is the only address
// allowed through the admin routes.
type AdminConfig struct {
	Email    string        `yaml:"email"`
	AuthURL  string        `yaml:"auth_url"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
	LoginURL string        `yaml:"login_url"`
}

// StorageConfig holds object-storage settings for article images
type StorageConfig struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// WorkerConfig holds audit worker service configuration
type WorkerConfig struct {
	Concurrency     int           `yaml:"concurrency"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Load reads and parses the configuration file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// ValidateAPIConfig checks the fields the api-service depends on
func (c *Config) ValidateAPIConfig() error {
	if c.Server.Port < MinPort || c.Server.Port > MaxPort {
		return fmt.Errorf("invalid server port: %d (must be between %d and %d)", c.Server.Port, MinPort, MaxPort)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < MinPort || c.Database.Port > MaxPort {
		return fmt.Errorf("invalid database port: %d (must be between %d and %d)", c.Database.Port, MinPort, MaxPort)
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.RabbitMQ.Host == "" {
		return fmt.Errorf("rabbitmq host is required")
	}

	if c.RabbitMQ.Port < MinPort || c.RabbitMQ.Port > MaxPort {
		return fmt.Errorf("invalid rabbitmq port: %d (must be between %d and %d)", c.RabbitMQ.Port, MinPort, MaxPort)
	}

	if c.RabbitMQ.Exchange.Name == "" {
		return fmt.Errorf("rabbitmq exchange name is required")
	}

	if c.Careers.MaxResumeBytes <= 0 {
		return fmt.Errorf("careers max_resume_bytes must be greater than 0")
	}

	if len(c.Careers.AllowedMimeTypes) == 0 {
		return fmt.Errorf("careers allowed_mime_types is required")
	}

	if len(c.Careers.UploadProviders) == 0 {
		return fmt.Errorf("at least one careers upload provider is required")
	}

	for _, p := range c.Careers.UploadProviders {
		if p.Name == "" {
			return fmt.Errorf("careers upload provider name is required")
		}
		if p.Name != "inline" && p.URL == "" {
			return fmt.Errorf("careers upload provider %q requires a url", p.Name)
		}
	}

	if len(c.Careers.Relays) == 0 {
		return fmt.Errorf("at least one careers relay is required")
	}

	for _, r := range c.Careers.Relays {
		if r.URL == "" {
			return fmt.Errorf("careers relay %q requires a url", r.Name)
		}
	}

	if len(c.Contact.Relays) == 0 {
		return fmt.Errorf("at least one contact relay is required")
	}

	if c.Admin.Email == "" {
		return fmt.Errorf("admin email is required")
	}

	if c.Admin.AuthURL == "" {
		return fmt.Errorf("admin auth_url is required")
	}

	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}

	return nil
}

// ValidateWorkerConfig checks the fields the worker-service depends on
func (c *Config) ValidateWorkerConfig() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.RabbitMQ.Host == "" {
		return fmt.Errorf("rabbitmq host is required")
	}

	if c.RabbitMQ.Queue.Name == "" {
		return fmt.Errorf("rabbitmq queue name is required")
	}

	if c.Worker.Concurrency <= 0 {
		return fmt.Errorf("worker concurrency must be greater than 0")
	}

	if c.Worker.ShutdownTimeout <= 0 {
		return fmt.Errorf("worker shutdown_timeout must be greater than 0")
	}

	return nil
}
