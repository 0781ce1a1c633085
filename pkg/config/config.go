package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete flow service configuration
type Config struct {
	Version    string           `yaml:"version" json:"version"`
	Server     ServerConfig     `yaml:"server" json:"server"`
	Security   SecurityConfig   `yaml:"security" json:"security"`
	GRPC       GRPCConfig       `yaml:"grpc" json:"grpc"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
	Catalog    CatalogConfig    `yaml:"catalog" json:"catalog"`
	Validation ValidationConfig `yaml:"validation" json:"validation"`
	RateLimit  RateLimitConfig  `yaml:"rateLimit" json:"rateLimit"`
}

type ServerConfig struct {
	Address         string        `yaml:"address" json:"address"`
	Port            int           `yaml:"port" json:"port"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" json:"shutdownTimeout"`
	MinTLSVersion   string        `yaml:"minTlsVersion" json:"minTlsVersion"`
}

// SecurityConfig holds all certificates as embedded PEM content. With
// Insecure set the server listens without TLS and every caller is treated
// as an admin; this is meant for local development only.
type SecurityConfig struct {
	ServerCert string `yaml:"serverCert" json:"serverCert"`
	ServerKey  string `yaml:"serverKey" json:"serverKey"`
	CACert     string `yaml:"caCert" json:"caCert"`
	Insecure   bool   `yaml:"insecure" json:"insecure"`
}

type GRPCConfig struct {
	MaxRecvMsgSize        int32         `yaml:"maxRecvMsgSize" json:"maxRecvMsgSize"`
	MaxSendMsgSize        int32         `yaml:"maxSendMsgSize" json:"maxSendMsgSize"`
	MaxHeaderListSize     int32         `yaml:"maxHeaderListSize" json:"maxHeaderListSize"`
	KeepAliveTime         time.Duration `yaml:"keepAliveTime" json:"keepAliveTime"`
	KeepAliveTimeout      time.Duration `yaml:"keepAliveTimeout" json:"keepAliveTimeout"`
	MaxConcurrentStreams  uint32        `yaml:"maxConcurrentStreams" json:"maxConcurrentStreams"`
	ConnectionTimeout     time.Duration `yaml:"connectionTimeout" json:"connectionTimeout"`
	MaxConnectionIdle     time.Duration `yaml:"maxConnectionIdle" json:"maxConnectionIdle"`
	MaxConnectionAge      time.Duration `yaml:"maxConnectionAge" json:"maxConnectionAge"`
	MaxConnectionAgeGrace time.Duration `yaml:"maxConnectionAgeGrace" json:"maxConnectionAgeGrace"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Output string `yaml:"output" json:"output"`
}

// CatalogConfig selects where peers, flows and mirror progress are stored.
// Driver is "memory" or "postgres"; DSN is only read for postgres.
type CatalogConfig struct {
	Driver         string        `yaml:"driver" json:"driver"`
	DSN            string        `yaml:"dsn" json:"dsn"`
	MaxConns       int32         `yaml:"maxConns" json:"maxConns"`
	ConnectTimeout time.Duration `yaml:"connectTimeout" json:"connectTimeout"`
	Migrate        bool          `yaml:"migrate" json:"migrate"`
}

// ValidationConfig controls how peers are checked before they are accepted.
type ValidationConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	Connectivity bool          `yaml:"connectivity" json:"connectivity"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled" json:"enabled"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond" json:"requestsPerSecond"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// ClientConfig represents the client-side configuration with multiple nodes
type ClientConfig struct {
	Version string           `yaml:"version"`
	Nodes   map[string]*Node `yaml:"nodes"`
}

// Node is one flow service endpoint with embedded certificates
type Node struct {
	Address  string `yaml:"address"`
	Cert     string `yaml:"cert"`
	Key      string `yaml:"key"`
	CA       string `yaml:"ca"`
	Insecure bool   `yaml:"insecure"`
}

var DefaultConfig = Config{
	Version: "1.0",
	Server: ServerConfig{
		Address:         "0.0.0.0",
		Port:            8110,
		Timeout:         30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MinTLSVersion:   "1.3",
	},
	GRPC: GRPCConfig{
		MaxRecvMsgSize:        16777216, // 16MB
		MaxSendMsgSize:        16777216,
		MaxHeaderListSize:     1048576,
		KeepAliveTime:         30 * time.Second,
		KeepAliveTimeout:      5 * time.Second,
		MaxConcurrentStreams:  1000,
		ConnectionTimeout:     10 * time.Second,
		MaxConnectionIdle:     300 * time.Second,
		MaxConnectionAge:      1800 * time.Second,
		MaxConnectionAgeGrace: 30 * time.Second,
	},
	Logging: LoggingConfig{
		Level:  "INFO",
		Format: "text",
		Output: "stdout",
	},
	Catalog: CatalogConfig{
		Driver:         "memory",
		MaxConns:       10,
		ConnectTimeout: 10 * time.Second,
		Migrate:        true,
	},
	Validation: ValidationConfig{
		Timeout:      15 * time.Second,
		Connectivity: true,
	},
	RateLimit: RateLimitConfig{
		Enabled:           false,
		RequestsPerSecond: 50,
		Burst:             100,
	},
}

// GetServerAddress returns the listen address in "host:port" form.
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// GetServerTLSConfig builds an mTLS server configuration from the embedded
// PEM material: client certificates are required and verified against the CA.
func (c *Config) GetServerTLSConfig() (*tls.Config, error) {
	if c.Security.ServerCert == "" || c.Security.ServerKey == "" || c.Security.CACert == "" {
		return nil, fmt.Errorf("server certificates are not configured in security section")
	}

	serverCert, err := tls.X509KeyPair([]byte(c.Security.ServerCert), []byte(c.Security.ServerKey))
	if err != nil {
		return nil, fmt.Errorf("failed to load server certificate: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if ok := caCertPool.AppendCertsFromPEM([]byte(c.Security.CACert)); !ok {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}

	minVersion := uint16(tls.VersionTLS13)
	if c.Server.MinTLSVersion == "1.2" {
		minVersion = tls.VersionTLS12
	}

	return &tls.Config{
		Certificates: []tls.Certificate{serverCert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    caCertPool,
		MinVersion:   minVersion,
	}, nil
}

// GetClientTLSConfig builds the client side of the mTLS handshake.
// The server certificate must be issued for "peerflow".
func (n *Node) GetClientTLSConfig() (*tls.Config, error) {
	if n.Cert == "" || n.Key == "" || n.CA == "" {
		return nil, fmt.Errorf("client certificates are not configured for node")
	}

	clientCert, err := tls.X509KeyPair([]byte(n.Cert), []byte(n.Key))
	if err != nil {
		return nil, fmt.Errorf("failed to load client certificate: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if ok := caCertPool.AppendCertsFromPEM([]byte(n.CA)); !ok {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{clientCert},
		RootCAs:      caCertPool,
		MinVersion:   tls.VersionTLS13,
		ServerName:   "peerflow",
	}, nil
}

// LoadConfig loads the server configuration from the first file found in
//  1. PEERFLOW_CONFIG_PATH
//  2. ./config/peerflow-config.yml
//  3. ./peerflow-config.yml
//  4. /etc/peerflow/peerflow-config.yml
//
// then applies PEERFLOW_* environment overrides and validates the result.
// The returned path names the source of the configuration.
func LoadConfig() (*Config, string, error) {
	config := DefaultConfig

	path, err := loadFromFile(&config, os.Getenv("PEERFLOW_CONFIG_PATH"),
		"./config/peerflow-config.yml",
		"./peerflow-config.yml",
		"/etc/peerflow/peerflow-config.yml",
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	if err := applyEnvOverrides(&config); err != nil {
		return nil, "", err
	}

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

// LoadConfigFromPath is LoadConfig for an explicit file, as used by --config.
func LoadConfigFromPath(path string) (*Config, error) {
	config := DefaultConfig

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if _, err := loadFromFile(&config, path); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if err := applyEnvOverrides(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

func applyEnvOverrides(config *Config) error {
	if val := os.Getenv("PEERFLOW_SERVER_ADDRESS"); val != "" {
		config.Server.Address = val
	}
	if val := os.Getenv("PEERFLOW_SERVER_PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid PEERFLOW_SERVER_PORT %q: %w", val, err)
		}
		config.Server.Port = port
	}
	if val := os.Getenv("PEERFLOW_LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := os.Getenv("PEERFLOW_LOG_FORMAT"); val != "" {
		config.Logging.Format = val
	}
	if val := os.Getenv("PEERFLOW_CATALOG_DRIVER"); val != "" {
		config.Catalog.Driver = val
	}
	if val := os.Getenv("PEERFLOW_CATALOG_DSN"); val != "" {
		config.Catalog.DSN = val
	}
	if val := os.Getenv("PEERFLOW_INSECURE"); val != "" {
		insecure, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid PEERFLOW_INSECURE %q: %w", val, err)
		}
		config.Security.Insecure = insecure
	}
	return nil
}

// loadFromFile parses the first existing path into config. Missing files are
// skipped; it returns a description of the defaults when none is found.
func loadFromFile(config *Config, paths ...string) (string, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

// Validate checks ports, catalog driver, limits and logging level.
// Certificates are checked later by GetServerTLSConfig.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Catalog.Driver {
	case "memory":
	case "postgres":
		if c.Catalog.DSN == "" {
			return fmt.Errorf("catalog dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("invalid catalog driver: %s", c.Catalog.Driver)
	}

	if c.Catalog.MaxConns < 0 {
		return fmt.Errorf("invalid catalog max connections: %d", c.Catalog.MaxConns)
	}

	if c.Validation.Timeout < 0 {
		return fmt.Errorf("invalid validation timeout: %s", c.Validation.Timeout)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("invalid rate limit: %v req/s, burst %d", c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}

	switch strings.ToUpper(c.Logging.Level) {
	case "DEBUG", "TRACE", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

// LoadClientConfig loads flowctl configuration. With an empty path it looks in
//  1. FLOWCTL_CONFIG
//  2. ./flowctl-config.yml
//  3. ./config/flowctl-config.yml
//  4. ~/.flowctl/flowctl-config.yml
//  5. /etc/peerflow/flowctl-config.yml
func LoadClientConfig(configPath string) (*ClientConfig, error) {
	if configPath == "" {
		configPath = findClientConfig()
		if configPath == "" {
			return nil, fmt.Errorf("client configuration file not found. Please create flowctl-config.yml or specify path with --config")
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("client configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client config file %s: %w", configPath, err)
	}

	var config ClientConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %w", err)
	}

	if len(config.Nodes) == 0 {
		return nil, fmt.Errorf("no nodes configured in %s", configPath)
	}

	return &config, nil
}

// GetNode returns the named node, "default" when nodeName is empty.
func (c *ClientConfig) GetNode(nodeName string) (*Node, error) {
	if nodeName == "" {
		nodeName = "default"
	}

	node, exists := c.Nodes[nodeName]
	if !exists {
		return nil, fmt.Errorf("node '%s' not found in configuration", nodeName)
	}

	return node, nil
}

func (c *ClientConfig) ListNodes() []string {
	var nodes []string
	for name := range c.Nodes {
		nodes = append(nodes, name)
	}
	return nodes
}

func findClientConfig() string {
	if envPath := os.Getenv("FLOWCTL_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	locations := []string{
		"./flowctl-config.yml",
		"./config/flowctl-config.yml",
		filepath.Join(os.Getenv("HOME"), ".flowctl", "flowctl-config.yml"),
		"/etc/peerflow/flowctl-config.yml",
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
