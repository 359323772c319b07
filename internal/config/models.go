package config

import "time"

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	ListenAddress  string
	Mode           string
	MaxContentSize int
	MaxImageSize   int
}

// NetworkConfig represents timeouts and endpoints for live network checks
type NetworkConfig struct {
	DNSServer  string
	DNSTimeout time.Duration
	TLSTimeout time.Duration
}

// ClassifierConfig represents the text classifier configuration
type ClassifierConfig struct {
	StoreType  string
	SQLitePath string
	MySQLDSN   string
	ModelKey   string
	Seed       int64
}

// GetServer returns the HTTP server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		ListenAddress:  c.GetString("server.listen_address"),
		Mode:           c.GetString("server.mode"),
		MaxContentSize: c.GetInt("server.max_content_size"),
		MaxImageSize:   c.GetInt("server.max_image_size"),
	}
}

// GetNetwork returns the network check configuration
func (c *Config) GetNetwork() NetworkConfig {
	dnsTimeout, err := c.GetDuration("network.dns_timeout")
	if err != nil {
		dnsTimeout = 2 * time.Second
	}
	tlsTimeout, err := c.GetDuration("network.tls_timeout")
	if err != nil {
		tlsTimeout = 3 * time.Second
	}
	return NetworkConfig{
		DNSServer:  c.GetString("network.dns_server"),
		DNSTimeout: dnsTimeout,
		TLSTimeout: tlsTimeout,
	}
}

// GetClassifier returns the text classifier configuration
func (c *Config) GetClassifier() ClassifierConfig {
	return ClassifierConfig{
		StoreType:  c.GetString("classifier.store_type"),
		SQLitePath: c.GetString("classifier.sqlite_path"),
		MySQLDSN:   c.GetString("classifier.mysql_dsn"),
		ModelKey:   c.GetString("classifier.model_key"),
		Seed:       c.GetInt64("classifier.seed"),
	}
}
