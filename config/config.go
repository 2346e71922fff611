// config/config.go
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Cache         CacheConfiguration
	Auth          AuthConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	URI      string
	Username string
	Password string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr     string
	Password string
	DB       int
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// CacheConfiguration stores the per-entity-kind cache TTLs
type CacheConfiguration struct {
	SnippetListTTL   string
	SnippetDetailTTL string
	TagListTTL       string
	TagDetailTTL     string
}

// AuthConfiguration stores token signing settings
type AuthConfiguration struct {
	Secret     string
	Issuer     string
	AccessTTL  string
	RefreshTTL string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("cache.snippetListTTL", "5m")
	viper.SetDefault("cache.snippetDetailTTL", "5m")
	viper.SetDefault("cache.tagListTTL", "10m")
	viper.SetDefault("cache.tagDetailTTL", "5m")
	viper.SetDefault("auth.issuer", "snipvault")
	viper.SetDefault("auth.accessTTL", "15m")
	viper.SetDefault("auth.refreshTTL", "24h")
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// CacheTTL reads and validates one cache TTL option. A missing option
// falls back to the viper default; a zero or negative duration is a
// configuration error and must abort startup rather than cache forever
// or never.
func CacheTTL(key string) (time.Duration, error) {
	ttl := viper.GetDuration(key)
	if ttl <= 0 {
		return 0, fmt.Errorf("invalid cache TTL for %q: %s", key, ttl)
	}
	return ttl, nil
}
