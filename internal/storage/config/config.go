package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

func init() {
	ServiceConfig = Load()
}

var ServiceConfig *Config

type Config struct {
	Server ServerConfig
	MinIO  MinIOConfig
	Consul ConsulConfig
}

type ServerConfig struct {
	Port           string
	ServiceName    string
	ServiceAddress string
	ServiceID      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Host           string
}

type ConsulConfig struct {
	ConsulAddress string
}

type MinIOConfig struct {
	Endpoint        string
	PublicEndpoint  string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Region          string
	Bucket          string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "9210"),
			ServiceName:    getEnv("FILE_SERVICE_NAME", "file-service"),
			ServiceAddress: getEnv("FILE_SERVICE_ADDRESS", "file-service"),
			ServiceID:      getEnv("FILE_SERVICE_NAME", "file-service") + "-" + getEnv("HOSTNAME", "file"),
			ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
			Host:           getEnv("HOST", "0.0.0.0"),
		},
		Consul: ConsulConfig{
			ConsulAddress: getEnv("CONSUL_ADDRESS", "consul-server") + ":" + getEnv("CONSUL_PORT", "8500"),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnv("MINIO_ENDPOINT", "localhost:9000"),
			PublicEndpoint:  getEnv("MINIO_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKeyID:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			UseSSL:          getEnvAsBool("MINIO_USE_SSL", false),
			Region:          getEnv("MINIO_REGION", "us-east-1"),
			Bucket:          getEnv("MINIO_BUCKET", "profiles"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf("error retrieving bool env var %s: %s", key, err)
			return defaultValue
		}
		return boolVal
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		durVal, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("error retrieving duration env var %s: %s", key, err)
			return defaultValue
		}
		return durVal
	}
	return defaultValue
}
