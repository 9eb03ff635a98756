package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr string
	QueueKey  string

	SecretKey                string
	JWTAudience              string
	AccessTokenExpireMinutes int

	GinMode string
}

// Load reads configuration from an optional config.yaml in the working
// directory, with environment variables taking precedence over the file.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "kanban")
	v.SetDefault("DB_PASSWORD", "kanban")
	v.SetDefault("DB_NAME", "kanban")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("QUEUE_KEY", "kanban:jobs")
	v.SetDefault("SECRET_KEY", "default-secret-key-change-me")
	v.SetDefault("JWT_AUDIENCE", "kanban:auth")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60)
	v.SetDefault("GIN_MODE", "debug")

	// Config file is optional; env vars and defaults cover everything.
	_ = v.ReadInConfig()

	return &Config{
		ListenAddr:               v.GetString("LISTEN_ADDR"),
		DBDriver:                 v.GetString("DB_DRIVER"),
		DBHost:                   v.GetString("DB_HOST"),
		DBPort:                   v.GetString("DB_PORT"),
		DBUser:                   v.GetString("DB_USER"),
		DBPassword:               v.GetString("DB_PASSWORD"),
		DBName:                   v.GetString("DB_NAME"),
		DBSSLMode:                v.GetString("DB_SSLMODE"),
		RedisAddr:                v.GetString("REDIS_ADDR"),
		QueueKey:                 v.GetString("QUEUE_KEY"),
		SecretKey:                v.GetString("SECRET_KEY"),
		JWTAudience:              v.GetString("JWT_AUDIENCE"),
		AccessTokenExpireMinutes: v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		GinMode:                  v.GetString("GIN_MODE"),
	}
}
