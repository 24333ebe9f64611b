package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream backend API.
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	RequestTimeoutSecs int    `mapstructure:"REQUEST_TIMEOUT_SECS"`

	// Hosted checkout widget.
	CheckoutScriptURL  string `mapstructure:"CHECKOUT_SCRIPT_URL"`
	CheckoutThemeColor string `mapstructure:"CHECKOUT_THEME_COLOR"`
	CheckoutWaitSecs   int    `mapstructure:"CHECKOUT_WAIT_SECS"`

	// Redis configuration (viewer session store).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("API_BASE_URL", "http://localhost:8081/api")
	viper.SetDefault("REQUEST_TIMEOUT_SECS", 10)
	viper.SetDefault("CHECKOUT_SCRIPT_URL", "https://checkout.razorpay.com/v1/checkout.js")
	viper.SetDefault("CHECKOUT_THEME_COLOR", "#6D28D9")
	viper.SetDefault("CHECKOUT_WAIT_SECS", 600)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
