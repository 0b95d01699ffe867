package config

import "github.com/spf13/viper"

// Config - структура для хранения конфигураций приложения
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	PostgresConn  string `mapstructure:"POSTGRES_CONN"`
	PostgresUser  string `mapstructure:"POSTGRES_USERNAME"`
	PostgresPass  string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresHost  string `mapstructure:"POSTGRES_HOST"`
	PostgresPort  string `mapstructure:"POSTGRES_PORT"`
	PostgresDB    string `mapstructure:"POSTGRES_DATABASE"`
	MigrationURL  string `mapstructure:"MIGRATION_URL"`

	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	PaymentAPIURL     string  `mapstructure:"PAYMENT_API_URL"`
	PaymentAPIKey     string  `mapstructure:"PAYMENT_API_KEY"`
	PaymentSuccessURL string  `mapstructure:"PAYMENT_SUCCESS_URL"`
	PaymentCancelURL  string  `mapstructure:"PAYMENT_CANCEL_URL"`
	CommissionRate    float64 `mapstructure:"COMMISSION_RATE"`

	MaxNotifiedSellers  int `mapstructure:"MAX_NOTIFIED_SELLERS"`
	OfferListLimit      int `mapstructure:"OFFER_LIST_LIMIT"`
	ProcessorTimeoutSec int `mapstructure:"PROCESSOR_TIMEOUT_SECONDS"`
}

// LoadConfig загружает конфигурацию из файла
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("COMMISSION_RATE", 0.10)
	viper.SetDefault("MAX_NOTIFIED_SELLERS", 20)
	viper.SetDefault("OFFER_LIST_LIMIT", 3)
	viper.SetDefault("PROCESSOR_TIMEOUT_SECONDS", 10)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}
	err = viper.Unmarshal(&cfg)
	return
}
