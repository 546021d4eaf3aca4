package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	SMTP    SMTPConfig
	Upload  UploadConfig
	OpenFDA OpenFDAConfig
}

type AppConfig struct {
	Port        string
	Env         string
	BaseURL     string
	FrontendURL string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type UploadConfig struct {
	Dir         string
	TempDir     string
	TempLinkTTL time.Duration
	MaxSize     int64
}

type OpenFDAConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	tempLinkTTL, err := time.ParseDuration(viper.GetString("TEMP_LINK_TTL"))
	if err != nil {
		tempLinkTTL = 24 * time.Hour
	}

	maxUploadSize := viper.GetInt64("UPLOAD_MAX_SIZE")
	if maxUploadSize <= 0 {
		maxUploadSize = 5 << 20
	}

	openFDATimeout, err := time.ParseDuration(viper.GetString("OPENFDA_TIMEOUT"))
	if err != nil {
		openFDATimeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			BaseURL:     viper.GetString("APP_BASE_URL"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		Upload: UploadConfig{
			Dir:         viper.GetString("UPLOAD_DIR"),
			TempDir:     viper.GetString("TEMP_UPLOAD_DIR"),
			TempLinkTTL: tempLinkTTL,
			MaxSize:     maxUploadSize,
		},
		OpenFDA: OpenFDAConfig{
			BaseURL: viper.GetString("OPENFDA_BASE_URL"),
			Timeout: openFDATimeout,
		},
	}

	if config.Upload.Dir == "" {
		config.Upload.Dir = "uploads/doctor_documents"
	}
	if config.Upload.TempDir == "" {
		config.Upload.TempDir = "temp_uploads"
	}
	if config.OpenFDA.BaseURL == "" {
		config.OpenFDA.BaseURL = "https://api.fda.gov"
	}

	return config, nil
}
