package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Auth    AuthConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type StorageConfig struct {
	DataDir string
}

type AuthConfig struct {
	BootstrapAdminUser string
	BootstrapAdminPass string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinema-chain")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_DIR", "data/")
	viper.SetDefault("BOOTSTRAP_ADMIN_USER", "admin")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASS", "admin")

	// A missing .env is fine on first run, defaults and env vars apply
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Storage: StorageConfig{
			DataDir: viper.GetString("DATA_DIR"),
		},
		Auth: AuthConfig{
			BootstrapAdminUser: viper.GetString("BOOTSTRAP_ADMIN_USER"),
			BootstrapAdminPass: viper.GetString("BOOTSTRAP_ADMIN_PASS"),
		},
	}

	return config, nil
}
