package main

import (
	"github.com/spf13/viper"
)

// Config is the process-level configuration: env-first, with an optional
// app.env file for local runs.
type Config struct {
	Port     string `mapstructure:"PORT"`
	DataFile string `mapstructure:"DATA_FILE"`
	AppEnv   string `mapstructure:"APP_ENV"`
	DevMode  bool   `mapstructure:"DEV_MODE"`
}

func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATA_FILE", "emoji-clicker.db")
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("DEV_MODE", false)

	// Bind explicitly so env vars are visible without a config file.
	viper.BindEnv("PORT")
	viper.BindEnv("DATA_FILE")
	viper.BindEnv("APP_ENV")
	viper.BindEnv("DEV_MODE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
		// No file is fine; env vars and defaults carry it.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
