package config

import (
	"github.com/spf13/viper"
)

func InitConfig() {
	viper.AddConfigPath("./")
	viper.SetConfigName("config") // Register config file name (no extension)
	viper.SetConfigType("json")   // Look for specific type

	// Defaults so the service runs without a config file
	viper.SetDefault("server.address", ":3000")
	viper.SetDefault("cors.allow_origins", []string{"*"})

	viper.ReadInConfig()
}

func GetServerAddress() string {
	return viper.GetString("server.address")
}

func GetAllowedOrigins() []string {
	return viper.GetStringSlice("cors.allow_origins")
}
