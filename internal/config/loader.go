package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram Telegram `mapstructure:"telegram"`
	Database Database `mapstructure:"database"`
	Tickets  Tickets  `mapstructure:"tickets"`
}

type Telegram struct {
	Token          string `mapstructure:"token"`
	ManagersChatID int64  `mapstructure:"managers_chat_id"`
}

type Database struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// Tickets bounds the numeric id space for generated ticket ids.
type Tickets struct {
	MinID int `mapstructure:"min_id"`
	MaxID int `mapstructure:"max_id"`
}

var App Config

func Load(path string) {
	viper.SetConfigName(path)
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("tickets.min_id", 10000)
	viper.SetDefault("tickets.max_id", 99999)

	viper.AutomaticEnv()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Config load error: %v", err)
	}

	if err := viper.Unmarshal(&App); err != nil {
		log.Fatalf("Config unmarshal error: %v", err)
	}
}
