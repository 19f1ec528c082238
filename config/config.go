package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// ForceJoinChannel is a channel an end user must belong to before the bot
// serves product deep links.
type ForceJoinChannel struct {
	Chat_Id     int64
	Invite_Link string
}

type Config struct {
	Telegram_Token       string
	Bot_Username         string
	Admin_User_Id        int64
	Source_Channel_Id    int64
	Products_File        string
	Health_Port          int
	Blogger_Blog_Id      string
	Google_Client_Id     string
	Google_Client_Secret string
	Google_Refresh_Token string
	Force_Join_Channels  []ForceJoinChannel
	BugSink_Enabled      bool
	BugSink_DSN          string
	BugSink_Environment  string
	BugSink_Release      string
}

var config Config

func C() *Config {
	return &config
}

func Init(file string) {
	log.Printf("[CONFIG] Initializing configuration from file: %s", file)

	viper.SetConfigName(file)
	viper.AddConfigPath(".")

	viper.SetDefault("Products_File", "products.json")
	viper.SetDefault("Health_Port", 8080)

	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("Error reading config file: %s", err))
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		panic(fmt.Errorf("Error unmarshalling config: %s", err))
	}

	log.Printf("[CONFIG] Configuration loaded successfully")
	log.Printf("[CONFIG] Source channel: %d", config.Source_Channel_Id)
	log.Printf("[CONFIG] Force-join channels configured: %d", len(config.Force_Join_Channels))
}
