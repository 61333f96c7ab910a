package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Helius     HeliusConfig     `mapstructure:"helius"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Collection CollectionConfig `mapstructure:"collection"`
	Channels   ChannelsConfig   `mapstructure:"channels"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	// PublicURL overrides the request-derived origin when building the
	// webhook callback URL (needed behind proxies that hide the host).
	PublicURL string `mapstructure:"public_url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

type HeliusConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// AuthConfig holds the shared secret that gates /create-webhook and /webhook.
// The same value is handed to Helius as the authHeader it must echo back.
type AuthConfig struct {
	Token string `mapstructure:"token"`
}

type CollectionConfig struct {
	IDFile   string `mapstructure:"id_file"`
	RankFile string `mapstructure:"rank_file"`
}

type ChannelsConfig struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	X        XConfig        `mapstructure:"x"`
	Console  ConsoleConfig  `mapstructure:"console"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
}

type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

// XConfig carries the full credential set even while the channel ships
// disabled, so enabling it is purely a configuration change.
type XConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	AppKey       string `mapstructure:"app_key"`
	AppSecret    string `mapstructure:"app_secret"`
	BearerToken  string `mapstructure:"bearer_token"`
	AccessToken  string `mapstructure:"access_token"`
	AccessSecret string `mapstructure:"access_secret"`
}

type ConsoleConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
	Mode     string `mapstructure:"mode"` // list or pubsub
}

type KafkaConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	User     string   `mapstructure:"user"`
	Password string   `mapstructure:"password"`
}

type RabbitMQConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	URL        string `mapstructure:"url"`
	Exchange   string `mapstructure:"exchange"`
	RoutingKey string `mapstructure:"routing_key"`
	QueueName  string `mapstructure:"queue_name"`
	Durable    bool   `mapstructure:"durable"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("GECKO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Set default values
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Helius.BaseURL == "" {
		cfg.Helius.BaseURL = "https://api.helius.xyz"
	}
	if cfg.Channels.Redis.Mode == "" {
		cfg.Channels.Redis.Mode = "pubsub"
	}

	return &cfg, nil
}
