package config

import (
	"log"
	"sync"

	viper "github.com/spf13/viper"
)

var (
	cfg  *Config
	once sync.Once
)

type Config struct {
	ServerPort    string `mapstructure:"PORT"`
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DB"`
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`
}

// Get loads the configuration once from app.env (if present) and the
// process environment, environment taking precedence.
func Get() *Config {
	once.Do(func() {
		loaded, err := load()
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v", err)
		}
		cfg = loaded
	})
	return cfg
}

func load() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Defaults keep local development working without any env file.
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "ecommerce_shopping")
	viper.SetDefault("CLOUDINARY_URL", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}
