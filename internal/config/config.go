package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultSnippet is the block injected into each HTML head section by the
// TTS importer: a short comment plus the external script reference.
const DefaultSnippet = "    <!-- 引入TTS发送器 -->\n    <script src=\"../tts-sender.js\"></script>"

// DefaultMarker is the substring whose presence means a file already carries
// the injected snippet.
const DefaultMarker = "tts-sender.js"

type Config struct {
	Root     string `mapstructure:"root"`      // Directory whose subdirectories are scanned
	Snippet  string `mapstructure:"snippet"`   // Block inserted into the head section
	Marker   string `mapstructure:"marker"`    // Substring that marks an already-patched file
	LogLevel string `mapstructure:"log_level"` // zerolog level name like "info", "debug", etc.
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	// Parse and set log level from config
	level := zerolog.InfoLevel // default
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	// Set the global log level
	zerolog.SetGlobalLevel(level)

	// Update logger with the configured level
	logger = logger.Level(level)

	globalConfig = config
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Add specific environment variable for log level
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	// Set defaults
	viper.SetDefault("root", ".")
	viper.SetDefault("snippet", DefaultSnippet)
	viper.SetDefault("marker", DefaultMarker)
	viper.SetDefault("log_level", "")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

func GetLogger() zerolog.Logger {
	return logger
}

// SetLogLevel overrides the global log level, typically from a CLI flag.
func SetLogLevel(name string) {
	if name == "" {
		return
	}
	parsedLevel, err := zerolog.ParseLevel(name)
	if err != nil {
		logger.Warn().Str("invalid_level", name).Msg("Invalid log level, keeping current level")
		return
	}
	zerolog.SetGlobalLevel(parsedLevel)
	logger = logger.Level(parsedLevel)
}
