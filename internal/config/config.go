package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when neither the environment nor a .env file sets a value
const (
	DefaultRoot         = 440.0
	DefaultNumOctaves   = 3
	DefaultNoteDuration = 0.5
	DefaultBackend      = "speaker"
	DefaultPort         = "8080"
)

// Config holds all configuration for the application
type Config struct {
	Scale    ScaleConfig
	Playback PlaybackConfig
	Server   ServerConfig
	LogLevel string
}

// ScaleConfig holds the default generation parameters
type ScaleConfig struct {
	Root       float64
	NumOctaves int
}

// PlaybackConfig holds audio output configuration
type PlaybackConfig struct {
	NoteDuration float64
	Backend      string
	SoxCommand   string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("ROOT_FREQUENCY", DefaultRoot)
	v.SetDefault("NUM_OCTAVES", DefaultNumOctaves)
	v.SetDefault("NOTE_DURATION", DefaultNoteDuration)
	v.SetDefault("PLAYBACK_BACKEND", DefaultBackend)
	v.SetDefault("SOX_COMMAND", "play")
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	// ENVIRONMENT picks the .env file, so it has to come from the process env first
	_ = v.BindEnv("ENVIRONMENT")
	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = v.ReadInConfig()

	// Environment variables override .env file values
	v.AutomaticEnv()

	for _, key := range []string{
		"ROOT_FREQUENCY",
		"NUM_OCTAVES",
		"NOTE_DURATION",
		"PLAYBACK_BACKEND",
		"SOX_COMMAND",
		"PORT",
		"ALLOWED_ORIGINS",
		"LOG_LEVEL",
	} {
		_ = v.BindEnv(key)
	}

	var config Config
	config.Scale.Root = v.GetFloat64("ROOT_FREQUENCY")
	config.Scale.NumOctaves = v.GetInt("NUM_OCTAVES")
	config.Playback.NoteDuration = v.GetFloat64("NOTE_DURATION")
	config.Playback.Backend = strings.ToLower(v.GetString("PLAYBACK_BACKEND"))
	config.Playback.SoxCommand = v.GetString("SOX_COMMAND")
	config.Server.Port = v.GetString("PORT")
	config.Server.Env = v.GetString("ENVIRONMENT")
	config.Server.AllowedOrigins = splitOrigins(v.GetString("ALLOWED_ORIGINS"))
	config.LogLevel = v.GetString("LOG_LEVEL")

	return &config, nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
