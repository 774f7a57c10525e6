package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/textprep/internal/transliteration"
)

// Settings are the runtime settings read from the optional transliteration
// and log sections of the configuration file and from TEXTPREP_ variables.
type Settings struct {
	Transliteration transliteration.Config
	LogLevel        string
}

func setDefaults() {
	d := transliteration.DefaultConfig()
	viper.SetDefault("transliteration.backend", d.Backend)
	viper.SetDefault("transliteration.model", "")
	viper.SetDefault("transliteration.endpoint", d.Endpoint)
	viper.SetDefault("transliteration.timeout", d.Timeout)
	viper.SetDefault("transliteration.cache", "")
	viper.SetDefault("transliteration.breaker.max_failures", d.BreakerMaxFailures)
	viper.SetDefault("transliteration.breaker.cooldown", d.BreakerCooldown)
	viper.SetDefault("log.level", "info")
}

// InitConfig initializes viper configuration from cfgFile and the
// environment. A config file viper cannot read is not an error here; the
// normalization document loader reports it.
func InitConfig(cfgFile string) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("TEXTPREP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// LoadSettings returns the current settings
func LoadSettings() *Settings {
	return &Settings{
		Transliteration: transliteration.Config{
			Backend:            viper.GetString("transliteration.backend"),
			Model:              viper.GetString("transliteration.model"),
			Endpoint:           viper.GetString("transliteration.endpoint"),
			Timeout:            viper.GetDuration("transliteration.timeout"),
			CachePath:          viper.GetString("transliteration.cache"),
			OpenAIKey:          GetOpenAIKey(),
			GeminiKey:          GetGeminiKey(),
			BreakerMaxFailures: viper.GetUint32("transliteration.breaker.max_failures"),
			BreakerCooldown:    viper.GetDuration("transliteration.breaker.cooldown"),
		},
		LogLevel: viper.GetString("log.level"),
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("transliteration.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("transliteration.gemini_key")
}

// NewLogger creates a text logger writing to w at the named level. Unknown
// levels fall back to info.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
