package cmd

import (
	"log"
	"time"

	"github.com/resume-forge/resume-forge/internal/vocabulary"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-forge"
)

type Config struct {
	// Vocabulary overrides the built-in term lists. Keys match the
	// vocabulary list names (skills, tech-terms, and so on).
	Vocabulary map[string]any `mapstructure:"vocabulary"`
	// CurrentYear anchors experience-duration math. Defaults to the wall
	// clock when unset.
	CurrentYear int       `mapstructure:"current-year"`
	AI          *AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-forge is a cli for parsing plain-text resumes, scoring them and matching them against job descriptions",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-forge.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional unless one was named explicitly.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func loadVocabulary(config *Config) (*vocabulary.Vocabulary, error) {
	if config == nil {
		return vocabulary.Default(), nil
	}

	return vocabulary.Load(config.Vocabulary)
}

func resolveYear(config *Config) int {
	if config != nil && config.CurrentYear > 0 {
		return config.CurrentYear
	}

	return time.Now().Year()
}
