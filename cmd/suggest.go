package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/resume-forge/resume-forge/internal/analysis"
	"github.com/resume-forge/resume-forge/internal/format"
	"github.com/resume-forge/resume-forge/internal/logger"
	"github.com/resume-forge/resume-forge/internal/secrets"
	"github.com/resume-forge/resume-forge/internal/suggest"
	"github.com/resume-forge/resume-forge/internal/suggest/gemini"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <resume-file>",
	Short: "Print improvement suggestions for a resume, AI-assisted when enabled",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runSuggest(args[0])
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	rec, vocab, err := parseFile(config, path)
	if err != nil {
		logger.Fatal("parsing the resume", zap.Error(err), zap.String("filename", path))
	}

	result := analysis.NewAnalyzer(vocab).Analyze(rec, resolveYear(config))

	suggestions := format.NewAdvisor(logger).Suggest(rec)
	suggestions = append(suggestions, result.Weaknesses...)

	if config != nil && config.AI != nil && config.AI.Enabled {
		suggester, err := newAISuggester(ctx, config.AI, logger)
		if err != nil {
			logger.Fatal("building ai suggester", zap.Error(err))
		}

		generated, err := suggester.Suggest(ctx, rec, result)
		if err != nil {
			logger.Fatal("getting ai suggestions", zap.Error(err))
		}

		suggestions = append(generated, suggestions...)
	}

	for _, s := range suggestions {
		fmt.Println("-", s)
	}
}

func newAISuggester(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (suggest.Suggester, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("ai suggestions are disabled (set ai.enabled in the configuration file)")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai suggestions are enabled")
	}

	apiKey, err := resolveGeminiKey(cfg.Gemini)
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	return gemini.NewSuggester(generator, logger, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength), nil
}

func resolveGeminiKey(cfg *GeminiConfig) (string, error) {
	keyFile := strings.TrimSpace(cfg.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	return secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
	})
}
