package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/resume-forge/resume-forge/internal/analysis"
	"github.com/resume-forge/resume-forge/internal/format"
	"github.com/resume-forge/resume-forge/internal/logger"
	"github.com/resume-forge/resume-forge/internal/parser"
	"github.com/resume-forge/resume-forge/internal/resume"
	"github.com/resume-forge/resume-forge/internal/vocabulary"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowRecord        = "Show parsed record"
	PromptFormatSuggestions = "Show format suggestions"
	PromptApplyFormatting   = "Apply formatting improvements"
	PromptAISuggestions     = "Ask AI for improvement suggestions"
	PromptRecordToFile      = "Dump record to file"
	PromptExit              = "Exit"
)

var errExit = errors.New("exit requested")

var analyzePrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowRecord, PromptFormatSuggestions, PromptApplyFormatting, PromptAISuggestions, PromptRecordToFile, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Parse a plain-text resume and print its quality analysis",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("no-interactive", "n", false, "print the analysis and exit without the action prompt")
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-forge", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	rec, vocab, err := parseFile(config, path)
	if err != nil {
		logger.Fatal("parsing the resume", zap.Error(err), zap.String("filename", path))
	}

	store := resume.NewStore()
	rec = store.Save(rec)

	logger.Info("parsed the resume",
		zap.String("id", rec.ID),
		zap.Int("experience entries", len(rec.Experience)),
		zap.Int("skills", len(rec.Skills)),
	)

	result := analysis.NewAnalyzer(vocab).Analyze(rec, resolveYear(config))

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))

	if cmd.Flag("no-interactive").Value.String() == "true" {
		return
	}

	for {
		_, action, err := analyzePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		// A failed action (for example AI suggestions without an API key)
		// must not kill the session; report it and prompt again.
		if err := handleAction(ctx, action, store, rec, result, config, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Error("action failed", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, store *resume.Store, rec *resume.Resume, result *analysis.Analysis, config *Config, logger *zap.Logger) error {
	switch action {
	case PromptShowRecord:
		pretty, _ := json.MarshalIndent(rec, "", "  ")
		fmt.Println(string(pretty))
		return nil
	case PromptFormatSuggestions:
		for _, s := range format.NewAdvisor(logger).Suggest(rec) {
			fmt.Println("-", s)
		}
		return nil
	case PromptApplyFormatting:
		report := format.NewAdvisor(logger).Optimize(rec)
		if _, err := store.Snapshot(rec.ID, report.Summary); err != nil {
			return fmt.Errorf("snapshotting record: %w", err)
		}
		logger.Info(report.Summary, zap.Int("version", rec.Version))
		return nil
	case PromptAISuggestions:
		aiConfig := (*AIConfig)(nil)
		if config != nil {
			aiConfig = config.AI
		}

		suggester, err := newAISuggester(ctx, aiConfig, logger)
		if err != nil {
			return fmt.Errorf("building ai suggester: %w", err)
		}

		suggestions, err := suggester.Suggest(ctx, rec, result)
		if err != nil {
			return fmt.Errorf("ai suggestions: %w", err)
		}

		for _, s := range suggestions {
			fmt.Println("-", s)
		}
		return nil
	case PromptRecordToFile:
		filename, err := rec.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump record to file: %w", err)
		}
		logger.Info("dumping record to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// parseFile loads the vocabulary, reads the resume file and runs it through
// the parser.
func parseFile(config *Config, path string) (*resume.Resume, *vocabulary.Vocabulary, error) {
	vocab, err := loadVocabulary(config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading vocabulary: %w", err)
	}

	p, err := parser.New(vocab)
	if err != nil {
		return nil, nil, fmt.Errorf("building parser: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	rec, err := p.Parse(string(data))
	if err != nil {
		return nil, nil, err
	}

	rec.Filename = filepath.Base(path)

	return rec, vocab, nil
}
