package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/resume-forge/resume-forge/internal/logger"
	"github.com/resume-forge/resume-forge/internal/match"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume-file> <job-description-file>",
	Short: "Score a resume against a job description",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		runMatch(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(resumePath, jobPath string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	rec, vocab, err := parseFile(config, resumePath)
	if err != nil {
		logger.Fatal("parsing the resume", zap.Error(err), zap.String("filename", resumePath))
	}

	job, err := os.ReadFile(jobPath)
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err), zap.String("filename", jobPath))
	}

	matcher, err := match.NewMatcher(vocab)
	if err != nil {
		logger.Fatal("building the matcher", zap.Error(err))
	}

	result := matcher.Match(rec, string(job))

	logger.Info("matched the resume against the job description",
		zap.Int("overall match score", result.OverallMatchScore),
		zap.Float64("skills match percentage", result.SkillsAnalysis.MatchPercentage),
	)

	pretty, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(pretty))
}
