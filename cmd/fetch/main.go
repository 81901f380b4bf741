package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/febbyRG/juz-amma/internal/config"
	"github.com/febbyRG/juz-amma/internal/quran"
	"github.com/febbyRG/juz-amma/internal/report"
	"github.com/febbyRG/juz-amma/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Fetching Juz Amma data...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	// Open the local response cache when configured
	var cache *quran.Cache
	if cfg.CachePath != "" {
		cache, err = quran.OpenCache(cfg.CachePath)
		if err != nil {
			logger.Fatal("Failed to open response cache", err)
		}
		defer cache.Close()
		logger.Info("Response cache enabled", "path", cfg.CachePath)
	}

	client := quran.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, cfg.FetchDelay, cache)

	var translations []quran.TranslationRequest
	if cfg.EnglishTranslationID > 0 {
		translations = append(translations, quran.TranslationRequest{
			ID:       cfg.EnglishTranslationID,
			Language: quran.LanguageEnglish,
		})
	}
	if cfg.IndonesianTranslationID > 0 {
		translations = append(translations, quran.TranslationRequest{
			ID:       cfg.IndonesianTranslationID,
			Language: quran.LanguageIndonesian,
		})
	}
	if len(translations) == 0 {
		logger.Info("No translation sources configured, fetching Arabic text only")
	}

	assembler := quran.NewAssembler(quran.NewFetcher(client, translations))

	corpus, err := assembler.Build(context.Background())
	if err != nil {
		logger.Fatal("Failed to assemble corpus", err)
	}

	if err := quran.WriteCorpus(corpus, cfg.OutputPath); err != nil {
		logger.Fatal("Failed to write corpus", err)
	}
	logger.Info("Saved corpus",
		"path", cfg.OutputPath,
		"surahs", len(corpus.JuzAmma),
		"verses", corpus.TotalVerses())

	// The report is advisory; its failure must not fail a run that already
	// produced the corpus file.
	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, corpus); err != nil {
			logger.Warn("Failed to write verification report", "error", err)
		} else {
			logger.Info("Saved verification report", "path", cfg.ReportPath)
		}
	}
}
