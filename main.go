package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/LLove01/leverkusen-invincibles-analysis/config"
	"github.com/LLove01/leverkusen-invincibles-analysis/pipeline"
	"github.com/LLove01/leverkusen-invincibles-analysis/statsbomb"
	"github.com/LLove01/leverkusen-invincibles-analysis/store"
)

func main() {
	log.Println("Starting match data pull...")

	// Credentials live in .env when present; the open-data mirror needs none.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "config.yaml"
		if _, errFallback := os.Stat(configPath); os.IsNotExist(errFallback) {
			log.Fatalf("Config file not found at default paths. Error: %v", errFallback)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Competition: %d, season: %d, base dir: %s",
		cfg.Pull.CompetitionID, cfg.Pull.SeasonID, cfg.Storage.BaseDir)

	files, err := store.NewFileStore(cfg.Storage.BaseDir)
	if err != nil {
		log.Fatalf("Error creating base data directory: %v", err)
	}

	catalog, err := store.OpenCatalog(filepath.Join(cfg.Storage.BaseDir, cfg.Storage.CatalogFile))
	if err != nil {
		log.Fatalf("Error opening pull catalog: %v", err)
	}

	client := statsbomb.NewClient(cfg.Provider)

	runErr := pipeline.Run(cfg, client, files, catalog)
	catalog.Close()
	if runErr != nil {
		log.Printf("An error occurred: %v", runErr)
		os.Exit(1)
	}

	log.Println("Data download and organization complete!")
}
