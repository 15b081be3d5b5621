package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"flameo-chatbot/internal/corpus"
	"flameo-chatbot/internal/repository"
	"flameo-chatbot/pkg/config"
	"flameo-chatbot/pkg/logger"
	"flameo-chatbot/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// The seeder always imports a file, whatever source the server reads from.
	location := cfg.Corpus.Location
	if len(os.Args) > 1 {
		location = os.Args[1]
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	corpusRepo := repository.NewCorpusRepository(db, appLogger)
	if err := corpusRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to prepare corpus table", zap.Error(err))
	}

	loader := corpus.NewLoader(corpus.Columns{
		Question: cfg.Corpus.QuestionColumn,
		Answer:   cfg.Corpus.AnswerColumn,
	}, appLogger)

	appLogger.Info("Starting corpus seeding...", zap.String("location", location))

	cacheFile := filepath.Join("cmd", "seed", ".seed_cache.json")
	if err := seedCorpus(ctx, location, cacheFile, loader, corpusRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed corpus", zap.Error(err))
	}

	appLogger.Info("Corpus seeding completed successfully!")
}

// ProcessedFile is one imported corpus file in the cache.
type ProcessedFile struct {
	FilePath    string    `json:"file_path"`
	FileHash    string    `json:"file_hash"`
	Rows        int       `json:"rows"`
	ProcessedAt time.Time `json:"processed_at"`
}

// CacheData remembers what was imported, keyed by location.
type CacheData struct {
	ProcessedFiles map[string]ProcessedFile `json:"processed_files"`
}

func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		ProcessedFiles: make(map[string]ProcessedFile),
	}

	data, err := os.ReadFile(cacheFile)
	if errors.Is(err, os.ErrNotExist) {
		return cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.ProcessedFiles == nil {
		cache.ProcessedFiles = make(map[string]ProcessedFile)
	}
	return cache, nil
}

func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cacheFile), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cacheFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// calculateFileHash returns the MD5 of a local file. Remote locations have no hash
// and are always imported.
func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

func seedCorpus(
	ctx context.Context,
	location string,
	cacheFile string,
	loader *corpus.Loader,
	repo *repository.CorpusRepository,
	logger *zap.Logger,
) error {
	cache, err := loadCache(cacheFile)
	if err != nil {
		logger.Warn("Failed to load cache, will import the corpus", zap.Error(err))
		cache = &CacheData{ProcessedFiles: make(map[string]ProcessedFile)}
	}

	fileHash, err := calculateFileHash(location)
	if err != nil {
		logger.Warn("Failed to calculate file hash, will import anyway", zap.String("location", location), zap.Error(err))
	}

	if cached, ok := cache.ProcessedFiles[location]; ok && fileHash != "" {
		if cached.FileHash == fileHash {
			logger.Info("Corpus already imported, skipping",
				zap.String("location", location),
				zap.Time("processed_at", cached.ProcessedAt),
			)
			return nil
		}
		logger.Info("Corpus changed, reimporting",
			zap.String("location", location),
			zap.String("old_hash", cached.FileHash),
			zap.String("new_hash", fileHash),
		)
	}

	rows, err := loader.LoadRows(ctx, location)
	if err != nil {
		return err
	}

	// Incomplete rows are stored as-is; the index drops them at load time like a file source.
	if err := repo.ReplaceAll(ctx, rows); err != nil {
		return err
	}

	index := corpus.NewIndex(rows)
	logger.Info("Imported corpus",
		zap.String("location", location),
		zap.Int("rows", len(rows)),
		zap.Int("entries", index.Len()),
		zap.Int("dropped", index.Dropped()),
	)

	if fileHash == "" {
		return nil
	}
	cache.ProcessedFiles[location] = ProcessedFile{
		FilePath:    location,
		FileHash:    fileHash,
		Rows:        len(rows),
		ProcessedAt: time.Now(),
	}
	if err := saveCache(cacheFile, cache); err != nil {
		logger.Warn("Failed to save cache", zap.Error(err))
	} else {
		logger.Info("Cache saved", zap.Int("processed_files", len(cache.ProcessedFiles)))
	}
	return nil
}
