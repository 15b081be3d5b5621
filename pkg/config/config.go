package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	HistoryBackendFile     = "file"
	HistoryBackendMemory   = "memory"
	HistoryBackendSQLite   = "sqlite"
	HistoryBackendPostgres = "postgres"

	CorpusSourceFile     = "file"
	CorpusSourcePostgres = "postgres"

	DefaultFallbackAnswer = "Xin lỗi, tôi không hiểu câu hỏi của bạn."
)

type Config struct {
	Server   ServerConfig
	Corpus   CorpusConfig
	History  HistoryConfig
	Database DatabaseConfig
	Chat     ChatConfig
	Admin    AdminConfig
	Logger   LoggerConfig
	Debug    DebugConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string
}

type CorpusConfig struct {
	Source         string // file | postgres
	Location       string // path or URL of the tabular source
	QuestionColumn string
	AnswerColumn   string
}

type HistoryConfig struct {
	Backend    string
	FilePath   string
	SQLitePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type ChatConfig struct {
	FallbackAnswer string
}

// AdminConfig guards destructive endpoints. An empty secret disables the guard.
type AdminConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type DebugConfig struct {
	Gops bool
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work the same (Docker/K8s).
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	tokenTTL, _ := strconv.Atoi(getEnv("ADMIN_TOKEN_TTL_HOURS", "24"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "4"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "5000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			StaticDir:    getEnv("SERVER_STATIC_DIR", ""),
		},
		Corpus: CorpusConfig{
			Source:         strings.ToLower(getEnv("CORPUS_SOURCE", CorpusSourceFile)),
			Location:       getEnv("CORPUS_LOCATION", "data/qa.csv"),
			QuestionColumn: getEnv("CORPUS_QUESTION_COLUMN", "question"),
			AnswerColumn:   getEnv("CORPUS_ANSWER_COLUMN", "answer"),
		},
		History: HistoryConfig{
			Backend:    strings.ToLower(getEnv("HISTORY_BACKEND", HistoryBackendFile)),
			FilePath:   getEnv("HISTORY_FILE", "chat_history.json"),
			SQLitePath: getEnv("HISTORY_SQLITE_PATH", "chat_history.db"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "flameo"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(maxConns),
		},
		Chat: ChatConfig{
			FallbackAnswer: getEnv("CHAT_FALLBACK_ANSWER", DefaultFallbackAnswer),
		},
		Admin: AdminConfig{
			JWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
			TokenTTL:  time.Duration(tokenTTL) * time.Hour,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Debug: DebugConfig{
			Gops: getEnv("DEBUG_GOPS", "false") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects backend names the application cannot wire.
func (c *Config) Validate() error {
	switch c.History.Backend {
	case HistoryBackendFile, HistoryBackendMemory, HistoryBackendSQLite, HistoryBackendPostgres:
	default:
		return fmt.Errorf("unknown history backend %q", c.History.Backend)
	}
	switch c.Corpus.Source {
	case CorpusSourceFile, CorpusSourcePostgres:
	default:
		return fmt.Errorf("unknown corpus source %q", c.Corpus.Source)
	}
	if c.Corpus.Source == CorpusSourceFile && c.Corpus.Location == "" {
		return fmt.Errorf("CORPUS_LOCATION is required for the file corpus source")
	}
	return nil
}

// NeedsDatabase reports whether any configured component talks to Postgres.
func (c *Config) NeedsDatabase() bool {
	return c.History.Backend == HistoryBackendPostgres || c.Corpus.Source == CorpusSourcePostgres
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
