package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Qdrant   QdrantConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Scoring  ScoringConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type GeminiConfig struct {
	APIKey string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type CacheConfig struct {
	ResumeTTL time.Duration
}

// ScoringConfig exposes the ATS point bands. The intended weighting is
// ambiguous across the product's history, so it is configuration rather
// than hard-coded law.
type ScoringConfig struct {
	OptimalLengthPoints  int
	OffLengthPoints      int
	SkillCoveragePoints  int
	DeepSkillBonusPoints int
	EmailPoints          int
	PhonePoints          int
	SectionKeywordPoints int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_analyzer"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "job_postings"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Cache: CacheConfig{
			ResumeTTL: getEnvAsDuration("RESUME_CACHE_TTL", "1h"),
		},
		Scoring: ScoringConfig{
			OptimalLengthPoints:  getEnvAsInt("ATS_OPTIMAL_LENGTH_POINTS", 25),
			OffLengthPoints:      getEnvAsInt("ATS_OFF_LENGTH_POINTS", 10),
			SkillCoveragePoints:  getEnvAsInt("ATS_SKILL_COVERAGE_POINTS", 25),
			DeepSkillBonusPoints: getEnvAsInt("ATS_DEEP_SKILL_BONUS_POINTS", 15),
			EmailPoints:          getEnvAsInt("ATS_EMAIL_POINTS", 15),
			PhonePoints:          getEnvAsInt("ATS_PHONE_POINTS", 10),
			SectionKeywordPoints: getEnvAsInt("ATS_SECTION_KEYWORD_POINTS", 10),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
