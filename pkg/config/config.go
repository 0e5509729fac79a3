package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	LogLevel    string
	DebugErrors bool

	DatabaseURL string
	RedisURL    string

	// Completion API
	LLMProvider    string // "openai" or "anthropic"
	LLMModel       string
	LLMMaxTokens   int
	LLMTemperature float64
	LLMMaxRetries  int
	LLMTimeout     time.Duration
	MaxPromptChars int

	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIAppTitle string
	OpenAIReferer  string

	AnthropicAPIKey string

	UploadMaxBytes int64

	LinkedIn LinkedInConfig
	Scraper  ScraperConfig
}

// DefaultStateSecret signs OAuth state when OAUTH_STATE_SECRET is unset. Development only.
const DefaultStateSecret = "dev-secret-change"

// LinkedInConfig covers both the OAuth application and the scraping session cookies.
type LinkedInConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	StateSecret  string
	CookiesFile  string
	LiAt         string
}

type ScraperConfig struct {
	Mode          string // "dom" or "llm"
	SelectorsFile string
	ReadyTimeout  time.Duration
	NavTimeout    time.Duration
	ChromePath    string
	Headless      bool
}

// OAuthConfigured reports whether the LinkedIn OAuth application credentials are present.
func (c LinkedInConfig) OAuthConfigured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURI != ""
}

// DefaultStateSecretInUse reports whether OAuth state would be signed with the well-known development secret.
func (c LinkedInConfig) DefaultStateSecretInUse() bool {
	return c.StateSecret == "" || c.StateSecret == DefaultStateSecret
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DebugErrors: getEnvBool("DEBUG_ERRORS", false),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		LLMProvider:    strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		LLMModel:       os.Getenv("LLM_MODEL"),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1000),
		LLMTemperature: getEnvFloat("LLM_TEMPERATURE", 0.2),
		LLMMaxRetries:  getEnvInt("LLM_MAX_RETRIES", 0),
		LLMTimeout:     getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		MaxPromptChars: getEnvInt("MAX_PROMPT_CHARS", 12000),

		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		OpenAIAppTitle: os.Getenv("OPENAI_APP_TITLE"),
		OpenAIReferer:  os.Getenv("OPENAI_REFERER"),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		UploadMaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 15<<20)), // 15MB

		LinkedIn: LinkedInConfig{
			ClientID:     os.Getenv("LINKEDIN_CLIENT_ID"),
			ClientSecret: os.Getenv("LINKEDIN_CLIENT_SECRET"),
			RedirectURI:  getEnv("LINKEDIN_REDIRECT_URI", "http://localhost:8000/auth/linkedin/callback"),
			StateSecret:  getEnv("OAUTH_STATE_SECRET", DefaultStateSecret),
			CookiesFile:  os.Getenv("LINKEDIN_COOKIES_FILE"),
			LiAt:         os.Getenv("LINKEDIN_LI_AT"),
		},
		Scraper: ScraperConfig{
			Mode:          strings.ToLower(getEnv("SCRAPER_MODE", "dom")),
			SelectorsFile: os.Getenv("SCRAPER_SELECTORS_FILE"),
			ReadyTimeout:  getEnvDuration("SCRAPER_READY_TIMEOUT", 15*time.Second),
			NavTimeout:    getEnvDuration("SCRAPER_NAV_TIMEOUT", 30*time.Second),
			ChromePath:    os.Getenv("CHROME_PATH"),
			Headless:      getEnvBool("SCRAPER_HEADLESS", true),
		},
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("15s") or a plain number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
