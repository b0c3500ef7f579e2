package config

import "time"

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	Storage  StorageConfig  `env-prefix:"STORAGE_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Dynamo   DynamoConfig   `env-prefix:"DYNAMO_"`
	Gemini   GeminiConfig   `env-prefix:"GEMINI_"`
	Assist   AssistConfig   `env-prefix:"ASSIST_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type HTTPConfig struct {
	Addr            string        `env:"ADDR" env-default:"localhost:8081"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"3s"`
	// Origins besides the server's own host allowed to open the event stream.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:","`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverDynamo   = "dynamodb"
	DriverMemory   = "memory"
)

type StorageConfig struct {
	Driver     string `env:"DRIVER" env-default:"sqlite"`
	Key        string `env:"KEY" env-default:"notes_data_v3_ai"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"notes.db"`
}

type DatabaseConfig struct {
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"3"`
}

type DynamoConfig struct {
	Table    string `env:"TABLE" env-default:"NotesState"`
	Region   string `env:"REGION" env-default:"us-east-1"`
	Endpoint string `env:"ENDPOINT"`
}

type GeminiConfig struct {
	URL     string        `env:"URL" env-default:"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-09-2025:generateContent"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"30s"`
}

type AssistConfig struct {
	Attempts  uint          `env:"ATTEMPTS" env-default:"5"`
	BaseDelay time.Duration `env:"BASE_DELAY" env-default:"1s"`
}
