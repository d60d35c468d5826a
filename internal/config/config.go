package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config reúne a configuração da aplicação, lida do ambiente (e do .env, se existir).
type Config struct {
	Port          string
	SessionSecret string
	LogLevel      string
	TemplatesDir  string
}

// Load carrega os arquivos .env informados (ou ".env" por padrão) e lê as variáveis
// de ambiente. A ausência do arquivo não é erro; variáveis já definidas prevalecem.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("erro ao carregar o arquivo .env: %w", err)
	}

	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		TemplatesDir: getEnvOrDefault("TEMPLATES_DIR", "internal/view/templates"),
	}

	if cfg.SessionSecret = os.Getenv("SESSION_SECRET"); cfg.SessionSecret == "" {
		return nil, fmt.Errorf("variável SESSION_SECRET é obrigatória")
	}

	return cfg, nil
}

// getEnvOrDefault retorna o valor da variável ou o padrão quando ela está vazia.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
