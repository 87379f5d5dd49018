package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Product — карточка товара, показываемая ботом и записываемая в заказ.
type Product struct {
	Name  string
	Price int
}

type Config struct {
	AppHost  string
	HTTPPort string
	AppEnv   string
	LogLevel string

	// BotToken — секрет чат-платформы; без него процесс не стартует.
	BotToken string
	// AdminChatID — идентификатор оператора. Пустой — операторские выборки
	// и уведомления полностью отключены.
	AdminChatID string

	DataDir  string
	Currency string
	Product  Product

	// KafkaBrokers/KafkaTopicEvents — топик операторских событий
	// (order.created, ticket.created, ticket.updated). Пусто — no-op.
	KafkaBrokers     []string
	KafkaTopicEvents string

	// OperatorWebhookURL — если задан, новые/обновлённые записи уходят
	// оператору POST-ом (best-effort).
	OperatorWebhookURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort: firstEnv("APP_PORT", "HTTP_PORT", "8098"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BotToken:    getEnv("BOT_TOKEN", ""),
		AdminChatID: getEnv("ADMIN_CHAT_ID", ""),

		DataDir:  getEnv("DATA_DIR", "./data"),
		Currency: getEnv("CURRENCY", "ZAR"),

		KafkaBrokers:     splitCSV(getEnv("KAFKA_BROKERS", "")),
		KafkaTopicEvents: getEnv("KAFKA_TOPIC_EVENTS", ""),

		OperatorWebhookURL: getEnv("OPERATOR_WEBHOOK_URL", ""),
	}
	cfg.Product.Name = getEnv("PRODUCT_NAME", "OSIO Focus line 14")
	cfg.Product.Price = getEnvInt("PRODUCT_PRICE", 14999)
	return cfg, nil
}

// Validate — единственное фатальное условие конфигурации: пустой BOT_TOKEN.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("config: BOT_TOKEN is required, set it in env or .env")
	}
	return nil
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
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

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
