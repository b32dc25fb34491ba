package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	Addr          string
	BaseURL       string
	AdminPassword string
	SessionTTL    time.Duration

	// Optional collaborators, enabled when the matching env var is set.
	RedisAddr   string
	KafkaBroker string
	KafkaTopic  string
}

func Load() Config {
	cfg := Config{
		Addr:          getenv("LISTEN_ADDR", ":8080"),
		BaseURL:       getenv("BASE_URL", "http://localhost:8080"),
		AdminPassword: getenv("ADMIN_PASSWORD", "jedzenie"),
		SessionTTL:    24 * time.Hour,
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getenv("KAFKA_TOPIC", "orders"),
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getenv("REDIS_PORT", "6379")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
