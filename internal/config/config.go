package config

import (
	"os"
	"time"
)

// Config 进程级配置，启动时加载一次，之后只读
type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Port        string
}

var cfg Config

// Load reads configuration from environment variables. Call once from main
// before anything touches the token secret.
func Load() {
	cfg = Config{
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=mublog port=5432 sslmode=disable TimeZone=Asia/Shanghai"),
		JWTSecret:   getEnv("JWT_SECRET", "secret_key_change_me"),
		TokenTTL:    365 * 24 * time.Hour, // 长效 token，续期策略由客户端自行处理
		Port:        getEnv("PORT", "8080"),
	}
}

func Get() Config {
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
