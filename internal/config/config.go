package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	StorageBackend string // memory / file / redis / postgres
	DataDir        string // fileバックエンドの保存先

	RedisAddr string // redisバックエンド（host:port）

	JWTSecret string // モックOTPログインのトークン署名

	AdminUsername string // 管理者ログイン
	AdminPassword string // 起動時にbcryptでハッシュ化する

	EmailServiceID  string // EmailJSのサービスID
	EmailTemplateID string // EmailJSのテンプレートID
	EmailPublicKey  string // EmailJSの公開キー
	AdminEmail      string // 通知の宛先

	PollInterval time.Duration // 管理画面の未読件数ポーリング間隔
}

// Loadは環境変数から読む。ローカルで動くよう、ほぼ全部に既定値を持つ。
func Load() (Config, error) {
	pollSeconds, err := atoiOr("POLL_INTERVAL_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		StorageBackend: getenv("STORAGE_BACKEND", "file"),
		DataDir:        getenv("DATA_DIR", "./data"),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),

		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),

		EmailServiceID:  os.Getenv("EMAIL_SERVICE_ID"),
		EmailTemplateID: os.Getenv("EMAIL_TEMPLATE_ID"),
		EmailPublicKey:  os.Getenv("EMAIL_PUBLIC_KEY"),
		AdminEmail:      getenv("ADMIN_EMAIL", "pshealthcarelab@gmail.com"),

		PollInterval: time.Duration(pollSeconds) * time.Second,
	}

	switch cfg.StorageBackend {
	case "memory", "file", "redis", "postgres":
	default:
		return Config{}, fmt.Errorf("STORAGE_BACKEND must be memory/file/redis/postgres, got %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// EmailEnabled は EmailJS の設定が揃っているとき true。
// 揃っていなければメール通知は送らない（ログとトーストだけ）。
func (c Config) EmailEnabled() bool {
	return c.EmailServiceID != "" && c.EmailTemplateID != "" && c.EmailPublicKey != ""
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
