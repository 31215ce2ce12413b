package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pslab/internal/app"
	"pslab/internal/config"
	"pslab/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// 依頼IDはタイムスタンプ＋乱数の合成（セッション内で衝突しない）
type requestIDGenerator struct{}

func (g *requestIDGenerator) NewID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(mobile string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": mobile,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .env はあれば読む
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		panic(err)
	}

	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), accessTTL: 15 * time.Minute}

	a, err := app.New(cfg, store, &requestIDGenerator{}, &realClock{}, issuer)
	if err != nil {
		panic(err)
	}

	// 起動時にカタログの中身をひと目で分かるようにしておく
	tests, err := a.Catalog.ListVisible(ctx, model.ItemKindTest)
	if err != nil {
		panic(err)
	}
	packages, err := a.Catalog.ListVisible(ctx, model.ItemKindPackage)
	if err != nil {
		panic(err)
	}
	doctors, err := a.Doctors.List(ctx)
	if err != nil {
		panic(err)
	}
	log.Printf("pslab: storage=%s tests=%d packages=%d doctors=%d",
		cfg.StorageBackend, len(tests), len(packages), len(doctors))

	// サブヘッダーは起動時に作り直して保存しておく
	if _, err := a.RefreshSubHeader(ctx); err != nil {
		log.Printf("subheader: %v", err)
	}

	// 管理画面と同じ周期で未読件数を数え直す
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			cart, err := a.Lifecycle.UnreadCartRequestCount(ctx)
			if err != nil {
				log.Printf("poll: cart requests: %v", err)
				continue
			}
			hc, err := a.Lifecycle.UnreadHomeCollectionCount(ctx)
			if err != nil {
				log.Printf("poll: home collections: %v", err)
				continue
			}
			appts, err := a.Lifecycle.UnreadAppointmentCount(ctx)
			if err != nil {
				log.Printf("poll: appointments: %v", err)
				continue
			}
			log.Printf("unread: cart=%d home_collection=%d appointments=%d", cart, hc, appts)

			for _, toast := range a.Toasts.Drain() {
				log.Printf("toast: %s - %s", toast.Subject, toast.Message)
			}
		case <-stop:
			// 送信中の通知を流し切ってから終わる
			a.Dispatcher.Wait()
			log.Printf("pslab: bye")
			return
		}
	}
}
