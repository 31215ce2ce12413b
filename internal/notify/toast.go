package notify

import (
	"context"
	"sync"
)

// ToastBuffer は画面表示用の直近通知をためる。UI側が取り出して消す。
type ToastBuffer struct {
	mu     sync.Mutex
	max    int
	toasts []Notification
}

func NewToastBuffer(max int) *ToastBuffer {
	if max <= 0 {
		max = 20
	}
	return &ToastBuffer{max: max}
}

func (t *ToastBuffer) Notify(ctx context.Context, n Notification) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.toasts = append(t.toasts, n)
	// 古いものから捨てる
	if len(t.toasts) > t.max {
		t.toasts = t.toasts[len(t.toasts)-t.max:]
	}
	return nil
}

// Drain はたまっている通知を返して空にする。
func (t *ToastBuffer) Drain() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.toasts
	t.toasts = nil
	return out
}
