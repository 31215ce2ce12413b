package notify

import (
	"context"
	"errors"
)

// Multi は複数の送信先（メール＋トースト等）へ順番に流す。
// どれかが失敗しても残りには送る。
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop は何もしない送信先。
type Nop struct{}

func (Nop) Notify(ctx context.Context, n Notification) error { return nil }
