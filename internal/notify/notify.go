package notify

import (
	"context"
	"log"
	"sync"
)

// Notification はスタッフ向けのお知らせ1件。
type Notification struct {
	Subject string
	Message string
	Details map[string]string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Dispatcher は永続化が終わった後に呼ばれる投げっぱなしの送信口。
// 失敗してもログを出すだけで、呼び出し元の成功を取り消さない。再送もしない。
type Dispatcher struct {
	notifier Notifier
	wg       sync.WaitGroup
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	return &Dispatcher{notifier: notifier}
}

func (d *Dispatcher) Dispatch(n Notification) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.notifier.Notify(context.Background(), n); err != nil {
			log.Printf("notify: %s: %v", n.Subject, err)
		}
	}()
}

// Wait は送信中の通知が終わるまで待つ（終了処理とテスト用）。
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
