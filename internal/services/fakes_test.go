package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
)

// sentMail хранит одно отправленное тестовым транспортом письмо.
type sentMail struct {
	to      string
	subject string
	body    string
}

// fakeTransport - почтовый транспорт для тестов: складывает письма в память
// и умеет имитировать отказ доставки для отдельных адресов.
type fakeTransport struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]bool
}

func (t *fakeTransport) Send(to, subject, body string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failFor[to] {
		return fmt.Errorf("smtp rcpt to: mailbox unavailable")
	}
	t.sent = append(t.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (t *fakeTransport) sentMails() []sentMail {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]sentMail, len(t.sent))
	copy(out, t.sent)
	return out
}

// fakeProcessor - платежный провайдер для тестов.
type fakeProcessor struct {
	url   string
	err   error
	calls int32
}

func (p *fakeProcessor) CreateCheckoutSession(_ context.Context, _ int64, _, _, _ string) (string, error) {
	atomic.AddInt32(&p.calls, 1)
	if p.err != nil {
		return "", p.err
	}
	return p.url, nil
}

func (p *fakeProcessor) sessionCalls() int32 {
	return atomic.LoadInt32(&p.calls)
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
