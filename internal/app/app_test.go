package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allmart/backoffice/internal/config"
	"github.com/allmart/backoffice/internal/domain/model"
	testhelpers "github.com/allmart/backoffice/internal/test"
	"github.com/allmart/backoffice/internal/worker"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	server := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: ":7171"},
		Router: engine,
	})
	if server.Addr != ":7171" {
		t.Fatalf("unexpected addr %q", server.Addr)
	}
	if server.Handler == nil {
		t.Fatal("handler not wired")
	}
}

func TestNewOrderNotifierWithoutWebhook(t *testing.T) {
	notifier := newOrderNotifier(notifierParams{
		Facade:  &BackofficeFacade{},
		Webhook: nil,
		Config:  &config.Config{},
		Logger:  testLogger(),
	})
	if notifier != nil {
		t.Fatal("notifier must be nil without a webhook")
	}
}

func TestRegisterLifecycle(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr := listener.Addr().String()
	if err := listener.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recorder := &testhelpers.LifecycleRecorder{}
	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     testLogger(),
		Server:     server,
		Notifier:   nil,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one lifecycle hook, got %d", len(recorder.Hooks))
	}
	hook := recorder.Hooks[0]

	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			conn.Close()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterLifecycleNotifierOutlivesStartDeadline(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr := listener.Addr().String()
	if err := listener.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	startDeadline := time.Now().Add(20 * time.Millisecond)
	var released atomic.Bool
	source := &testhelpers.NotifierSourceStub{
		OrdersFn: func(ctx context.Context, limit int) ([]model.Order, error) {
			if time.Now().Before(startDeadline) || !released.CompareAndSwap(false, true) {
				return nil, nil
			}
			return []model.Order{testhelpers.SampleOrder("ord-late", time.Now())}, nil
		},
	}
	sender := &testhelpers.SenderStub{}
	notifier := worker.NewOrderNotifier(source, sender, 5*time.Millisecond, 1, 1, testLogger())

	recorder := &testhelpers.LifecycleRecorder{}
	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     testLogger(),
		Server:     server,
		Notifier:   notifier,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	startCtx, cancel := context.WithDeadline(context.Background(), startDeadline)
	defer cancel()
	if err := recorder.Hooks[0].OnStart(startCtx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notified := false
	waitUntil := time.Now().Add(2 * time.Second)
	for time.Now().Before(waitUntil) {
		source.Lock()
		notified = len(source.Notified) > 0
		source.Unlock()
		if notified {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !notified {
		t.Fatal("notifier must keep polling after the start deadline expires")
	}

	if err := recorder.Hooks[0].OnStop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterLifecycleReportsListenFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer occupied.Close()

	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: occupied.Addr().String(), Handler: http.NotFoundHandler()}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testLogger(),
		Server:     server,
		Notifier:   nil,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(2 * time.Second):
		t.Fatal("listen failure must trigger shutdown")
	}
}
