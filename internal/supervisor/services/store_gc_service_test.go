// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/collegematch/internal/config"
	"github.com/tomtom215/collegematch/internal/database"
)

type fakeCollector struct {
	mu     sync.Mutex
	calls  int
	ratios []float64
	err    error
	called chan struct{}
}

func newFakeCollector() *fakeCollector {
	return &fakeCollector{called: make(chan struct{}, 16)}
}

func (f *fakeCollector) RunGC(discardRatio float64) error {
	f.mu.Lock()
	f.calls++
	f.ratios = append(f.ratios, discardRatio)
	err := f.err
	f.mu.Unlock()

	select {
	case f.called <- struct{}{}:
	default:
	}
	return err
}

func (f *fakeCollector) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestStoreGCService_Interface(t *testing.T) {
	var _ suture.Service = (*StoreGCService)(nil)
	var _ GarbageCollector = (*database.Store)(nil)
}

func TestNewStoreGCService_DiscardRatio(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.7, 0.7},
		{0, database.DefaultGCDiscardRatio},
		{1, database.DefaultGCDiscardRatio},
		{-0.3, database.DefaultGCDiscardRatio},
	}
	for _, tt := range tests {
		svc := NewStoreGCService(newFakeCollector(), time.Minute, tt.in, zerolog.Nop())
		if svc.discardRatio != tt.want {
			t.Errorf("ratio %v: got %v, want %v", tt.in, svc.discardRatio, tt.want)
		}
	}
	if got := NewStoreGCService(newFakeCollector(), time.Minute, 0, zerolog.Nop()).String(); got != "store-gc" {
		t.Errorf("String() = %q", got)
	}
}

func TestStoreGCService_Serve(t *testing.T) {
	t.Run("runs GC on each tick", func(t *testing.T) {
		gc := newFakeCollector()
		svc := NewStoreGCService(gc, 10*time.Millisecond, 0.6, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		for i := 0; i < 2; i++ {
			select {
			case <-gc.called:
			case <-time.After(time.Second):
				t.Fatalf("GC pass %d did not run", i+1)
			}
		}
		cancel()

		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		gc.mu.Lock()
		defer gc.mu.Unlock()
		if gc.ratios[0] != 0.6 {
			t.Errorf("discard ratio = %v, want 0.6", gc.ratios[0])
		}
	})

	t.Run("transient errors keep the service running", func(t *testing.T) {
		gc := newFakeCollector()
		gc.err = errors.New("value log busy")
		svc := NewStoreGCService(gc, 10*time.Millisecond, 0, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		for i := 0; i < 2; i++ {
			select {
			case <-gc.called:
			case <-time.After(time.Second):
				t.Fatal("GC did not retry after failure")
			}
		}
		cancel()

		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("closed store stops without restart", func(t *testing.T) {
		gc := newFakeCollector()
		gc.err = database.ErrStoreClosed
		svc := NewStoreGCService(gc, 10*time.Millisecond, 0, zerolog.Nop())

		select {
		case err := <-serveAsync(context.Background(), svc):
			if !errors.Is(err, suture.ErrDoNotRestart) || !errors.Is(err, database.ErrStoreClosed) {
				t.Errorf("expected ErrDoNotRestart wrapping ErrStoreClosed, got %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("Serve did not return for a closed store")
		}
	})

	t.Run("disabled interval idles until shutdown", func(t *testing.T) {
		gc := newFakeCollector()
		svc := NewStoreGCService(gc, 0, 0, zerolog.Nop())

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected context.DeadlineExceeded, got %v", err)
		}
		if gc.Calls() != 0 {
			t.Errorf("RunGC called %d times with GC disabled", gc.Calls())
		}
	})
}

func TestStoreGCService_OnDiskStore(t *testing.T) {
	store, err := database.Open(&config.DatabaseConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	svc := NewStoreGCService(store, time.Hour, 0, zerolog.Nop())
	if err := svc.collect(); err != nil {
		t.Errorf("collect() on fresh store = %v", err)
	}
}

func serveAsync(ctx context.Context, svc suture.Service) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()
	return errCh
}
