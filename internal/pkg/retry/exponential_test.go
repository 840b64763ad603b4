package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrier_Backoff(t *testing.T) {
	r := New(Config{
		MaxRetries: 5,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2,
	}, logger.NewNopLogger())

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{"first attempt uses base delay", 0, 100 * time.Millisecond},
		{"second attempt doubles", 1, 200 * time.Millisecond},
		{"third attempt doubles again", 2, 400 * time.Millisecond},
		{"capped at max delay", 10, time.Second},
		{"negative attempt treated as first", -1, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Backoff(tt.attempt))
		})
	}
}

func TestRetrier_Execute(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		r := New(Config{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}, logger.NewNopLogger())
		calls := 0
		err := r.Execute(context.Background(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		r := New(Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}, logger.NewNopLogger())
		boom := errors.New("boom")
		calls := 0
		err := r.Execute(context.Background(), func(ctx context.Context) error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non retryable error", func(t *testing.T) {
		fatal := errors.New("fatal")
		r := New(Config{
			MaxRetries:    5,
			BaseDelay:     time.Millisecond,
			RetryableFunc: func(err error) bool { return !errors.Is(err, fatal) },
		}, logger.NewNopLogger())
		calls := 0
		err := r.Execute(context.Background(), func(ctx context.Context) error {
			calls++
			return fatal
		})
		assert.Equal(t, fatal, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		r := NewWithDefaults(logger.NewNopLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := r.Execute(ctx, func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
