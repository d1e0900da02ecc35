package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	livellm "github.com/livellm/livellm-go"
)

func transientErr() error {
	return &livellm.TransportError{Provider: livellm.ProviderOpenAI, StatusCode: 503}
}

func permanentErr() error {
	return &livellm.TransportError{Provider: livellm.ProviderOpenAI, StatusCode: 401}
}

// fastConfig retries with negligible backoff delays.
func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Microsecond,
		MaxDelay:     time.Microsecond,
		Multiplier:   1,
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(transientErr()))
	assert.True(t, IsTransient(&livellm.TransportError{StatusCode: 429}))
	assert.False(t, IsTransient(permanentErr()))
	assert.False(t, IsTransient(errors.New("plain error")))
	assert.False(t, IsTransient(context.DeadlineExceeded))
}

func TestDo(t *testing.T) {
	t.Run("returns first success", func(t *testing.T) {
		calls := 0
		result, err := Do(context.Background(), fastConfig(3), func() (string, error) {
			calls++
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures up to the limit", func(t *testing.T) {
		calls := 0
		_, err := Do(context.Background(), fastConfig(3), func() (string, error) {
			calls++
			return "", transientErr()
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("recovers mid-sequence", func(t *testing.T) {
		calls := 0
		result, err := Do(context.Background(), fastConfig(3), func() (int, error) {
			calls++
			if calls < 3 {
				return 0, transientErr()
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, result)
		assert.Equal(t, 3, calls)
	})

	t.Run("fails fast on non-transient errors", func(t *testing.T) {
		calls := 0
		_, err := Do(context.Background(), fastConfig(3), func() (string, error) {
			calls++
			return "", permanentErr()
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("honors context during backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := Config{MaxAttempts: 3, InitialDelay: time.Minute, Multiplier: 1}

		calls := 0
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		_, err := Do(ctx, cfg, func() (string, error) {
			calls++
			return "", transientErr()
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 1, calls)
	})
}

func TestDoStream(t *testing.T) {
	t.Run("returns established channel", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 7
		close(ch)

		out, err := DoStream(context.Background(), fastConfig(3), func() (<-chan int, error) {
			return ch, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, <-out)
	})

	t.Run("retries connection establishment only", func(t *testing.T) {
		calls := 0
		ch := make(chan int)
		close(ch)

		out, err := DoStream(context.Background(), fastConfig(3), func() (<-chan int, error) {
			calls++
			if calls < 2 {
				return nil, transientErr()
			}
			return ch, nil
		})
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Equal(t, 2, calls)
	})
}

func TestDelay(t *testing.T) {
	t.Run("grows exponentially and caps at max", func(t *testing.T) {
		cfg := Config{
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     time.Second,
			Multiplier:   2.0,
		}
		assert.Equal(t, 100*time.Millisecond, cfg.Delay(0))
		assert.Equal(t, 200*time.Millisecond, cfg.Delay(1))
		assert.Equal(t, 400*time.Millisecond, cfg.Delay(2))
		assert.Equal(t, time.Second, cfg.Delay(10))
	})

	t.Run("jitter stays within bounds", func(t *testing.T) {
		cfg := Config{
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     time.Second,
			Multiplier:   2.0,
			Jitter:       0.1,
		}
		for i := 0; i < 20; i++ {
			d := cfg.Delay(0)
			assert.GreaterOrEqual(t, d, 90*time.Millisecond)
			assert.LessOrEqual(t, d, 110*time.Millisecond)
		}
	})

	t.Run("negative attempt is clamped", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Jitter = 0
		assert.Equal(t, cfg.InitialDelay, cfg.Delay(-1))
	})

	t.Run("zero max delay leaves backoff uncapped", func(t *testing.T) {
		cfg := Config{
			InitialDelay: 100 * time.Millisecond,
			Multiplier:   2.0,
		}
		assert.Equal(t, 100*time.Millisecond, cfg.Delay(0))
		assert.Equal(t, 400*time.Millisecond, cfg.Delay(2))
	})
}
