package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  max_tokens: 1000\n"), 0o644))

	m := NewManager(path)
	defer m.Close()
	require.NoError(t, m.Load())
	require.Equal(t, 1000, m.Get().LLM.MaxTokens)

	reloaded := make(chan *Config, 4)
	m.OnChange(func(cfg *Config) { reloaded <- cfg })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = m.Watch(ctx, nil)
	}()

	// Give the watcher a moment to arm before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  max_tokens: 2000\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 2000, cfg.LLM.MaxTokens)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded after file change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatchNoPathBlocksUntilCancel(t *testing.T) {
	m := NewManager("")
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, m.Watch(ctx, nil))
}
