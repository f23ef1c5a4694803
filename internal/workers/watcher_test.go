package workers

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/mock"
)

const (
	testWait = 5 * time.Second
	testTick = 20 * time.Millisecond
)

type countingInvalidator struct {
	calls atomic.Int32
}

func (c *countingInvalidator) Invalidate() { c.calls.Add(1) }

func runWatcher(t *testing.T, w *DirWatcher) (cancel func() error) {
	t.Helper()

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	return func() error {
		stop()
		select {
		case err := <-done:
			return err
		case <-time.After(testWait):
			t.Fatal("watcher did not stop")
			return nil
		}
	}
}

func TestDirWatcher_InvalidatesOnChange(t *testing.T) {
	dir := t.TempDir()
	resolver := &countingInvalidator{}
	manager := &countingInvalidator{}

	stop := runWatcher(t, NewDirWatcher(dir, 10*time.Millisecond, logger.Nop(), resolver, manager))

	// The watcher registers asynchronously, so keep touching the file until
	// an invalidation is observed.
	path := filepath.Join(dir, "default.json")
	assert.Eventually(t, func() bool {
		require.NoError(t, os.WriteFile(path, []byte(`{"API_URL":"x"}`), 0o600))
		return resolver.calls.Load() > 0 && manager.calls.Load() > 0
	}, testWait, 50*time.Millisecond)

	assert.NoError(t, stop())
}

func TestDirWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	target := &countingInvalidator{}

	stop := runWatcher(t, NewDirWatcher(dir, 300*time.Millisecond, logger.Nop(), target))

	path := filepath.Join(dir, "production.json")
	assert.Eventually(t, func() bool {
		for i := 0; i < 5; i++ {
			require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
		}
		time.Sleep(500 * time.Millisecond)
		return target.calls.Load() > 0
	}, testWait, testTick)

	// five writes inside one debounce window fold into a single call
	assert.Equal(t, int32(1), target.calls.Load())
	assert.NoError(t, stop())
}

func TestDirWatcher_MissingDir(t *testing.T) {
	w := NewDirWatcher(filepath.Join(t.TempDir(), "nope"), 0, logger.Nop())

	err := w.Run(context.Background())
	assert.Error(t, err)
}

func TestNewDirWatcher_DefaultDebounce(t *testing.T) {
	w := NewDirWatcher("/tmp", 0, nil)
	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestDirWatcher_InvalidatesConfigManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int32
	manager := mock.NewMockConfigManager(ctrl)
	manager.EXPECT().Invalidate().Do(func() { calls.Add(1) }).MinTimes(1)

	dir := t.TempDir()
	stop := runWatcher(t, NewDirWatcher(dir, 10*time.Millisecond, logger.Nop(), manager))

	path := filepath.Join(dir, "default.yaml")
	assert.Eventually(t, func() bool {
		require.NoError(t, os.WriteFile(path, []byte("API_URL: x\n"), 0o600))
		return calls.Load() > 0
	}, testWait, 50*time.Millisecond)

	require.NoError(t, stop())
}
