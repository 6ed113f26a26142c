// Package testutil provides shared helpers for application-level tests.
package testutil

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/appweave/internal/app"
	"github.com/vk/appweave/internal/appctx"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// NewTestApp creates an app instance over a buffer-backed debug logger,
// with the given programmatic context seed and no file configuration.
func NewTestApp(t *testing.T, seed map[string]any) (*app.App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appConfig, err := app.NewConfig(app.Config{LogLevel: "debug"})
	require.NoError(t, err)

	var init appctx.Initializer
	if seed != nil {
		init = func() map[string]any { return seed }
	}
	testApp, err := app.NewApp(logBuffer, appConfig, nil, init)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("APPWEAVE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
