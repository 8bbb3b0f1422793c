package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── argScanner ────────────────────────────────────────────────────────────────

// TestArgScanner_Next verifies option extraction: only --name=value pairs are
// yielded, everything else is skipped.
func TestArgScanner_Next(t *testing.T) {
	s := &argScanner{args: []string{
		"positional", "--port=8080", "--bare", "-short=1", "--mode=p", "--=x",
	}}

	name, value, ok := s.next()
	assert.True(t, ok)
	assert.Equal(t, "port", name)
	assert.Equal(t, "8080", value)

	name, value, ok = s.next()
	assert.True(t, ok)
	assert.Equal(t, "mode", name)
	assert.Equal(t, "p", value)

	_, _, ok = s.next()
	assert.False(t, ok)
}

// ── ApplyCmdLineConfig ────────────────────────────────────────────────────────

// TestApplyCmdLineConfig verifies option recognition and validation gating
// across a range of argument vectors.
func TestApplyCmdLineConfig(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPort int
		wantMode Mode
	}{
		{
			name:     "valid port",
			args:     []string{"--port=8080"},
			wantPort: 8080,
			wantMode: ModeThread,
		},
		{
			name:     "port exceeds max",
			args:     []string{"--port=999999"},
			wantPort: 80,
			wantMode: ModeThread,
		},
		{
			name:     "port not an integer",
			args:     []string{"--port=abc"},
			wantPort: 80,
			wantMode: ModeThread,
		},
		{
			name:     "port with trailing garbage",
			args:     []string{"--port=8080x"},
			wantPort: 80,
			wantMode: ModeThread,
		},
		{
			name:     "mode single letter",
			args:     []string{"--mode=p"},
			wantPort: 80,
			wantMode: ModeProcess,
		},
		{
			name:     "mode invalid letter",
			args:     []string{"--mode=x"},
			wantPort: 80,
			wantMode: ModeThread,
		},
		{
			name:     "bare option ignored",
			args:     []string{"--port", "8080"},
			wantPort: 80,
			wantMode: ModeThread,
		},
		{
			name:     "unknown options ignored",
			args:     []string{"--verbose=1", "--port=8081", "--color=auto"},
			wantPort: 8081,
			wantMode: ModeThread,
		},
		{
			name:     "last valid occurrence wins",
			args:     []string{"--port=8080", "--port=9090"},
			wantPort: 9090,
			wantMode: ModeThread,
		},
		{
			name:     "invalid occurrence keeps earlier valid one",
			args:     []string{"--port=8080", "--port=abc"},
			wantPort: 8080,
			wantMode: ModeThread,
		},
		{
			name:     "empty args",
			args:     nil,
			wantPort: 80,
			wantMode: ModeThread,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			ApplyCmdLineConfig(cfg, tt.args)

			assert.Equal(t, tt.wantPort, cfg.Port)
			assert.Equal(t, tt.wantMode, cfg.Mode)
		})
	}
}

// TestApplyCmdLineConfig_PageFields verifies that the two page options apply
// without content validation but ignore empty values.
func TestApplyCmdLineConfig_PageFields(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyCmdLineConfig(cfg, []string{"--index-page=/home.html", "--not-found-page="})

	assert.Equal(t, "/home.html", cfg.IndexPage)
	assert.Equal(t, "/404.html", cfg.NotFoundPage)
}

// TestApplyCmdLineConfig_RootDirValidated verifies that a non-directory root
// candidate is discarded while an existing one is applied.
func TestApplyCmdLineConfig_RootDirValidated(t *testing.T) {
	rootDir := t.TempDir()

	cfg := NewDefaultConfig()
	ApplyCmdLineConfig(cfg, []string{"--root-dir=" + rootDir})
	assert.Equal(t, rootDir, cfg.RootDir)

	cfg = NewDefaultConfig()
	ApplyCmdLineConfig(cfg, []string{"--root-dir=/does/not/exist"})
	assert.Equal(t, "../server_directory", cfg.RootDir)
}

// TestApplyCmdLineConfig_Restartable verifies that repeated invocations with
// the same argument vector produce the same result — the scan position is
// per-call, not hidden package state.
func TestApplyCmdLineConfig_Restartable(t *testing.T) {
	args := []string{"--port=8080", "--mode=p"}

	first := NewDefaultConfig()
	ApplyCmdLineConfig(first, args)

	second := NewDefaultConfig()
	ApplyCmdLineConfig(second, args)

	assert.Equal(t, first, second)
	assert.Equal(t, 8080, second.Port)
	assert.Equal(t, ModeProcess, second.Mode)
}
