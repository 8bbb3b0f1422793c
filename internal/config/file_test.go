package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dircast/dircast/internal/logger"
	"github.com/dircast/dircast/internal/mock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// writeTempYAMLConfig writes content to a temp config file and returns its path.
func writeTempYAMLConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ── OpenStore ─────────────────────────────────────────────────────────────────

// TestOpenStore_MissingFile verifies that a missing file is reported as an
// open error naming the path.
func TestOpenStore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	store, err := OpenStore(path)
	assert.Nil(t, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

// TestOpenStore_MalformedFile verifies that a syntax error is reported as an
// open error rather than an empty store.
func TestOpenStore_MalformedFile(t *testing.T) {
	path := writeTempYAMLConfig(t, "port: [unterminated\nmode")

	store, err := OpenStore(path)
	assert.Nil(t, store)
	assert.Error(t, err)
}

// TestOpenStore_Lookups verifies present/absent reporting for both value types.
func TestOpenStore_Lookups(t *testing.T) {
	path := writeTempYAMLConfig(t, "port: 8080\nmode: process\n")

	store, err := OpenStore(path)
	require.NoError(t, err)

	port, ok := store.Int("port")
	assert.True(t, ok)
	assert.Equal(t, int64(8080), port)

	mode, ok := store.Str("mode")
	assert.True(t, ok)
	assert.Equal(t, "process", mode)

	_, ok = store.Str("root_dir")
	assert.False(t, ok)

	_, ok = store.Int("root_dir")
	assert.False(t, ok)
}

// TestOpenStore_IntRejectsNonIntegers verifies that a present value of the
// wrong type is reported as absent rather than coerced to 0.
func TestOpenStore_IntRejectsNonIntegers(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "plain string", yaml: "port: abc\n"},
		{name: "float", yaml: "port: 80.5\n"},
		{name: "quoted number", yaml: "port: \"8080\"\n"},
		{name: "list", yaml: "port: [80]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := OpenStore(writeTempYAMLConfig(t, tt.yaml))
			require.NoError(t, err)

			v, ok := store.Int("port")
			assert.False(t, ok)
			assert.Zero(t, v)
		})
	}
}

// ── ApplyFileConfig ───────────────────────────────────────────────────────────

// TestApplyFileConfig_AllFieldsValid verifies that every recognized key
// overrides its field when the value validates.
func TestApplyFileConfig_AllFieldsValid(t *testing.T) {
	rootDir := t.TempDir()
	path := writeTempYAMLConfig(t,
		"port: 8080\nmode: Process\nroot_dir: "+rootDir+"\nindex_page: /home.html\nnot_found_page: /missing.html\n")
	store, err := OpenStore(path)
	require.NoError(t, err)

	cfg := NewDefaultConfig()
	ApplyFileConfig(cfg, store)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ModeProcess, cfg.Mode)
	assert.Equal(t, rootDir, cfg.RootDir)
	assert.Equal(t, "/home.html", cfg.IndexPage)
	assert.Equal(t, "/missing.html", cfg.NotFoundPage)
}

// TestApplyFileConfig_InvalidCandidatesDiscarded verifies that invalid port,
// mode, and root_dir values leave the prior values untouched.
func TestApplyFileConfig_InvalidCandidatesDiscarded(t *testing.T) {
	path := writeTempYAMLConfig(t,
		"port: 999999\nmode: x\nroot_dir: /does/not/exist\n")
	store, err := OpenStore(path)
	require.NoError(t, err)

	cfg := NewDefaultConfig()
	ApplyFileConfig(cfg, store)

	assert.Equal(t, 80, cfg.Port)
	assert.Equal(t, ModeThread, cfg.Mode)
	assert.Equal(t, "../server_directory", cfg.RootDir)
}

// TestApplyFileConfig_NonIntegerPortDiscarded verifies that a malformed port
// value in the file never reaches the config — in particular it must not be
// coerced to 0, which would pass the range check.
func TestApplyFileConfig_NonIntegerPortDiscarded(t *testing.T) {
	for _, raw := range []string{"port: abc\n", "port: 80.5\n", "port: \"8080\"\n"} {
		store, err := OpenStore(writeTempYAMLConfig(t, raw))
		require.NoError(t, err)

		cfg := NewDefaultConfig()
		ApplyFileConfig(cfg, store)

		assert.Equal(t, 80, cfg.Port, "raw value %q must keep the prior port", raw)
	}
}

// TestApplyFileConfig_LegacyKeys verifies that the nested legacy spellings
// are honored when the flat keys are absent.
func TestApplyFileConfig_LegacyKeys(t *testing.T) {
	rootDir := t.TempDir()
	path := writeTempYAMLConfig(t,
		"directories:\n  root: "+rootDir+"\npages:\n  index: /legacy.html\n  not_found: /legacy404.html\n")
	store, err := OpenStore(path)
	require.NoError(t, err)

	cfg := NewDefaultConfig()
	ApplyFileConfig(cfg, store)

	assert.Equal(t, rootDir, cfg.RootDir)
	assert.Equal(t, "/legacy.html", cfg.IndexPage)
	assert.Equal(t, "/legacy404.html", cfg.NotFoundPage)
}

// TestApplyFileConfig_EmptyPageIgnored verifies that an empty page value
// counts as absent.
func TestApplyFileConfig_EmptyPageIgnored(t *testing.T) {
	path := writeTempYAMLConfig(t, "index_page: \"\"\n")
	store, err := OpenStore(path)
	require.NoError(t, err)

	cfg := NewDefaultConfig()
	ApplyFileConfig(cfg, store)

	assert.Equal(t, "/index.html", cfg.IndexPage)
}

// TestApplyFileConfig_AbsentKeysTouchNothing verifies, against a mock store,
// that a store with no recognized keys leaves every field alone.
func TestApplyFileConfig_AbsentKeysTouchNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	store.EXPECT().Int(KeyPort).Return(int64(0), false)
	store.EXPECT().Str(KeyMode).Return("", false)
	store.EXPECT().Str(KeyRootDir).Return("", false)
	store.EXPECT().Str("directories.root").Return("", false)
	store.EXPECT().Str(KeyIndexPage).Return("", false)
	store.EXPECT().Str("pages.index").Return("", false)
	store.EXPECT().Str(KeyNotFoundPage).Return("", false)
	store.EXPECT().Str("pages.not_found").Return("", false)

	cfg := NewDefaultConfig()
	ApplyFileConfig(cfg, store)

	assert.Equal(t, NewDefaultConfig(), cfg)
}

// TestApplyFileConfig_FlatKeyShadowsLegacy verifies that the legacy spelling
// is never consulted once the flat key is present.
func TestApplyFileConfig_FlatKeyShadowsLegacy(t *testing.T) {
	rootDir := t.TempDir()
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	store.EXPECT().Int(KeyPort).Return(int64(0), false)
	store.EXPECT().Str(KeyMode).Return("", false)
	store.EXPECT().Str(KeyRootDir).Return(rootDir, true)
	store.EXPECT().Str(KeyIndexPage).Return("/a.html", true)
	store.EXPECT().Str(KeyNotFoundPage).Return("/b.html", true)

	cfg := NewDefaultConfig()
	ApplyFileConfig(cfg, store)

	assert.Equal(t, rootDir, cfg.RootDir)
	assert.Equal(t, "/a.html", cfg.IndexPage)
	assert.Equal(t, "/b.html", cfg.NotFoundPage)
}

// ── ApplyFilePathConfig ───────────────────────────────────────────────────────

// TestApplyFilePathConfig_MissingFileNonFatal verifies that a missing config
// file leaves cfg untouched and does not fail the caller.
func TestApplyFilePathConfig_MissingFileNonFatal(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFilePathConfig(cfg, filepath.Join(t.TempDir(), "nope.yaml"), logger.Nop())

	assert.Equal(t, NewDefaultConfig(), cfg)
}

// TestApplyFilePathConfig_AppliesStore verifies the happy path through the
// file open.
func TestApplyFilePathConfig_AppliesStore(t *testing.T) {
	path := writeTempYAMLConfig(t, "port: 9090\n")

	cfg := NewDefaultConfig()
	ApplyFilePathConfig(cfg, path, logger.Nop())

	assert.Equal(t, 9090, cfg.Port)
}
