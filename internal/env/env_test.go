package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Setenv("DEMO_STR", "")
	assert.Equal(t, "def", String("DEMO_STR", "def"))

	t.Setenv("DEMO_STR", "v")
	assert.Equal(t, "v", String("DEMO_STR", "def"))
}

func TestInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("DEMO_INT", "nope")
	assert.Equal(t, 7, Int("DEMO_INT", 7))

	t.Setenv("DEMO_INT", "42")
	assert.Equal(t, 42, Int("DEMO_INT", 7))
}

func TestLookupInt(t *testing.T) {
	t.Setenv("DEMO_INT", "")
	_, ok := LookupInt("DEMO_INT")
	assert.False(t, ok)

	t.Setenv("DEMO_INT", "3")
	v, ok := LookupInt("DEMO_INT")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestFloatBoolDuration(t *testing.T) {
	t.Setenv("DEMO_F", "0.5")
	t.Setenv("DEMO_B", "true")
	t.Setenv("DEMO_D", "250ms")

	assert.Equal(t, 0.5, Float("DEMO_F", 1))
	assert.True(t, Bool("DEMO_B", false))
	assert.Equal(t, 250*time.Millisecond, Duration("DEMO_D", time.Second))

	t.Setenv("DEMO_B", "maybe")
	t.Setenv("DEMO_D", "soon")
	assert.False(t, Bool("DEMO_B", false))
	assert.Equal(t, time.Second, Duration("DEMO_D", time.Second))
}

func TestAddr_DefaultsWhenPortUnset(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, ":3001", Addr("3001"))

	t.Setenv("PORT", "9000")
	assert.Equal(t, ":9000", Addr("3001"))
}

func TestLoadDotenv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, ".env.dev")
	require.NoError(t, os.WriteFile(f, []byte("DEMO_FROM_FILE=file\nDEMO_KEEP=file\n"), 0o600))

	t.Setenv("DEMO_KEEP", "env")
	t.Setenv("DEMO_FROM_FILE", "")
	os.Unsetenv("DEMO_FROM_FILE")

	require.NoError(t, LoadDotenv(f))
	t.Cleanup(func() { os.Unsetenv("DEMO_FROM_FILE") })

	assert.Equal(t, "file", os.Getenv("DEMO_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("DEMO_KEEP"))
}

func TestLoadDotenv_MissingFileIsNotError(t *testing.T) {
	assert.NoError(t, LoadDotenv(filepath.Join(t.TempDir(), "missing.env")))
}
