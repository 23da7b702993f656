package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Bot:    BotConfig{Token: "123:abc"},
		Search: SearchConfig{
			APIKey:     "key",
			EngineID:   "cx",
			Timeout:    10 * time.Second,
			MaxResults: 3,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing bot token fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Bot.Token = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Token")
	})

	t.Run("missing search credentials fail", func(t *testing.T) {
		cfg := validConfig()
		cfg.Search.APIKey = ""
		cfg.Search.EngineID = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("unknown environment fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "sandbox"
		require.Error(t, cfg.Validate())
	})

	t.Run("zero timeout fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Search.Timeout = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("max results above provider limit fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Search.MaxResults = 11
		require.Error(t, cfg.Validate())
	})

	t.Run("admin id is optional", func(t *testing.T) {
		cfg := validConfig()
		cfg.Admin.UserID = 0
		require.NoError(t, cfg.Validate())
	})
}

func TestGetConfigValue(t *testing.T) {
	const envKey = "BOOKSHOOK_TEST_VALUE"

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(envKey, "from-env")
		assert.Equal(t, "from-flag", getConfigValue("from-flag", envKey, "default"))
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(envKey, "from-env")
		assert.Equal(t, "from-env", getConfigValue("", envKey, "default"))
	})

	t.Run("default when nothing set", func(t *testing.T) {
		assert.Equal(t, "default", getConfigValue("", envKey, "default"))
	})
}

func TestGetIntConfigValues(t *testing.T) {
	const envKey = "BOOKSHOOK_TEST_INT"

	t.Run("parses env value", func(t *testing.T) {
		t.Setenv(envKey, "5")
		assert.Equal(t, 5, getIntConfigValue("", envKey, 3))
	})

	t.Run("unparsable falls back to default", func(t *testing.T) {
		t.Setenv(envKey, "five")
		assert.Equal(t, 3, getIntConfigValue("", envKey, 3))
	})

	t.Run("int64 admin id", func(t *testing.T) {
		t.Setenv(envKey, "9999999999")
		assert.Equal(t, int64(9999999999), getInt64ConfigValue("", envKey, 0))
	})
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	content := "# comment line\n\nBOOKSHOOK_FILE_A=plain\nBOOKSHOOK_FILE_B=\"quoted\"\nBOOKSHOOK_FILE_C=already-set\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BOOKSHOOK_FILE_A", "")
	t.Setenv("BOOKSHOOK_FILE_B", "")
	t.Setenv("BOOKSHOOK_FILE_C", "from-env")

	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "plain", os.Getenv("BOOKSHOOK_FILE_A"))
	assert.Equal(t, "quoted", os.Getenv("BOOKSHOOK_FILE_B"))
	// Real environment wins over the file.
	assert.Equal(t, "from-env", os.Getenv("BOOKSHOOK_FILE_C"))
}

func TestLoadEnvFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOT A PAIR\n"), 0o600))

	require.Error(t, loadEnvFile(path))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	require.Error(t, loadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
}
