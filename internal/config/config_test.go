package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads every section", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
http-port: "8081"
session:
  debounce-threshold: 12
  symbols: [A, B]
  player-names: [Ann, Bot]
  opponent: human
  bot-moves-first: true
  fastest-win: true
redis:
  enabled: true
  host: redis
  port: "6380"
  snapshot-ttl: 90s
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: every value is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, Session{
			DebounceThreshold: 12,
			Symbols:           []string{"A", "B"},
			PlayerNames:       []string{"Ann", "Bot"},
			Opponent:          OpponentHuman,
			BotMovesFirst:     true,
			FastestWin:        true,
		}, conf.Session)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, 90*time.Second, conf.Redis.SnapshotTTL)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Defaults fill the gaps", func(t *testing.T) {
		path := writeConfig(t, "log-level: warn\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 30, conf.Session.DebounceThreshold)
		assert.Equal(t, []string{"X", "O"}, conf.Session.Symbols)
		assert.Equal(t, []string{"Player", "Computer"}, conf.Session.PlayerNames)
		assert.Equal(t, OpponentBot, conf.Session.Opponent)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, 10*time.Minute, conf.Redis.SnapshotTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "session:\n  debounce-threshold: 12\n")
		t.Setenv("DEBOUNCE_THRESHOLD", "5")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 5, conf.Session.DebounceThreshold)
	})

	t.Run("Invalid values are rejected", func(t *testing.T) {
		tests := map[string]string{
			"threshold":      "session:\n  debounce-threshold: -1\n",
			"one symbol":     "session:\n  symbols: [X]\n",
			"same symbols":   "session:\n  symbols: [X, X]\n",
			"too many names": "session:\n  player-names: [a, b, c]\n",
			"opponent":       "session:\n  opponent: alien\n",
		}

		for name, content := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Load(writeConfig(t, content))

				require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
			})
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "session:\n  opponent: alien\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
