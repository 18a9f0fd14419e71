package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/handy-tictactoe/internal/config"
	"github.com/rocketscienceinc/handy-tictactoe/internal/entity"
	"github.com/rocketscienceinc/handy-tictactoe/internal/minimax"
	"github.com/rocketscienceinc/handy-tictactoe/internal/repository"
	"github.com/rocketscienceinc/handy-tictactoe/internal/service"
	"github.com/rocketscienceinc/handy-tictactoe/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	defaults := config.Session{
		DebounceThreshold: 2,
		Symbols:           []string{"X", "O"},
		PlayerNames:       []string{"Player", "Computer"},
		Opponent:          config.OpponentBot,
	}

	bot := service.NewBotService(logger, minimax.New())
	sessions := usecase.NewSessionManager(logger, defaults, bot, repository.NewDiscardRepository())

	server := httptest.NewServer(NewRouter(logger, sessions, nil))
	t.Cleanup(server.Close)

	return server
}

func do(t *testing.T, method, url, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, data
}

func decodeSnapshot(t *testing.T, data []byte) entity.Snapshot {
	t.Helper()

	var snapshot entity.Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))

	return snapshot
}

func createSession(t *testing.T, server *httptest.Server, body string) entity.Snapshot {
	t.Helper()

	status, data := do(t, http.MethodPost, server.URL+"/sessions", body)
	require.Equal(t, http.StatusCreated, status, string(data))

	return decodeSnapshot(t, data)
}

func TestPing(t *testing.T) {
	server := newTestServer(t)

	status, data := do(t, http.MethodGet, server.URL+"/ping", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", string(data))
}

func TestSessionHandler_Create(t *testing.T) {
	t.Run("Creates a session with the defaults", func(t *testing.T) {
		server := newTestServer(t)

		snapshot := createSession(t, server, "")

		assert.NotEmpty(t, snapshot.SessionID)
		assert.Equal(t, entity.StatusOngoing, snapshot.Status)
		assert.Equal(t, "O", snapshot.Automated)
	})

	t.Run("Options override the defaults", func(t *testing.T) {
		server := newTestServer(t)

		snapshot := createSession(t, server, `{"opponent":"human","player_names":["Ann","Ben"],"symbols":["A","B"]}`)

		assert.Empty(t, snapshot.Automated)
		assert.Equal(t, map[string]string{"A": "Ann", "B": "Ben"}, snapshot.Players)
		assert.Equal(t, "Ann's Turn", snapshot.Message)
	})

	t.Run("Malformed body", func(t *testing.T) {
		server := newTestServer(t)

		status, _ := do(t, http.MethodPost, server.URL+"/sessions", "{")

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Invalid options", func(t *testing.T) {
		server := newTestServer(t)

		status, data := do(t, http.MethodPost, server.URL+"/sessions", `{"debounce_threshold":0}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, string(data), "invalid configuration")
	})
}

func TestSessionHandler_Tick(t *testing.T) {
	t.Run("Held cell is played and the bot answers", func(t *testing.T) {
		// Given: a session against the bot with threshold 2
		server := newTestServer(t)
		created := createSession(t, server, "")

		// When: the centre is held for three ticks and one more tick follows
		status, data := do(t, http.MethodPost, server.URL+"/sessions/"+created.SessionID+"/ticks", `{"signals":[4,4,4,null]}`)

		// Then: X holds the centre and O answered in the corner
		require.Equal(t, http.StatusOK, status, string(data))
		snapshot := decodeSnapshot(t, data)
		assert.Equal(t, "X", snapshot.Board[1][1])
		assert.Equal(t, "O", snapshot.Board[0][0])
		assert.Equal(t, "X", snapshot.Turn)
	})

	t.Run("Out of range cell", func(t *testing.T) {
		server := newTestServer(t)
		created := createSession(t, server, "")

		status, _ := do(t, http.MethodPost, server.URL+"/sessions/"+created.SessionID+"/ticks", `{"signals":[9]}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Too many ticks in one request", func(t *testing.T) {
		// Given: a session and a batch one tick over the limit
		server := newTestServer(t)
		created := createSession(t, server, "")
		base := server.URL + "/sessions/" + created.SessionID

		batch := func(n int) string {
			return `{"signals":[` + strings.TrimSuffix(strings.Repeat("null,", n), ",") + `]}`
		}

		// When: the oversized batch is posted
		status, data := do(t, http.MethodPost, base+"/ticks", batch(maxTicksPerRequest+1))

		// Then: it is rejected and the board is untouched
		require.Equal(t, http.StatusBadRequest, status, string(data))

		status, data = do(t, http.MethodPost, base+"/ticks", batch(maxTicksPerRequest))
		require.Equal(t, http.StatusOK, status, string(data))
		assert.Equal(t, [3][3]string{}, decodeSnapshot(t, data).Board)
	})

	t.Run("Oversized body", func(t *testing.T) {
		server := newTestServer(t)
		created := createSession(t, server, "")

		body := `{"signals":[null],"padding":"` + strings.Repeat("x", maxTickBodyBytes) + `"}`
		status, _ := do(t, http.MethodPost, server.URL+"/sessions/"+created.SessionID+"/ticks", body)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Unknown session", func(t *testing.T) {
		server := newTestServer(t)

		status, _ := do(t, http.MethodPost, server.URL+"/sessions/missing/ticks", `{"signals":[null]}`)

		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestSessionHandler_ResetAndQuit(t *testing.T) {
	server := newTestServer(t)
	created := createSession(t, server, `{"opponent":"human"}`)
	base := server.URL + "/sessions/" + created.SessionID

	// Given: X has played the corner
	status, _ := do(t, http.MethodPost, base+"/ticks", `{"signals":[0,0,0]}`)
	require.Equal(t, http.StatusOK, status)

	// When: the session is reset
	status, data := do(t, http.MethodPost, base+"/reset", "")

	// Then: the board is empty again
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, [3][3]string{}, decodeSnapshot(t, data).Board)

	// When: the session is quit
	status, data = do(t, http.MethodDelete, base, "")

	// Then: it is closed and forgotten
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.StatusQuit, decodeSnapshot(t, data).Status)

	status, _ = do(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, status)
}
