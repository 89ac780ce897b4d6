package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sarathi-app/sarathi/core"
	"github.com/sarathi-app/sarathi/core/attendance"
	"github.com/sarathi-app/sarathi/core/session"
	inmemdb "github.com/sarathi-app/sarathi/storage/database/inmem"
)

var testConf = &core.Config{
	Env:       "TEST",
	TestMode:  true,
	AppName:   "Sarathi",
	SecretKey: "test-secret",
	Server: core.ServerConfig{
		DisableReqLogs:            true,
		JWTExpirationDelta:        time.Hour,
		JWTRefreshExpirationDelta: time.Hour,
	},
}

// logEntry is one call recorded by testLogger.
type logEntry struct {
	level string
	msg   string
	args  []interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

var _ core.Logger = (*testLogger)(nil)

func (l *testLogger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *testLogger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *testLogger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *testLogger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *testLogger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *testLogger) Fatal(msg string, args ...interface{}) { l.log("fatal", msg, args) }

type testApp struct {
	server   *Server
	logger   *testLogger
	shutdown chan os.Signal
}

// newTestApp wires a fresh server around an empty register.
func newTestApp(t *testing.T, repo ...attendance.Repository) *testApp {
	t.Helper()

	translator := core.NewTranslator()
	validate := core.NewValidator(translator)

	var r attendance.Repository
	if len(repo) > 0 {
		r = repo[0]
	} else {
		db, err := inmemdb.Open()
		require.NoError(t, err)
		r = inmemdb.NewRegisterRepository(db)
	}

	view := attendance.NewView()
	attendanceSvc := attendance.NewService(r, view, validate, translator)
	require.NoError(t, attendanceSvc.Render())

	logger := new(testLogger)
	shutdown := make(chan os.Signal, 1)
	server := NewServer(testConf, shutdown, &Deps{
		Logger:        logger,
		SessionSvc:    session.NewService(validate, translator),
		AttendanceSvc: attendanceSvc,
		View:          view,
	})
	return &testApp{server: server, logger: logger, shutdown: shutdown}
}

func (app *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

func newAuthRequest(t *testing.T, method, path, token string, data ...interface{}) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if len(data) > 0 {
		require.NoError(t, json.NewEncoder(&body).Encode(data[0]))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func newRequest(t *testing.T, method, path string, data ...interface{}) *http.Request {
	return newAuthRequest(t, method, path, "", data...)
}

func getToken(t *testing.T, sess session.Session) string {
	t.Helper()

	token, err := GenerateToken(testConf, GetSessionClaims(testConf, sess))
	require.NoError(t, err)
	return token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}
