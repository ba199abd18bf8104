package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptominer/internal/config"
	"github.com/set-night/cryptominer/internal/middleware"
	"github.com/set-night/cryptominer/internal/repository"
	"github.com/set-night/cryptominer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiLog records the Bot API calls a test bot makes against a stub
// server, so tests can assert on what was sent to the user.
type apiLog struct {
	mu    sync.Mutex
	calls []apiCall
}

type apiCall struct {
	path string
	body string
}

func (l *apiLog) record(path, body string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, apiCall{path: path, body: body})
}

func (l *apiLog) method(name string) []apiCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []apiCall
	for _, c := range l.calls {
		if strings.HasSuffix(c.path, "/"+name) {
			out = append(out, c)
		}
	}
	return out
}

func newTestBot(t *testing.T) (*bot.Bot, *apiLog) {
	t.Helper()

	log := &apiLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		log.record(r.URL.Path, string(body))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":1,"type":"private"},"text":"ok"}}`)
	}))
	t.Cleanup(srv.Close)

	b, err := bot.New("12345:TEST", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)
	return b, log
}

func newTestHandler(t *testing.T, b *bot.Bot, cfg *config.Config) (*Handler, *repository.Memory) {
	t.Helper()

	store := repository.NewMemory()
	accounts := service.NewAccountService(store, cfg)
	mining := service.NewMiningService(store, service.ParamsFromConfig(cfg))
	h := New(Deps{
		Bot:         b,
		Cfg:         cfg,
		Accounts:    accounts,
		Mining:      mining,
		BotUsername: "testbot",
	})
	return h, store
}

func startUpdate(userID int64, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   1,
			Text: text,
			Chat: models.Chat{ID: userID},
			From: &models.User{ID: userID, FirstName: "Alice", Username: "alice"},
		},
	}
}

func TestStartWithoutAccountStillReplies(t *testing.T) {
	b, log := newTestBot(t)
	h, _ := newTestHandler(t, b, &config.Config{ReferralBonus: 0.5})

	// No account in context: the loader could not reach the store
	h.handleStart(context.Background(), b, startUpdate(5, "/start"))

	sent := log.method("sendMessage")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].body, "Database error")
}

func TestStartSendsWelcome(t *testing.T) {
	b, log := newTestBot(t)
	h, store := newTestHandler(t, b, &config.Config{ReferralBonus: 0.5})

	ctx := context.Background()
	acc, _, err := store.GetOrCreate(ctx, 5, "Alice", "alice")
	require.NoError(t, err)

	h.handleStart(middleware.WithAccount(ctx, acc), b, startUpdate(5, "/start"))

	sent := log.method("sendMessage")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].body, "Welcome")
}

func TestStartRegistersReferralPayload(t *testing.T) {
	b, _ := newTestBot(t)
	h, store := newTestHandler(t, b, &config.Config{ReferralBonus: 0.5})

	ctx := context.Background()
	_, _, err := store.GetOrCreate(ctx, 1, "Referrer", "ref")
	require.NoError(t, err)
	acc, _, err := store.GetOrCreate(ctx, 5, "Alice", "alice")
	require.NoError(t, err)

	h.handleStart(middleware.WithAccount(ctx, acc), b, startUpdate(5, "/start 1"))

	referrer, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), referrer.ReferralCount)
}
