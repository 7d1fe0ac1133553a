package eventbus

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"maidadmin/internal/domain"
)

func waitForLogs(t *testing.T, logs *observer.ObservedLogs, n int) []observer.LoggedEntry {
	t.Helper()
	require.Eventually(t, func() bool { return logs.Len() >= n }, time.Second, 5*time.Millisecond)
	return logs.All()
}

func TestLogActivityRecordsEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zapcore.DebugLevel)
	b := New(nil)
	defer b.Close()

	stop := LogActivity(b, zap.New(core))
	defer stop()

	b.Publish(SearchTermChangedEvent{Term: "role:admin"})
	b.Publish(AdminDataLoadedEvent{Users: 3, Projects: 2, Datasets: 1})
	b.Publish(AdminCreatedEvent{Username: "dominik"})
	b.Publish(ThemeChangedEvent{Theme: domain.ThemeLight})
	b.Publish(LanguageChangedEvent{Language: domain.LanguagePolish})
	b.Publish(ErrorEvent{Message: "block failed", Err: errors.New("boom")})

	entries := waitForLogs(t, logs, 6)
	require.Len(t, entries, 6)

	assert.Equal(t, "SearchTermChanged", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "role:admin", entries[0].ContextMap()["term"])

	assert.Equal(t, "AdminDataLoaded", entries[1].Message)
	assert.EqualValues(t, 3, entries[1].ContextMap()["users"])

	assert.Equal(t, "dominik", entries[2].ContextMap()["username"])
	assert.Equal(t, "light", entries[3].ContextMap()["theme"])
	assert.Equal(t, "pl", entries[4].ContextMap()["language"])
	assert.Equal(t, zapcore.WarnLevel, entries[5].Level)
	assert.Equal(t, "activity", entries[0].LoggerName)
}

func TestLogActivityStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zapcore.InfoLevel)
	b := New(nil)
	defer b.Close()

	stop := LogActivity(b, zap.New(core))
	b.Publish(UserBlockedEvent{UserID: "u2"})
	waitForLogs(t, logs, 1)

	stop()
	done := make(chan struct{})
	var once sync.Once
	b.Subscribe(EventUserUnblocked, func(DomainEvent) { once.Do(func() { close(done) }) })
	b.Publish(UserUnblockedEvent{UserID: "u2"})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	assert.Equal(t, 1, logs.Len())
}
