package service

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func newTestBot(chat *fakeChatLog, ledger *fakeLedger) *BotService {
	catalog := &fakeCatalog{movies: testMovies()}
	bot := NewBotService(chat, NewRecommender(catalog), NewWatchTimeMonitor(ledger, catalog))
	bot.SetComposer(NewComposer(rand.New(rand.NewSource(1))))
	return bot
}

func TestHandleChatTurnEmptyInput(t *testing.T) {
	bot := newTestBot(&fakeChatLog{}, newFakeLedger())

	for _, msg := range []string{"", "   ", "\n\t"} {
		if _, err := bot.HandleChatTurn(1, msg); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("HandleChatTurn(%q): expected ErrEmptyMessage, got %v", msg, err)
		}
	}
}

func TestHandleChatTurnGreeting(t *testing.T) {
	bot := newTestBot(&fakeChatLog{}, newFakeLedger())

	reply, err := bot.HandleChatTurn(1, "hello there")
	if err != nil {
		t.Fatalf("HandleChatTurn failed: %v", err)
	}
	if reply.Intent != IntentGreeting {
		t.Errorf("expected greeting intent, got %s", reply.Intent)
	}

	found := false
	for _, g := range greetingReplies {
		if reply.Reply == g {
			found = true
		}
	}
	if !found {
		t.Errorf("greeting reply %q not in the fixed set", reply.Reply)
	}
}

func TestHandleChatTurnRecommend(t *testing.T) {
	bot := newTestBot(&fakeChatLog{}, newFakeLedger())

	reply, err := bot.HandleChatTurn(1, "recommend a horror movie")
	if err != nil {
		t.Fatalf("HandleChatTurn failed: %v", err)
	}
	if reply.Intent != IntentRecommend {
		t.Errorf("expected recommend intent, got %s", reply.Intent)
	}
	if !strings.Contains(reply.Reply, "The Forgotten") {
		t.Errorf("top horror pick missing from reply: %q", reply.Reply)
	}
}

func TestHandleChatTurnMood(t *testing.T) {
	bot := newTestBot(&fakeChatLog{}, newFakeLedger())

	reply, err := bot.HandleChatTurn(1, "I'm feeling scared tonight")
	if err != nil {
		t.Fatalf("HandleChatTurn failed: %v", err)
	}
	if reply.Intent != IntentMood {
		t.Errorf("expected mood intent, got %s", reply.Intent)
	}
	if !strings.Contains(reply.Reply, "scared") {
		t.Errorf("mood header missing: %q", reply.Reply)
	}
}

func TestHandleChatTurnNoMatches(t *testing.T) {
	chat := &fakeChatLog{}
	catalog := &fakeCatalog{} // empty catalog
	bot := NewBotService(chat, NewRecommender(catalog), NewWatchTimeMonitor(newFakeLedger(), catalog))
	bot.SetComposer(NewComposer(rand.New(rand.NewSource(1))))

	reply, err := bot.HandleChatTurn(1, "recommend a western")
	if err != nil {
		t.Fatalf("HandleChatTurn failed: %v", err)
	}
	if reply.Reply != noMatchesReply {
		t.Errorf("expected the fixed no-matches reply, got %q", reply.Reply)
	}
}

func TestHandleChatTurnWatchTime(t *testing.T) {
	ledger := newFakeLedger()
	bot := newTestBot(&fakeChatLog{}, ledger)

	// 125 minutes today lands in the 120 band.
	if _, err := bot.RecordWatchTime(1, 1, 125); err != nil {
		t.Fatalf("RecordWatchTime failed: %v", err)
	}

	reply, err := bot.HandleChatTurn(1, "how long have I watched today?")
	if err != nil {
		t.Fatalf("HandleChatTurn failed: %v", err)
	}
	if reply.Intent != IntentWatchTime {
		t.Errorf("expected watch_time intent, got %s", reply.Intent)
	}
	if !strings.Contains(reply.Reply, "2 hours and 5 minutes") {
		t.Errorf("breakdown missing: %q", reply.Reply)
	}
	if reply.Advisory == "" {
		t.Error("expected the 120-band advisory on the turn")
	}
}

func TestRecordWatchTimeTwiceSameDay(t *testing.T) {
	bot := newTestBot(&fakeChatLog{}, newFakeLedger())

	if _, err := bot.RecordWatchTime(1, 3, 30); err != nil {
		t.Fatalf("RecordWatchTime failed: %v", err)
	}
	result, err := bot.RecordWatchTime(1, 3, 30)
	if err != nil {
		t.Fatalf("RecordWatchTime failed: %v", err)
	}
	if result.TodayTotal != 60 {
		t.Errorf("expected today_total 60, got %d", result.TodayTotal)
	}
	if result.Advisory != "" {
		t.Errorf("no advisory expected at 60 minutes, got %q", result.Advisory)
	}
}

func TestRecordWatchTimeAdvisory(t *testing.T) {
	bot := newTestBot(&fakeChatLog{}, newFakeLedger())

	result, err := bot.RecordWatchTime(1, 1, 180)
	if err != nil {
		t.Fatalf("RecordWatchTime failed: %v", err)
	}
	if result.TodayTotal != 180 {
		t.Errorf("expected 180 minutes, got %d", result.TodayTotal)
	}
	if !strings.Contains(result.Advisory, "3 hours") {
		t.Errorf("expected the 180-band advisory, got %q", result.Advisory)
	}
}

func TestRecordWatchTimeUnknownMovie(t *testing.T) {
	bot := newTestBot(&fakeChatLog{}, newFakeLedger())

	if _, err := bot.RecordWatchTime(1, 999, 30); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestChatHistoryRoundTrip(t *testing.T) {
	chat := &fakeChatLog{}
	bot := newTestBot(chat, newFakeLedger())

	turns := []string{"hello", "recommend a comedy", "help"}
	for _, msg := range turns {
		if _, err := bot.HandleChatTurn(1, msg); err != nil {
			t.Fatalf("HandleChatTurn(%q) failed: %v", msg, err)
		}
	}

	history, err := bot.History(1, 50)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 6 {
		t.Fatalf("expected 6 messages (3 turns), got %d", len(history))
	}

	for i, msg := range history {
		wantBot := i%2 == 1
		if msg.IsBot != wantBot {
			t.Errorf("message %d: is_bot = %v, want %v", i, msg.IsBot, wantBot)
		}
	}
	for i, msg := range turns {
		if history[i*2].Message != msg {
			t.Errorf("user message %d out of order: got %q, want %q", i, history[i*2].Message, msg)
		}
	}
}

func TestHandleChatTurnHistoryFailure(t *testing.T) {
	chat := &fakeChatLog{err: errors.New("connection reset")}
	bot := newTestBot(chat, newFakeLedger())

	if _, err := bot.HandleChatTurn(1, "hello"); err == nil {
		t.Error("a history append failure must fail the turn")
	}
}
