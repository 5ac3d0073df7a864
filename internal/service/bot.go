package service

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/user/cinego/internal/model"
)

// ChatLog is the append-only history store behind the bot.
type ChatLog interface {
	Append(userID int, message string, isBot bool, at time.Time) error
	Recent(userID, limit int) ([]model.ChatMessage, error)
}

// ChatReply is the outcome of one chat turn.
type ChatReply struct {
	Reply    string `json:"reply"`
	Intent   Intent `json:"intent"`
	Advisory string `json:"advisory,omitempty"`
}

// WatchTimeResult is the outcome of a watch-time report.
type WatchTimeResult struct {
	TodayTotal int    `json:"today_total"`
	Advisory   string `json:"advisory,omitempty"`
}

// BotService runs the CineBot pipeline: classify, extract, recommend or
// monitor, compose, persist. One inbound message runs to completion
// before the reply returns.
type BotService struct {
	chat        ChatLog
	recommender *Recommender
	monitor     *WatchTimeMonitor
	composer    *Composer
	now         func() time.Time
}

// NewBotService wires the bot onto its collaborators.
func NewBotService(chat ChatLog, recommender *Recommender, monitor *WatchTimeMonitor) *BotService {
	return &BotService{
		chat:        chat,
		recommender: recommender,
		monitor:     monitor,
		composer:    NewComposer(rand.New(rand.NewSource(time.Now().UnixNano()))),
		now:         time.Now,
	}
}

// SetComposer swaps the reply composer, used by tests to fix the seed.
func (s *BotService) SetComposer(c *Composer) {
	s.composer = c
}

// HandleChatTurn runs one full turn for a user message and persists both
// sides of the exchange. A blank message is rejected before
// classification; every non-blank message produces a reply.
func (s *BotService) HandleChatTurn(userID int, raw string) (*ChatReply, error) {
	message := strings.TrimSpace(raw)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	intent := Classify(message)

	var reply, advisory string
	switch intent {
	case IntentGreeting:
		reply = s.composer.Greeting()

	case IntentHelp:
		reply = s.composer.Help()

	case IntentRecommend, IntentMood:
		genre := ExtractGenre(message)
		mood := ExtractMood(message)
		movies, err := s.recommender.Recommend(genre, mood, DefaultRecommendLimit)
		if err != nil {
			return nil, fmt.Errorf("recommend: %w", err)
		}
		reply = s.composer.Recommendations(genre, mood, movies)

	case IntentWatchTime:
		total, err := s.monitor.TodayTotal(userID)
		if err != nil {
			return nil, fmt.Errorf("watch time total: %w", err)
		}
		advisory = AdvisoryFor(total)
		reply = s.composer.WatchTime(total, advisory)

	default:
		reply = s.composer.General()
	}

	// Persist both sides. A history failure is a failed turn, not a
	// silently successful one.
	at := s.now()
	if err := s.chat.Append(userID, message, false, at); err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}
	if err := s.chat.Append(userID, reply, true, at.Add(time.Millisecond)); err != nil {
		return nil, fmt.Errorf("append bot reply: %w", err)
	}

	return &ChatReply{Reply: reply, Intent: intent, Advisory: advisory}, nil
}

// RecordWatchTime adds minutes to today's ledger for a title and returns
// the new daily total with any advisory that now applies.
func (s *BotService) RecordWatchTime(userID, movieID, minutes int) (*WatchTimeResult, error) {
	if err := s.monitor.RecordWatch(userID, movieID, minutes); err != nil {
		return nil, err
	}

	total, err := s.monitor.TodayTotal(userID)
	if err != nil {
		return nil, err
	}

	return &WatchTimeResult{
		TodayTotal: total,
		Advisory:   AdvisoryFor(total),
	}, nil
}

// History returns the user's recent exchanges, oldest first.
func (s *BotService) History(userID, limit int) ([]model.ChatMessage, error) {
	return s.chat.Recent(userID, limit)
}
