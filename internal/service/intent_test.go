package service

import (
	"testing"
)

func TestClassifyGreeting(t *testing.T) {
	cases := []string{
		"hello",
		"Hi there!",
		"hey, how are you",
		"Good morning",
		"howdy partner",
	}
	for _, msg := range cases {
		if got := Classify(msg); got != IntentGreeting {
			t.Errorf("Classify(%q) = %s, want greeting", msg, got)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Greeting outranks everything.
	if got := Classify("hi, recommend something"); got != IntentGreeting {
		t.Errorf("greeting should outrank recommend, got %s", got)
	}

	// Recommend outranks watch_time.
	if got := Classify("recommend something based on my watch time"); got != IntentRecommend {
		t.Errorf("recommend should outrank watch_time, got %s", got)
	}

	// Mood outranks watch_time.
	if got := Classify("I feel like I watched too much today"); got != IntentMood {
		t.Errorf("mood should outrank watch_time, got %s", got)
	}

	// Watch_time outranks help.
	if got := Classify("help me check my watch time"); got != IntentWatchTime {
		t.Errorf("watch_time should outrank help, got %s", got)
	}
}

func TestClassifyEachIntent(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"suggest a movie for tonight", IntentRecommend},
		{"what should i watch?", IntentRecommend},
		{"I'm in the mood for something fun", IntentMood},
		{"how long have I watched today", IntentWatchTime},
		{"show my screen time", IntentWatchTime},
		{"help", IntentHelp},
		{"what can you do?", IntentHelp},
		{"tell me about the weather", IntentGeneral},
		{"", IntentGeneral},
		{"asdfghjkl", IntentGeneral},
	}
	for _, tc := range cases {
		if got := Classify(tc.message); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.message, got, tc.want)
		}
	}
}

func TestClassifyWordBoundaries(t *testing.T) {
	// "hi" must not fire inside "this".
	if got := Classify("this movie was long"); got == IntentGreeting {
		t.Error("'this' should not match the greeting keyword 'hi'")
	}
}

func TestClassifyIsTotal(t *testing.T) {
	inputs := []string{"", " ", "\n", "!!!", "12345", "ñañaña"}
	for _, msg := range inputs {
		// Must not panic and must return a member of the intent set.
		got := Classify(msg)
		switch got {
		case IntentGreeting, IntentRecommend, IntentMood, IntentWatchTime, IntentHelp, IntentGeneral:
		default:
			t.Errorf("Classify(%q) returned unknown intent %q", msg, got)
		}
	}
}
