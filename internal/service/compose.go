package service

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/user/cinego/internal/model"
)

// Greetings CineBot can open with. The reply is a uniform pick from this
// set, the only non-deterministic path in the bot.
var greetingReplies = []string{
	"Hey there! Looking for something great to watch?",
	"Hello! I'm CineBot. Ask me for a movie anytime.",
	"Hi! Ready to find your next favorite film?",
	"Welcome back! What are we watching today?",
}

const helpReply = "I can help you with:\n" +
	"- Recommendations: \"recommend a horror movie\"\n" +
	"- Mood picks: \"I'm feeling sad\"\n" +
	"- Watch time: \"how long have I watched today?\"\n" +
	"Just type what you need!"

const generalReply = "I'm CineBot, your movie companion. Ask me to recommend " +
	"something, tell me your mood, or check your watch time. Type \"help\" to see everything I can do."

const noMatchesReply = "I couldn't find any titles matching that. Try another genre or just ask me to recommend something!"

const watchTimeCheerReply = "Enjoy your viewing!"

// Composer renders the final reply. It is pure string assembly: every
// result it interpolates has already been computed upstream.
type Composer struct {
	rng *rand.Rand
}

// NewComposer builds a composer around a randomness source. Tests pass a
// seeded source for exact-match assertions.
func NewComposer(rng *rand.Rand) *Composer {
	return &Composer{rng: rng}
}

// Greeting picks one of the fixed greeting strings.
func (c *Composer) Greeting() string {
	return greetingReplies[c.rng.Intn(len(greetingReplies))]
}

// Help returns the fixed help text.
func (c *Composer) Help() string {
	return helpReply
}

// General returns the fixed self-introduction fallback.
func (c *Composer) General() string {
	return generalReply
}

// WatchTime renders the hours/minutes breakdown of today's total, with
// the advisory appended when one fired.
func (c *Composer) WatchTime(totalMinutes int, advisory string) string {
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	var b strings.Builder
	switch {
	case totalMinutes == 0:
		b.WriteString("You haven't watched anything today yet.")
	case hours == 0:
		fmt.Fprintf(&b, "You've watched %d minutes today.", minutes)
	case minutes == 0:
		fmt.Fprintf(&b, "You've watched %d hours today.", hours)
	default:
		fmt.Fprintf(&b, "You've watched %d hours and %d minutes today.", hours, minutes)
	}

	if advisory != "" {
		b.WriteString(" ")
		b.WriteString(advisory)
	} else {
		b.WriteString(" ")
		b.WriteString(watchTimeCheerReply)
	}
	return b.String()
}

// Recommendations renders the ranked title list. The header depends on
// which extraction succeeded: genre beats mood beats generic. An empty
// list yields the fixed no-matches reply.
func (c *Composer) Recommendations(genre, mood string, movies []model.Movie) string {
	if len(movies) == 0 {
		return noMatchesReply
	}

	var b strings.Builder
	switch {
	case genre != "":
		fmt.Fprintf(&b, "Here are my top %s picks for you:\n", genre)
	case mood != "":
		fmt.Fprintf(&b, "Feeling %s? These should hit the spot:\n", mood)
	default:
		b.WriteString("Here's what I'd watch right now:\n")
	}

	for i, m := range movies {
		fmt.Fprintf(&b, "%d. %s (%d) - %.1f/10\n   %s\n", i+1, m.Title, m.Year, m.Rating, m.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
