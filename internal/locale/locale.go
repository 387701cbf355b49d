// Package locale holds the language packs spoken and understood by suno.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rbright/suno/internal/intent"
)

// Joke is one prompt/answer pair for the joke sub-dialogue.
type Joke struct {
	Prompt string
	Answer string
}

// Phrases are the response templates of one language. Fields ending in
// "Format" are fmt templates.
type Phrases struct {
	GreetMorning   string
	GreetAfternoon string
	GreetEvening   string
	GreetGeneric   string
	WakeFormat     string // greeting, name

	TimeFormat      string // hour, minute, second
	TimeUnavailable string
	DateFormat      string // day, month, year
	DateUnavailable string

	TeamFormat        string // team name
	NameSetFormat     string // name
	NameSaveFailed    string // name
	NameNotUnderstood string
	NameFormat        string // name
	HelloFormat       string // name
	Status            string
	About             string
	Thanks            string
	Help              string

	CalcFirst        string
	CalcSecond       string
	CalcOperator     string
	CalcNeedNumber   string
	CalcUnknownOp    string
	CalcDivideZero   string
	CalcAnswerFormat string // result

	JokeReveal string

	LightOn     string
	LightOff    string
	LightFailed string

	NetworkUpFormat  string // interface name
	NetworkDown      string
	NetworkFailed    string
	SystemFormat     string // uptime minutes, load
	SystemTempFormat string // uptime minutes, load, temperature
	SystemFailed     string

	Goodbye       string
	NotUnderstood string
}

// Pack bundles the vocabulary and phrasing of one language.
type Pack struct {
	Code      string
	WakeWords []string
	Intents   intent.Lexicon
	Numbers   map[string]int
	Operators map[intent.Operator][]string
	Jokes     []Joke
	Phrases   Phrases

	// NameIndex is the token position holding the name in a SET_NAME
	// utterance; NameMinTokens is the shortest accepted utterance.
	NameIndex     int
	NameMinTokens int
}

var packs = map[string]Pack{
	"hi": hindi,
	"en": english,
}

// Lookup returns the pack for a language code.
func Lookup(code string) (Pack, error) {
	pack, ok := packs[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Pack{}, fmt.Errorf("unsupported locale %q (supported: %s)", code, strings.Join(Codes(), ", "))
	}
	return pack, nil
}

// Codes lists supported language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(packs))
	for code := range packs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Classifier builds the intent classifier for this pack.
func (p Pack) Classifier() *intent.Classifier {
	return intent.NewClassifier(p.Intents, p.Numbers, p.Operators)
}

// Greeting picks the time-of-day greeting for an hour of the day.
func (p Pack) Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return p.Phrases.GreetMorning
	case hour >= 12 && hour < 17:
		return p.Phrases.GreetAfternoon
	default:
		return p.Phrases.GreetEvening
	}
}

// numberWords assigns 1..len(words) to words in order.
func numberWords(words ...string) map[string]int {
	out := make(map[string]int, len(words))
	for i, word := range words {
		out[word] = i + 1
	}
	return out
}
