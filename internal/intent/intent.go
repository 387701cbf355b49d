// Package intent classifies normalized utterance text with ordered keyword rules.
package intent

import (
	"math/big"
	"strings"
)

// Intent names one dispatchable user request.
type Intent string

const (
	GetName       Intent = "GET_NAME"
	SetName       Intent = "SET_NAME"
	TeamName      Intent = "TEAM_NAME"
	Calculate     Intent = "CALCULATE"
	Time          Intent = "TIME"
	Date          Intent = "DATE"
	Greeting      Intent = "GREETING"
	Status        Intent = "STATUS"
	About         Intent = "ABOUT"
	Joke          Intent = "JOKE"
	Thanks        Intent = "THANKS"
	Help          Intent = "HELP"
	LightOn       Intent = "LIGHT_ON"
	LightOff      Intent = "LIGHT_OFF"
	NetworkStatus Intent = "NETWORK_STATUS"
	SystemStatus  Intent = "SYSTEM_STATUS"
	Exit          Intent = "EXIT"
	Unknown       Intent = "UNKNOWN"
)

// Precedence is the fixed evaluation order; earlier intents win.
var Precedence = []Intent{
	GetName,
	SetName,
	TeamName,
	Calculate,
	Time,
	Date,
	Greeting,
	Status,
	About,
	Joke,
	Thanks,
	Help,
	LightOn,
	LightOff,
	NetworkStatus,
	SystemStatus,
	Exit,
}

// Operator is one calculator operation.
type Operator string

const (
	OpAdd      Operator = "add"
	OpSubtract Operator = "subtract"
	OpMultiply Operator = "multiply"
	OpDivide   Operator = "divide"
	OpModulo   Operator = "modulo"
)

// OperatorOrder is the order operator keywords are checked in.
var OperatorOrder = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo}

// Groups is a conjunction of keyword alternatives: every group must have at
// least one word contained in the text.
type Groups [][]string

// Lexicon maps each intent to the keyword groups that select it.
type Lexicon map[Intent]Groups

// Rule is one (predicate, intent) row of the classification table.
type Rule struct {
	Intent Intent
	Match  func(text string) bool
}

// Classifier resolves intents, numbers, and operators from utterance text.
type Classifier struct {
	rules     []Rule
	numbers   map[string]int
	operators map[Operator][]string
}

// NewClassifier builds the ordered rule table from a lexicon. Intents without
// lexicon entries are skipped.
func NewClassifier(lexicon Lexicon, numbers map[string]int, operators map[Operator][]string) *Classifier {
	return &Classifier{
		rules:     Rules(lexicon),
		numbers:   numbers,
		operators: operators,
	}
}

// Rules expands a lexicon into rules following Precedence.
func Rules(lexicon Lexicon) []Rule {
	rules := make([]Rule, 0, len(Precedence))
	for _, in := range Precedence {
		groups, ok := lexicon[in]
		if !ok || len(groups) == 0 {
			continue
		}
		rules = append(rules, Rule{Intent: in, Match: AllOf(groups)})
	}
	return rules
}

// AllOf matches when every group has a contained word.
func AllOf(groups Groups) func(string) bool {
	return func(text string) bool {
		for _, group := range groups {
			if !ContainsAny(text, group) {
				return false
			}
		}
		return true
	}
}

// ContainsAny reports whether text contains any of words as a substring.
func ContainsAny(text string, words []string) bool {
	for _, word := range words {
		if word != "" && strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// Classify returns the first matching intent, or Unknown.
func (c *Classifier) Classify(text string) Intent {
	for _, rule := range c.rules {
		if rule.Match(text) {
			return rule.Intent
		}
	}
	return Unknown
}

// ParseNumber returns the first token that is all decimal digits or a
// number-word match. Digit tokens have no size limit. Number words may span
// two tokens ("twenty one"); the two-token form wins over its first word.
func (c *Classifier) ParseNumber(text string) (*big.Int, bool) {
	tokens := strings.Fields(text)
	for i, token := range tokens {
		if isDigits(token) {
			n, ok := new(big.Int).SetString(token, 10)
			return n, ok
		}
		if i+1 < len(tokens) {
			if n, ok := c.numbers[token+" "+tokens[i+1]]; ok {
				return big.NewInt(int64(n)), true
			}
		}
		if n, ok := c.numbers[token]; ok {
			return big.NewInt(int64(n)), true
		}
	}
	return nil, false
}

// ParseOperator returns the first operator whose keyword appears in text.
func (c *Classifier) ParseOperator(text string) (Operator, bool) {
	for _, op := range OperatorOrder {
		if ContainsAny(text, c.operators[op]) {
			return op, true
		}
	}
	return "", false
}

func isDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
