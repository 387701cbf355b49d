package config

import (
	"fmt"
	"strings"
	"unicode"
)

// argvScanner splits a command line the way a POSIX shell would for plain
// words: single or double quotes group, a backslash takes the next rune
// literally, and no expansion happens.
type argvScanner struct {
	words []string
	word  strings.Builder
	quote rune
	// escaped means the previous rune was an unconsumed backslash.
	escaped bool
}

func (s *argvScanner) feed(r rune) {
	switch {
	case s.escaped:
		s.escaped = false
		s.word.WriteRune(r)
	case r == '\\':
		s.escaped = true
	case s.quote == r:
		s.quote = 0
	case s.quote != 0:
		s.word.WriteRune(r)
	case r == '"' || r == '\'':
		s.quote = r
	case unicode.IsSpace(r):
		s.endWord()
	default:
		s.word.WriteRune(r)
	}
}

func (s *argvScanner) endWord() {
	if s.word.Len() > 0 {
		s.words = append(s.words, s.word.String())
		s.word.Reset()
	}
}

// parseArgv splits a config command string. Blank and #-prefixed input
// yields no argv.
func parseArgv(input string) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" || input[0] == '#' {
		return nil, nil
	}

	var s argvScanner
	for _, r := range input {
		s.feed(r)
	}
	switch {
	case s.escaped:
		return nil, fmt.Errorf("unterminated escape sequence in command: %q", input)
	case s.quote != 0:
		return nil, fmt.Errorf("unterminated quote in command: %q", input)
	}
	s.endWord()
	return s.words, nil
}

func mustParseArgv(input string) []string {
	argv, err := parseArgv(input)
	if err != nil {
		panic(err)
	}
	return argv
}
