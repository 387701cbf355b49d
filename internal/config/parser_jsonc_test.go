package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeJSONC(t *testing.T) {
	tests := map[string]struct {
		in, want string
	}{
		"trailing comma in object":     {`{"a":1,}`, `{"a":1 }`},
		"nested trailing commas":       {`{"a":[1,],}`, `{"a":[1 ] }`},
		"line comment keeps newline":   {"[1, // one\n2,]", "[1,       \n2 ]"},
		"comma before comment":         {"{\"a\":1, // last\n}", "{\"a\":1         \n}"},
		"block comment between values": {`{"a":"/* no */",/*c*/"b":2}`, `{"a":"/* no */",     "b":2}`},
		"block comment spans lines":    {"{/* a\n\tb */}", "{    \n\t    }"},
		"escaped quote in string":      {`{"a":"x\",//y"}`, `{"a":"x\",//y"}`},
		"comma inside string kept":     {`["a,]"]`, `["a,]"]`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := normalizeJSONC(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Len(t, got, len(tc.in))
		})
	}
}

func TestNormalizeJSONCUnterminatedBlockComment(t *testing.T) {
	_, err := normalizeJSONC(`{"light": {} /* wiring notes`)
	require.EqualError(t, err, "unterminated block comment in JSONC")
}

func TestEnsureSingleJSONValue(t *testing.T) {
	decoder := json.NewDecoder(strings.NewReader(`{"one":1}  `))
	var payload map[string]any
	require.NoError(t, decoder.Decode(&payload))
	require.NoError(t, ensureSingleJSONValue(decoder))

	decoder = json.NewDecoder(strings.NewReader(`{"one":1}{"two":2}`))
	require.NoError(t, decoder.Decode(&payload))
	require.EqualError(t, ensureSingleJSONValue(decoder), "multiple JSON values are not allowed")
}

func TestOffsetToLineCol(t *testing.T) {
	content := "{\n  \"a\": x\n}"
	for offset, want := range map[int64][2]int{
		0:   {1, 1},
		1:   {1, 1},
		3:   {2, 1},
		10:  {2, 8},
		999: {3, 1},
	} {
		line, col := offsetToLineCol(content, offset)
		require.Equal(t, want, [2]int{line, col}, "offset %d", offset)
	}
}

func TestStringListAcceptsListOrCommaString(t *testing.T) {
	var list stringList
	require.NoError(t, json.Unmarshal([]byte(`["suno","hey suno"]`), &list))
	require.Equal(t, stringList{"suno", "hey suno"}, list)

	require.NoError(t, json.Unmarshal([]byte(`" suno, , sunie "`), &list))
	require.Equal(t, stringList{"suno", "sunie"}, list)

	require.ErrorContains(t, json.Unmarshal([]byte(`42`), &list), "expected string array")
}

func TestParseJSONCErrors(t *testing.T) {
	tests := map[string]struct {
		content string
		wantErr []string
	}{
		"bad speech command": {`{"speech":{"command":"piper ' --model"}}`, []string{"invalid speech.command"}},
		"bad play command":   {`{"speech":{"play_command":"aplay \"-q"}}`, []string{"invalid speech.play_command"}},
		"unknown section":    {`{"wifi": {"ssid": "lab"}}`, []string{"unknown field"}},
		"type mismatch":      {"{\n  \"audio\": {\"capture_rate\": \"fast\"}\n}", []string{"line 2 column", "capture_rate"}},
		"two documents":      {`{"light":{}} {"light":{}}`, []string{"multiple JSON values"}},
		"unterminated":       {`{"light": {"enable": true}`, []string{"unexpected EOF"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(tc.content, Default())
			require.Error(t, err)
			for _, want := range tc.wantErr {
				require.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestParseJSONCNormalizesEnums(t *testing.T) {
	cfg, _, err := Parse(`{
  "assistant": {"locale": " EN ", "team_name": "  Team Suno  "},
  "profile": {"backend": " SQLite "},
  "rtc": {"backend": " System "},
}`, Default())
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Assistant.Locale)
	require.Equal(t, "Team Suno", cfg.Assistant.TeamName)
	require.Equal(t, ProfileSQLite, cfg.Profile.Backend)
	require.Equal(t, RTCSystem, cfg.RTC.Backend)
}

func TestParseJSONCWakeWordsWithComments(t *testing.T) {
	cfg, _, err := Parse(`{
  /* the kitchen is noisy */
  "session": {"wake_words": "suno, , hey suno",}, // trailing
}`, Default())
	require.NoError(t, err)
	require.Equal(t, []string{"suno", "hey suno"}, cfg.Session.WakeWords)
}
