package locale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/suno/internal/intent"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	pack, err := Lookup(" HI ")
	require.NoError(t, err)
	require.Equal(t, "hi", pack.Code)

	_, err = Lookup("fr")
	require.Error(t, err)
	require.Contains(t, err.Error(), "en, hi")
}

func TestPacksAreComplete(t *testing.T) {
	t.Parallel()

	for _, code := range Codes() {
		pack, err := Lookup(code)
		require.NoError(t, err)

		require.NotEmpty(t, pack.WakeWords, code)
		require.NotEmpty(t, pack.Jokes, code)
		require.Len(t, pack.Numbers, 50, code)
		require.GreaterOrEqual(t, pack.NameMinTokens, pack.NameIndex+1, code)
		for _, in := range intent.Precedence {
			require.NotEmpty(t, pack.Intents[in], "%s missing %s", code, in)
		}
		for _, op := range intent.OperatorOrder {
			require.NotEmpty(t, pack.Operators[op], "%s missing %s", code, op)
		}
		for n := 1; n <= 50; n++ {
			require.Contains(t, numberValues(pack.Numbers), n, code)
		}
	}
}

func TestHindiClassification(t *testing.T) {
	t.Parallel()

	c := hindi.Classifier()
	tests := []struct {
		text string
		want intent.Intent
	}{
		{text: "मेरा नाम क्या है", want: intent.GetName},
		{text: "टीम का नाम बताओ मेरा नाम क्या", want: intent.GetName},
		{text: "मेरा नाम राम है", want: intent.SetName},
		{text: "हमारी टीम का नाम", want: intent.TeamName},
		{text: "गणना करो", want: intent.Calculate},
		{text: "अभी समय क्या है", want: intent.Time},
		{text: "लाइट चालू करो", want: intent.LightOn},
		{text: "लाइट बंद करो", want: intent.LightOff},
		{text: "सिस्टम स्टेटस बताओ", want: intent.SystemStatus},
		{text: "अलविदा", want: intent.Exit},
		{text: "गाना सुनाओ", want: intent.Unknown},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, c.Classify(tc.text), tc.text)
	}

	n, ok := c.ParseNumber("तीन")
	require.True(t, ok)
	require.Equal(t, "3", n.String())

	n, ok = c.ParseNumber("पचास")
	require.True(t, ok)
	require.Equal(t, "50", n.String())

	op, ok := c.ParseOperator("जोड़ दो")
	require.True(t, ok)
	require.Equal(t, intent.OpAdd, op)
}

func TestEnglishClassification(t *testing.T) {
	t.Parallel()

	c := english.Classifier()
	require.Equal(t, intent.GetName, c.Classify("what is my name team"))
	require.Equal(t, intent.SetName, c.Classify("my name is ravi"))
	require.Equal(t, intent.LightOn, c.Classify("turn the light on"))
	require.Equal(t, intent.LightOff, c.Classify("switch off the light"))
	require.Equal(t, intent.Unknown, c.Classify("sing something"))

	require.Equal(t, intent.Time, c.Classify("what time is it"))
	require.Equal(t, intent.Time, c.Classify("tell me the time"))
	require.Equal(t, intent.Date, c.Classify("what is the date today"))
	require.Equal(t, intent.Date, c.Classify("what day is it"))
	require.Equal(t, intent.Unknown, c.Classify("update my settings"))
	require.Equal(t, intent.Unknown, c.Classify("sometimes i sing"))
	require.Equal(t, intent.Unknown, c.Classify("a candidate appeared"))

	for text, want := range map[string]string{
		"forty two":         "42",
		"twenty one":        "21",
		"thirty":            "30",
		"add twenty nine":   "29",
		"twenty and then 5": "20",
	} {
		n, ok := c.ParseNumber(text)
		require.True(t, ok, text)
		require.Equal(t, want, n.String(), text)
	}
}

func TestGreetingByHour(t *testing.T) {
	t.Parallel()

	require.Equal(t, "सुप्रभात", hindi.Greeting(5))
	require.Equal(t, "सुप्रभात", hindi.Greeting(11))
	require.Equal(t, "शुभ दोपहर", hindi.Greeting(12))
	require.Equal(t, "शुभ दोपहर", hindi.Greeting(16))
	require.Equal(t, "शुभ संध्या", hindi.Greeting(17))
	require.Equal(t, "शुभ संध्या", hindi.Greeting(4))
}

func TestFormatsTakeExpectedArguments(t *testing.T) {
	t.Parallel()

	for _, code := range Codes() {
		pack, err := Lookup(code)
		require.NoError(t, err)
		p := pack.Phrases

		checks := []string{
			fmt.Sprintf(p.WakeFormat, "a", "b"),
			fmt.Sprintf(p.TimeFormat, 1, 2, 3),
			fmt.Sprintf(p.DateFormat, 1, 2, 2024),
			fmt.Sprintf(p.TeamFormat, "x"),
			fmt.Sprintf(p.NameSetFormat, "x"),
			fmt.Sprintf(p.NameSaveFailed, "x"),
			fmt.Sprintf(p.NameFormat, "x"),
			fmt.Sprintf(p.HelloFormat, "x"),
			fmt.Sprintf(p.CalcAnswerFormat, "8"),
			fmt.Sprintf(p.NetworkUpFormat, "wlan0"),
			fmt.Sprintf(p.SystemFormat, 5, 0.5),
			fmt.Sprintf(p.SystemTempFormat, 5, 0.5, 40),
		}
		for _, got := range checks {
			require.NotContains(t, got, "%!", code)
		}
	}
}

func numberValues(numbers map[string]int) []int {
	values := make([]int, 0, len(numbers))
	for _, n := range numbers {
		values = append(values, n)
	}
	return values
}
