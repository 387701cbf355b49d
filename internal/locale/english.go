package locale

import "github.com/rbright/suno/internal/intent"

var english = Pack{
	Code:      "en",
	WakeWords: []string{"suno", "hey suno"},
	Intents: intent.Lexicon{
		intent.GetName:       {{"what is my name", "what's my name"}},
		intent.SetName:       {{"my name is"}},
		intent.TeamName:      {{"team"}},
		intent.Calculate:     {{"calculate", "calculator"}},
		intent.Time:          {{"what time", "the time", "time is it"}},
		intent.Date:          {{"what date", "the date", "today's date", "what day"}},
		intent.Greeting:      {{"hello", "namaste"}},
		intent.Status:        {{"how are you"}},
		intent.About:         {{"who are you"}},
		intent.Joke:          {{"joke"}},
		intent.Thanks:        {{"thank"}},
		intent.Help:          {{"help"}},
		intent.LightOn:       {{"light"}, {"turn on", "switch on", " on"}},
		intent.LightOff:      {{"light"}, {"turn off", "switch off", " off"}},
		intent.NetworkStatus: {{"network", "wifi"}},
		intent.SystemStatus:  {{"system status"}},
		intent.Exit:          {{"goodbye", "stop", "bye"}},
	},
	Numbers: numberWords(
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
		"twenty one", "twenty two", "twenty three", "twenty four", "twenty five",
		"twenty six", "twenty seven", "twenty eight", "twenty nine", "thirty",
		"thirty one", "thirty two", "thirty three", "thirty four", "thirty five",
		"thirty six", "thirty seven", "thirty eight", "thirty nine", "forty",
		"forty one", "forty two", "forty three", "forty four", "forty five",
		"forty six", "forty seven", "forty eight", "forty nine", "fifty",
	),
	Operators: map[intent.Operator][]string{
		intent.OpAdd:      {"add", "plus"},
		intent.OpSubtract: {"subtract", "minus"},
		intent.OpMultiply: {"multiply", "times"},
		intent.OpDivide:   {"divide"},
		intent.OpModulo:   {"modulo", "mod", "remainder"},
	},
	Jokes: []Joke{
		{Prompt: "why did the computer go to the doctor", Answer: "because it caught a virus"},
		{Prompt: "why do programmers like coffee", Answer: "because it helps them debug"},
	},
	NameIndex:     3,
	NameMinTokens: 4,
	Phrases: Phrases{
		GreetMorning:   "good morning",
		GreetAfternoon: "good afternoon",
		GreetEvening:   "good evening",
		GreetGeneric:   "hello",
		WakeFormat:     "%s %s, go ahead",

		TimeFormat:      "the time is %d hours %d minutes %d seconds",
		TimeUnavailable: "i could not read the time",
		DateFormat:      "today's date is %d-%d-%d",
		DateUnavailable: "i could not read the date",

		TeamFormat:        "our team is called %s",
		NameSetFormat:     "okay, your name is now %s",
		NameSaveFailed:    "your name is now %s, but i could not save it",
		NameNotUnderstood: "i did not understand the name",
		NameFormat:        "your name is %s",
		HelloFormat:       "hello %s",
		Status:            "i am fine, thank you",
		About:             "i am your offline voice assistant",
		Thanks:            "you are welcome",
		Help:              "you can ask for the time, the date, light control, your name, the team name, system status, a joke or a calculation",

		CalcFirst:        "tell me the first number",
		CalcSecond:       "tell me the second number",
		CalcOperator:     "which operation should i do",
		CalcNeedNumber:   "i did not catch a number, please say it again",
		CalcUnknownOp:    "operation not understood",
		CalcDivideZero:   "cannot divide by zero",
		CalcAnswerFormat: "the answer is %s",

		JokeReveal: "nice try, here is the answer",

		LightOn:     "the light is on",
		LightOff:    "the light is off",
		LightFailed: "i could not switch the light",

		NetworkUpFormat:  "the network is connected on %s",
		NetworkDown:      "the network is not connected",
		NetworkFailed:    "i could not read the network state",
		SystemFormat:     "the system has been up for %d minutes with load %.1f",
		SystemTempFormat: "the system has been up for %d minutes with load %.1f at %d degrees",
		SystemFailed:     "i could not read the system state",

		Goodbye:       "okay, going to sleep",
		NotUnderstood: "i did not understand",
	},
}
