package locale

import "github.com/rbright/suno/internal/intent"

var hindi = Pack{
	Code:      "hi",
	WakeWords: []string{"सुनो", "सुन", "सुनो जी"},
	Intents: intent.Lexicon{
		intent.GetName:       {{"मेरा नाम क्या"}},
		intent.SetName:       {{"मेरा नाम"}, {"है"}},
		intent.TeamName:      {{"टीम", "टीम का नाम"}},
		intent.Calculate:     {{"गणना", "कैलकुलेट"}},
		intent.Time:          {{"समय", "टाइम", "वक्त"}},
		intent.Date:          {{"तारीख", "दिनांक", "आज"}},
		intent.Greeting:      {{"नमस्ते", "हेलो"}},
		intent.Status:        {{"कैसे", "ठीक"}},
		intent.About:         {{"कौन", "तुम"}},
		intent.Joke:          {{"मजाक", "जोक"}},
		intent.Thanks:        {{"धन्यवाद", "शुक्रिया"}},
		intent.Help:          {{"मदद"}},
		intent.LightOn:       {{"लाइट"}, {"चालू", "ऑन"}},
		intent.LightOff:      {{"लाइट"}, {"बंद", "ऑफ"}},
		intent.NetworkStatus: {{"नेटवर्क", "वाईफाई"}},
		intent.SystemStatus:  {{"सिस्टम स्टेटस"}},
		intent.Exit:          {{"अलविदा", "रुको", "स्टॉप"}},
	},
	Numbers: numberWords(
		"एक", "दो", "तीन", "चार", "पाँच", "छह", "सात", "आठ", "नौ", "दस",
		"ग्यारह", "बारह", "तेरह", "चौदह", "पंद्रह", "सोलह", "सत्रह", "अठारह", "उन्नीस", "बीस",
		"इक्कीस", "बाईस", "तेईस", "चौबीस", "पच्चीस", "छब्बीस", "सत्ताईस", "अट्ठाईस", "उनतीस", "तीस",
		"इकतीस", "बत्तीस", "तैंतीस", "चौंतीस", "पैंतीस", "छत्तीस", "सैंतीस", "अड़तीस", "उनतालीस", "चालीस",
		"इकतालीस", "बयालीस", "तैंतालीस", "चवालीस", "पैंतालीस", "छियालीस", "सैंतालीस", "अड़तालीस", "उनचास", "पचास",
	),
	Operators: map[intent.Operator][]string{
		intent.OpAdd:      {"जोड़"},
		intent.OpSubtract: {"घट"},
		intent.OpMultiply: {"गुणा"},
		intent.OpDivide:   {"भाग"},
		intent.OpModulo:   {"मॉड"},
	},
	Jokes: []Joke{
		{Prompt: "कंप्यूटर डॉक्टर के पास क्यों गया", Answer: "क्योंकि उसे वायरस हो गया था"},
		{Prompt: "प्रोग्रामर को कॉफी क्यों पसंद है", Answer: "क्योंकि वह डिबग करता है"},
	},
	NameIndex:     2,
	NameMinTokens: 4,
	Phrases: Phrases{
		GreetMorning:   "सुप्रभात",
		GreetAfternoon: "शुभ दोपहर",
		GreetEvening:   "शुभ संध्या",
		GreetGeneric:   "नमस्ते",
		WakeFormat:     "%s %s, बोलिए",

		TimeFormat:      "अभी समय है %d बजकर %d मिनट %d सेकंड",
		TimeUnavailable: "समय पढ़ने में समस्या आ रही है",
		DateFormat:      "आज की तारीख है %d-%d-%d",
		DateUnavailable: "तारीख पढ़ने में समस्या आ रही है",

		TeamFormat:        "हमारी टीम का नाम %s है",
		NameSetFormat:     "ठीक है, आपका नाम %s सेट कर दिया गया है",
		NameSaveFailed:    "आपका नाम %s सेट कर दिया गया है, लेकिन सहेजा नहीं जा सका",
		NameNotUnderstood: "मैं आपका नाम समझ नहीं पाया",
		NameFormat:        "आपका नाम %s है",
		HelloFormat:       "नमस्ते %s",
		Status:            "मैं ठीक हूँ धन्यवाद",
		About:             "मैं आपका ऑफलाइन हिंदी वॉइस असिस्टेंट हूँ",
		Thanks:            "आपका स्वागत है",
		Help:              "आप समय, तारीख, लाइट कंट्रोल, नाम सेट, टीम नाम, सिस्टम स्टेटस, मजाक या गणना कर सकते हैं",

		CalcFirst:        "पहली संख्या बताइए",
		CalcSecond:       "दूसरी संख्या बताइए",
		CalcOperator:     "कौन सा ऑपरेशन करना है",
		CalcNeedNumber:   "मुझे संख्या समझ नहीं आई, फिर से बताइए",
		CalcUnknownOp:    "ऑपरेशन समझ नहीं आया",
		CalcDivideZero:   "शून्य से भाग नहीं कर सकते",
		CalcAnswerFormat: "उत्तर है %s",

		JokeReveal: "अच्छा प्रयास, सही जवाब सुनिए",

		LightOn:     "लाइट चालू कर दी गई है",
		LightOff:    "लाइट बंद कर दी गई है",
		LightFailed: "लाइट बदलने में समस्या आ रही है",

		NetworkUpFormat:  "नेटवर्क जुड़ा हुआ है, इंटरफ़ेस %s",
		NetworkDown:      "नेटवर्क जुड़ा हुआ नहीं है",
		NetworkFailed:    "नेटवर्क की जानकारी नहीं मिल पाई",
		SystemFormat:     "सिस्टम %d मिनट से चल रहा है, लोड %.1f है",
		SystemTempFormat: "सिस्टम %d मिनट से चल रहा है, लोड %.1f है, तापमान %d डिग्री है",
		SystemFailed:     "सिस्टम की जानकारी नहीं मिल पाई",

		Goodbye:       "ठीक है, मैं सो रहा हूँ",
		NotUnderstood: "मुझे समझ नहीं आया",
	},
}
