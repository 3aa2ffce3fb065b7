package dataset

// Default returns the built-in fixture of five tracked tools. The fixture
// is loaded once per call; callers share a single instance for the process
// lifetime via dependency injection.
func Default() *Dataset {
	d, err := New(fixtureTools())
	if err != nil {
		// The fixture is compiled in; a construction failure is a
		// programming error, not a runtime condition.
		panic("dataset: invalid built-in fixture: " + err.Error())
	}
	return d
}

func fixtureTools() []Tool {
	return []Tool{
		{
			Record: ToolRecord{
				ID:          "openai",
				Name:        "OpenAI SDK",
				Package:     "openai",
				Description: "Official OpenAI API client for building applications on GPT models.",
				Category:    CategoryLLMAPI,
			},
			Metrics: Metrics{
				MonthlyDownloads: 12500000,
				WeeklyDownloads:  3100000,
				Stars:            22450,
				Questions30d:     1840,
				Mentions30d:      5620,
				LastUpdated:      "2026-08-18",
			},
			History: []HistoryPoint{
				{Month: "2026-03", Downloads: 9100000},
				{Month: "2026-04", Downloads: 9800000},
				{Month: "2026-05", Downloads: 10500000},
				{Month: "2026-06", Downloads: 11200000},
				{Month: "2026-07", Downloads: 11900000},
				{Month: "2026-08", Downloads: 12500000},
			},
		},
		{
			Record: ToolRecord{
				ID:          "anthropic",
				Name:        "Anthropic SDK",
				Package:     "@anthropic-ai/sdk",
				Description: "Official Anthropic API client for the Claude model family.",
				Category:    CategoryLLMAPI,
			},
			Metrics: Metrics{
				MonthlyDownloads: 4800000,
				WeeklyDownloads:  1190000,
				Stars:            11280,
				Questions30d:     960,
				Mentions30d:      4310,
				LastUpdated:      "2026-08-20",
			},
			History: []HistoryPoint{
				{Month: "2026-03", Downloads: 2100000},
				{Month: "2026-04", Downloads: 2600000},
				{Month: "2026-05", Downloads: 3100000},
				{Month: "2026-06", Downloads: 3700000},
				{Month: "2026-07", Downloads: 4200000},
				{Month: "2026-08", Downloads: 4800000},
			},
		},
		{
			Record: ToolRecord{
				ID:          "cursor",
				Name:        "Cursor",
				Package:     "cursor",
				Description: "AI-first code editor built for pair-programming with language models.",
				Category:    CategoryEditor,
			},
			Metrics: Metrics{
				MonthlyDownloads: 990000,
				WeeklyDownloads:  246000,
				Stars:            28900,
				Questions30d:     720,
				Mentions30d:      3850,
				LastUpdated:      "2026-08-15",
			},
			History: []HistoryPoint{
				{Month: "2026-03", Downloads: 480000},
				{Month: "2026-04", Downloads: 560000},
				{Month: "2026-05", Downloads: 650000},
				{Month: "2026-06", Downloads: 760000},
				{Month: "2026-07", Downloads: 870000},
				{Month: "2026-08", Downloads: 990000},
			},
		},
		{
			Record: ToolRecord{
				ID:          "copilot",
				Name:        "GitHub Copilot",
				Package:     "@github/copilot",
				Description: "AI coding assistant that suggests lines and whole functions in-editor.",
				Category:    CategoryAssistant,
			},
			Metrics: Metrics{
				MonthlyDownloads: 1700000,
				WeeklyDownloads:  421000,
				Stars:            9340,
				Questions30d:     1130,
				Mentions30d:      2940,
				LastUpdated:      "2026-08-12",
			},
			History: []HistoryPoint{
				{Month: "2026-03", Downloads: 1500000},
				{Month: "2026-04", Downloads: 1550000},
				{Month: "2026-05", Downloads: 1600000},
				{Month: "2026-06", Downloads: 1640000},
				{Month: "2026-07", Downloads: 1680000},
				{Month: "2026-08", Downloads: 1700000},
			},
		},
		{
			Record: ToolRecord{
				ID:          "langchain",
				Name:        "LangChain",
				Package:     "langchain",
				Description: "Framework for composing language-model applications from reusable components.",
				Category:    CategoryFramework,
			},
			Metrics: Metrics{
				MonthlyDownloads: 5200000,
				WeeklyDownloads:  1290000,
				Stars:            96700,
				Questions30d:     2310,
				Mentions30d:      6480,
				LastUpdated:      "2026-08-19",
			},
			History: []HistoryPoint{
				{Month: "2026-03", Downloads: 3900000},
				{Month: "2026-04", Downloads: 4100000},
				{Month: "2026-05", Downloads: 4400000},
				{Month: "2026-06", Downloads: 4600000},
				{Month: "2026-07", Downloads: 4900000},
				{Month: "2026-08", Downloads: 5200000},
			},
		},
	}
}
