package services

import "fmt"

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

const (
	explanationTemperature = 0.7
	briefMaxTokens         = 150
	detailedMaxTokens      = 300
)

type promptTemplates struct {
	brief       string
	detailed    string
	defaultType string
}

var explanationPrompts = map[Language]promptTemplates{
	English: {
		brief:       "Provide a brief, interesting summary (2-3 sentences) about %s, a %s. Focus on what makes it special and worth visiting.",
		detailed:    "Provide a detailed, educational explanation (4-5 sentences) about %s, a %s. Include historical significance, architectural features, and interesting facts. Be informative and engaging.",
		defaultType: "monument",
	},
	Spanish: {
		brief:       "Proporciona un resumen breve e interesante (2-3 oraciones) sobre %s, un %s. Enfócate en lo que lo hace especial y digno de visitar.",
		detailed:    "Proporciona una explicación detallada y educativa (4-5 oraciones) sobre %s, un %s. Incluye su importancia histórica, características arquitectónicas y datos interesantes. Sé informativo y atractivo.",
		defaultType: "monumento",
	},
}

// ResolveLanguage recognizes only the exact code "es"; everything else is English.
func ResolveLanguage(code string) Language {
	if Language(code) == Spanish {
		return Spanish
	}
	return English
}

func BuildExplanationPrompt(name, placeType string, detailed bool, lang Language) string {
	t, ok := explanationPrompts[lang]
	if !ok {
		t = explanationPrompts[English]
	}
	if placeType == "" {
		placeType = t.defaultType
	}
	if detailed {
		return fmt.Sprintf(t.detailed, name, placeType)
	}
	return fmt.Sprintf(t.brief, name, placeType)
}

func explanationMaxTokens(detailed bool) int {
	if detailed {
		return detailedMaxTokens
	}
	return briefMaxTokens
}
