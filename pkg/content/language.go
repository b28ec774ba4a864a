package content

// Language is a user interface language with a compiled-in translation.
type Language uint8

const (
	LangChinese Language = iota
	LangCzech
	LangGerman
	LangEnglish
	LangSpanish
	LangFinnish
	LangFrench
	LangItalian
	LangRussian
	LangKlingon
)

var languageCodes = [...]string{
	LangChinese: "cn",
	LangCzech:   "cs",
	LangGerman:  "de",
	LangEnglish: "en",
	LangSpanish: "es",
	LangFinnish: "fi",
	LangFrench:  "fr",
	LangItalian: "it",
	LangRussian: "ru",
	LangKlingon: "tlh",
}

var languageByCode = func() map[string]Language {
	m := make(map[string]Language, len(languageCodes))
	for l, code := range languageCodes {
		m[code] = Language(l)
	}
	return m
}()

// ParseLanguage returns the language for a settings code such as "en".
func ParseLanguage(code string) (Language, bool) {
	l, ok := languageByCode[code]
	return l, ok
}

// Code returns the settings code, or "" for an unknown language.
func (l Language) Code() string {
	if int(l) < len(languageCodes) {
		return languageCodes[l]
	}
	return ""
}

// String returns the language code.
func (l Language) String() string {
	if c := l.Code(); c != "" {
		return c
	}
	return "UNKNOWN"
}

// Route returns the embedded route of the translation file.
func (l Language) Route() string {
	return "/lang/" + l.Code() + ".lang"
}

// Languages returns all compiled-in languages.
func Languages() []Language {
	out := make([]Language, len(languageCodes))
	for i := range out {
		out[i] = Language(i)
	}
	return out
}
