package utils

import "strings"

type Lang string

const (
	ES Lang = "es"
	EN Lang = "en"
)

type Language struct {
	ES string
	EN string
}

func (l Language) By(lang Lang) string {
	if lang == ES && l.ES != "" {
		return l.ES
	}
	return l.EN
}

// LangFromCode maps a Telegram language_code ("es", "es-AR", "en-US", ...) to a supported Lang.
func LangFromCode(code string) Lang {
	if strings.HasPrefix(strings.ToLower(code), "es") {
		return ES
	}
	return EN
}
