package config

import "log"

const (
	LangEN = "en"
	LangES = "es"
)

func GetLocaleConfig(lang string) string {
	switch lang {
	case LangEN:
		return LangEN
	case LangES:
		return LangES
	default:
		log.Printf("Language '%s' is not supported. Falling back to English.", lang)
		return LangEN
	}
}
