package reference

import (
	"strings"
	"unicode"

	"github.com/anyascii/go"
	"golang.org/x/text/cases"
)

// NormalizeName приводит название города к ключу сравнения:
// транслитерация в ASCII, свёртка регистра, только буквы и цифры через один пробел.
// "Courchevel", " COURCHEVEL " и "Courchével" дают один ключ.
func NormalizeName(name string) string {
	ascii := cases.Fold().String(anyascii.Transliterate(name))

	var b strings.Builder
	b.Grow(len(ascii))
	space := false
	for _, r := range ascii {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}
	return b.String()
}

// Slugify returns a URL slug for a place name.
func Slugify(name string) string {
	return strings.ReplaceAll(NormalizeName(name), " ", "-")
}

// DeriveCode строит 3-буквенный код для места без IATA:
// первые три латинские буквы названия в верхнем регистре, дополненные X.
func DeriveCode(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(anyascii.Transliterate(name)) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	for b.Len() < 3 {
		b.WriteByte('X')
	}
	return b.String()
}
