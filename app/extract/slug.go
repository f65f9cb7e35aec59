package extract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// SlugTitle turns a URL slug into a display title: hyphens become spaces
// and every word is capitalized ("machine-learning-at-scale" ->
// "Machine Learning At Scale").
func SlugTitle(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}
