package usecases

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// placeholderKeyword stands in when a description has no word longer than three letters
const placeholderKeyword = "Business"

// GenerateNames builds count random names from the description's key words plus
// up to two fixed-pattern bonus names. Duplicates are dropped, keeping the first occurrence.
func (g *ContentGenerator) GenerateNames(description string, count int) []string {
	if count < 1 {
		count = 1
	}
	pools := g.catalog.Names()

	keyWords := extractKeyWords(description)
	hasKeyWords := len(keyWords) > 0
	if !hasKeyWords {
		keyWords = []string{placeholderKeyword}
	}

	names := make([]string, 0, count+2)
	for i := 0; i < count; i++ {
		lead := pools.Prefixes
		if g.rng.IntN(2) == 0 {
			lead = pools.FunnyAdjectives
		}
		names = append(names, g.pick(lead)+" "+g.pick(keyWords)+" "+g.pick(pools.Suffixes))
	}

	if hasKeyWords {
		first := keyWords[0]
		names = append(names, "The "+first+" Collective")
		if utf8.RuneCountInString(first) > 4 {
			names = append(names, first+"ify")
		} else {
			names = append(names, first+" & Co")
		}
	}

	return dedupe(names)
}

// extractKeyWords returns every whitespace-separated word longer than three characters, title-cased
func extractKeyWords(description string) []string {
	caser := cases.Title(language.Und)
	var words []string
	for _, word := range strings.Fields(description) {
		if utf8.RuneCountInString(word) > 3 {
			words = append(words, caser.String(word))
		}
	}
	return words
}

// TitleCase capitalises the first letter of every word and lower-cases the rest
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
