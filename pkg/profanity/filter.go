package profanity

import (
	"strings"
)

// defaultWords is a deliberately small built-in word list. Deployments extend
// it through ModerationConfigs.ExtraWords.
var defaultWords = []string{
	"arse", "arsehole", "ass", "asshole", "bastard", "bitch", "bollocks",
	"bullshit", "crap", "cunt", "damn", "dick", "dickhead", "dumbass",
	"fuck", "fucked", "fucker", "fucking", "jackass", "motherfucker",
	"nigger", "piss", "prick", "pussy", "shit", "shitty", "slut", "twat",
	"wanker", "whore",
}

type Filter struct {
	words map[string]struct{}
}

func NewFilter(extraWords ...string) *Filter {
	f := &Filter{words: make(map[string]struct{})}
	for _, w := range defaultWords {
		f.words[w] = struct{}{}
	}

	for _, w := range extraWords {
		f.words[strings.ToLower(w)] = struct{}{}
	}

	return f
}

// IsProfane reports whether any word of the message is on the list. Matching
// is case-insensitive and ignores leading and trailing punctuation of each
// word.
func (f *Filter) IsProfane(message string) bool {
	for _, field := range strings.Fields(strings.ToLower(message)) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
		})

		if _, ok := f.words[word]; ok {
			return true
		}
	}

	return false
}
