package scaffold

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

var titleCaser = cases.Title(language.English)

// Names holds the spellings of a user-supplied name used by the templates.
type Names struct {
	Name  string // PascalCase: UserProfile
	Camel string // camelCase: userProfile
	Kebab string // kebab-case: user-profile
	Table string // snake_case plural: user_profiles
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w %q: must match pattern [A-Za-z][A-Za-z0-9_-]*", ErrInvalidName, name)
	}
	return nil
}

// NewNames derives every spelling from name ("user-profile", "userProfile",
// "user_profile" and "UserProfile" all give the same result).
func NewNames(name string) Names {
	words := splitWords(name)

	var pascal strings.Builder
	for _, w := range words {
		pascal.WriteString(titleCaser.String(w))
	}

	p := pascal.String()
	camel := p
	if p != "" {
		camel = strings.ToLower(p[:1]) + p[1:]
	}

	return Names{
		Name:  p,
		Camel: camel,
		Kebab: strings.Join(words, "-"),
		Table: pluralize(strings.Join(words, "_")),
	}
}

// splitWords breaks name on separators and lower→upper case transitions and
// returns lower-cased words.
func splitWords(name string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

func pluralize(s string) string {
	switch {
	case s == "":
		return s
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "x"), strings.HasSuffix(s, "ch"), strings.HasSuffix(s, "sh"):
		return s + "es"
	case strings.HasSuffix(s, "y") && len(s) > 1 && !strings.ContainsRune("aeiou", rune(s[len(s)-2])):
		return s[:len(s)-1] + "ies"
	default:
		return s + "s"
	}
}
