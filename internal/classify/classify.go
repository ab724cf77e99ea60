// Package classify derives a catalog title, tags and use cases from a video
// filename using fixed keyword tables. Matching is substring based in both
// directions, so short tokens can pull in unrelated categories.
package classify

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// FallbackTitle is used when no token survives filename cleanup.
	FallbackTitle = "Stock Video Footage"

	// MaxTags caps the tag set.
	MaxTags = 10
	// MaxUseCases caps the use-case set.
	MaxUseCases = 6

	minTokenLength = 3

	descriptionTemplate = "High-quality %s stock footage perfect for your creative projects. " +
		"This video can be used for content creation, marketing campaigns, social media posts, and more."
)

// VideoExtensions lists the accepted video suffixes, compared case-insensitively.
var VideoExtensions = []string{".mp4", ".mov", ".avi", ".webm"}

var (
	videoExtPattern = regexp.MustCompile(`(?i)\.(mp4|mov|avi|webm)$`)
	camelBoundary   = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Descriptor is the classifier output for one filename.
type Descriptor struct {
	Title       string
	Tags        []string
	UseCases    []string
	Description string
}

// IsVideo reports whether name ends with an allow-listed video extension.
func IsVideo(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range VideoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Parse classifies a filename. Directory components are ignored.
func Parse(filename string) Descriptor {
	words := Tokens(filename)

	titled := make([]string, 0, len(words))
	for _, w := range words {
		titled = append(titled, capitalize(w))
	}
	title := strings.Join(titled, " ")
	if title == "" {
		title = FallbackTitle
	}

	tags := newOrderedSet(baselineTags...)
	uses := newOrderedSet()
	for _, w := range words {
		for _, c := range categories {
			if !strings.Contains(c.key, w) && !strings.Contains(w, c.key) {
				continue
			}
			tags.add(c.tags...)
			if uc, ok := useCases[c.key]; ok {
				uses.add(uc...)
			}
		}
	}
	if uses.size() == 0 {
		uses.add(genericUseCases...)
	}

	return Descriptor{
		Title:       title,
		Tags:        tags.first(MaxTags),
		UseCases:    uses.first(MaxUseCases),
		Description: fmt.Sprintf(descriptionTemplate, strings.ToLower(title)),
	}
}

// Tokens returns the lowercase words of a filename with its video extension,
// separators and camelCase boundaries removed. Words shorter than three
// characters are dropped.
func Tokens(filename string) []string {
	name := videoExtPattern.ReplaceAllString(path.Base(filename), "")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.ToLower(camelBoundary.ReplaceAllString(name, "$1 $2"))

	var words []string
	for _, f := range strings.Fields(name) {
		if utf8.RuneCountInString(f) >= minTokenLength {
			words = append(words, f)
		}
	}
	return words
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet(items ...string) *orderedSet {
	s := &orderedSet{seen: make(map[string]struct{})}
	s.add(items...)
	return s
}

func (s *orderedSet) add(items ...string) {
	for _, it := range items {
		if _, ok := s.seen[it]; ok {
			continue
		}
		s.seen[it] = struct{}{}
		s.items = append(s.items, it)
	}
}

func (s *orderedSet) size() int { return len(s.items) }

func (s *orderedSet) first(n int) []string {
	if len(s.items) < n {
		n = len(s.items)
	}
	out := make([]string, n)
	copy(out, s.items[:n])
	return out
}
