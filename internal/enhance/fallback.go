package enhance

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The local fallback is a fixed ordered list of regex substitutions applied
// when the remote rewrite fails. It is pure and deterministic: identical
// input always yields identical output, and already-corrected text passes
// through unchanged (expansions never match their own output).

type rewriteRule struct {
	re   *regexp.Regexp
	repl string
}

var fallbackRules = []rewriteRule{
	// contraction expansion
	{regexp.MustCompile(`(?i)\bcan't\b`), "cannot"},
	{regexp.MustCompile(`(?i)\bwon't\b`), "will not"},
	{regexp.MustCompile(`(?i)\bdon't\b`), "do not"},
	{regexp.MustCompile(`(?i)\bdoesn't\b`), "does not"},
	{regexp.MustCompile(`(?i)\bdidn't\b`), "did not"},
	{regexp.MustCompile(`(?i)\bisn't\b`), "is not"},
	{regexp.MustCompile(`(?i)\baren't\b`), "are not"},
	{regexp.MustCompile(`(?i)\bwasn't\b`), "was not"},
	{regexp.MustCompile(`(?i)\bhaven't\b`), "have not"},
	{regexp.MustCompile(`\bI'm\b`), "I am"},
	{regexp.MustCompile(`(?i)\bit's\b`), "it is"},
	// common misspellings
	{regexp.MustCompile(`(?i)\brecieve(d?)\b`), "receive$1"},
	{regexp.MustCompile(`(?i)\bseperate(d?)\b`), "separate$1"},
	{regexp.MustCompile(`(?i)\bdefinately\b`), "definitely"},
	{regexp.MustCompile(`(?i)\boccured\b`), "occurred"},
	{regexp.MustCompile(`(?i)\bmanagment\b`), "management"},
	{regexp.MustCompile(`(?i)\bacheive(d?)\b`), "achieve$1"},
	{regexp.MustCompile(`(?i)\benviroment\b`), "environment"},
	// weak verb to strong verb
	{regexp.MustCompile(`(?i)\bworked on\b`), "developed"},
	{regexp.MustCompile(`(?i)\bhelped\b`), "contributed to"},
	{regexp.MustCompile(`(?i)\bmade\b`), "created"},
	{regexp.MustCompile(`(?i)\bdealt with\b`), "managed"},
	{regexp.MustCompile(`(?i)\bwas responsible for\b`), "led"},
}

// ApplyFallback runs the rule list in order and then capitalizes the first
// letter of each sentence.
func ApplyFallback(text string) string {
	out := strings.TrimSpace(text)
	for _, r := range fallbackRules {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	return capitalizeSentences(out)
}

// capitalizeSentences upper-cases the first letter of the text and of any
// letter following sentence-ending punctuation plus whitespace. Punctuation
// inside a token ("a@b.com") does not start a new sentence.
func capitalizeSentences(s string) string {
	if utf8.RuneCountInString(s) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	capitalizeNext := true // start of text
	pendingPunct := false
	for _, r := range s {
		switch {
		case capitalizeNext && unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
			pendingPunct = false
		case r == '.' || r == '!' || r == '?':
			b.WriteRune(r)
			pendingPunct = true
		case unicode.IsSpace(r):
			b.WriteRune(r)
			if pendingPunct {
				capitalizeNext = true
				pendingPunct = false
			}
		default:
			b.WriteRune(r)
			pendingPunct = false
			capitalizeNext = false
		}
	}
	return b.String()
}
