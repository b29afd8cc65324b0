package localeenv

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Env reads language preferences from POSIX locale environment variables.
// LANGUAGE supplies the ordered preference list (colon-separated); LC_ALL,
// LC_MESSAGES, and LANG supply the single preferred value, first set wins.
// Values are canonicalized to BCP 47 form ("en_US.UTF-8" becomes "en-US");
// the "C" and "POSIX" pseudo-locales and unparseable values are skipped.
type Env struct{}

// Languages returns the ordered preference list from LANGUAGE, or nil when
// the variable is unset or yields no usable tags.
func (Env) Languages() []string {
	raw := os.Getenv("LANGUAGE")
	if raw == "" {
		return nil
	}

	var tags []string
	for _, part := range strings.Split(raw, ":") {
		if tag := canonicalize(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Language returns the single preferred tag from LC_ALL, LC_MESSAGES, or
// LANG, or an empty string when none is usable.
func (Env) Language() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag := canonicalize(os.Getenv(name)); tag != "" {
			return tag
		}
	}
	return ""
}

// canonicalize turns a POSIX locale value into a BCP 47 tag, or "" when the
// value carries no language information.
func canonicalize(value string) string {
	value = strings.TrimSpace(value)
	// Strip encoding and modifier suffixes: "de_DE.UTF-8@euro" -> "de_DE".
	value, _, _ = strings.Cut(value, ".")
	value, _, _ = strings.Cut(value, "@")
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}
