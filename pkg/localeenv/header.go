package localeenv

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxHeaderLength caps how much of an Accept-Language header is parsed,
// guarding against oversized client input.
const maxHeaderLength = 4096

// Header reports language preferences parsed from an Accept-Language header
// value. Tags keep their original case and are ordered by descending
// quality; wildcard entries and malformed quality values are skipped.
//
// Example: "en-US,en;q=0.9,pl;q=0.8" yields ["en-US", "en", "pl"].
type Header struct {
	Value string
}

type languageTag struct {
	tag     string
	quality float64
}

// Languages returns the parsed tags in descending quality order, or nil for
// an empty or unusable header.
func (h Header) Languages() []string {
	tags := parseLanguageTags(h.Value)
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.tag
	}
	return out
}

// Language returns the highest-quality tag, or an empty string.
func (h Header) Language() string {
	if tags := h.Languages(); len(tags) > 0 {
		return tags[0]
	}
	return ""
}

func parseLanguageTags(header string) []languageTag {
	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
	}

	var tags []languageTag

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, languageTag{
				tag:     langPart,
				quality: quality,
			})
		}
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}
