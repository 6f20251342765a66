package prompt

import (
	"regexp"
	"strings"
)

var (
	// e.g. "광주광역시 남구_전기차 등록 현황_20250311": metropolitan prefix,
	// district unit, title up to the next underscore, 8-digit date tail.
	fullFilePattern = regexp.MustCompile(`[가-힣A-Za-z0-9]+\s*(?:광역시|특별시|특별자치시)\s*[가-힣]+(?:구|군|시)_[^_]+_\d{8}`)

	// Anything ending in an 8-digit date tail.
	partialFilePattern = regexp.MustCompile(`[가-힣A-Za-z0-9_\s]+_\d{8}`)

	detailNoise = regexp.MustCompile(`(?i)(상세정보|자세히|더\s*알고|상세|에\s*대해|에\s*대한|의|을|를)`)
)

// ExtractFileName pulls a dataset filename out of a free-form prompt. Three
// stages: the full agency-prefixed pattern, any date-tailed fragment, then a
// noise-stripped fallback. Never fails; garbage in yields a trimmed string or
// "" for the caller to resolve against the focused dataset.
func ExtractFileName(prompt string) string {
	if m := fullFilePattern.FindString(prompt); m != "" {
		return strings.TrimSpace(m)
	}
	if m := partialFilePattern.FindString(prompt); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(detailNoise.ReplaceAllString(prompt, ""))
}
