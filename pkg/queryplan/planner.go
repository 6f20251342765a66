package queryplan

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Plan is the structured extraction of one prompt. Built fresh per prompt and
// never mutated afterwards.
type Plan struct {
	MajorCategory  string
	Keywords       []string // insertion order matters: the first entry is the primary term
	SearchYear     *int
	ProviderAgency string
	HasDateFilter  bool
	Limit          int
}

var (
	limitPattern = regexp.MustCompile(`(\d+)\s*개`)
	yearPattern  = regexp.MustCompile(`\d{4}`)
	particleSet  = "의가을를에서와과년"
)

// CreatePlan derives a Plan from a raw prompt. Deterministic, no I/O, never
// fails: the worst case is an empty keyword list with the default category.
func CreatePlan(prompt string) Plan {
	return Plan{
		MajorCategory:  extractMajorCategory(prompt),
		Keywords:       extractKeywords(prompt),
		SearchYear:     extractYear(prompt),
		ProviderAgency: extractAgency(prompt),
		HasDateFilter:  hasDateRelatedTerms(prompt),
		Limit:          extractLimit(prompt),
	}
}

func extractMajorCategory(prompt string) string {
	lower := strings.ToLower(prompt)
	best := ""
	highest := 0
	for _, entry := range categoryTaxonomy {
		score := 0
		for _, trigger := range entry.Triggers {
			if strings.Contains(lower, strings.ToLower(trigger)) {
				score++
			}
		}
		if score > highest {
			highest = score
			best = entry.Name
		}
	}
	if best == "" {
		return DefaultCategory
	}
	return best
}

func extractKeywords(prompt string) []string {
	// Regions come first: the primary keyword drives region-weighted ranking
	// downstream, and a named jurisdiction is the strongest signal of intent.
	var all []string
	all = append(all, extractRegions(prompt)...)
	all = append(all, extractDomainKeywords(prompt)...)
	all = append(all, extractYearKeywords(prompt)...)
	all = append(all, extractGeneralKeywords(prompt, all)...)

	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, kw := range all {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

func extractDomainKeywords(prompt string) []string {
	lower := strings.ToLower(prompt)
	var found []string
	for _, group := range domainPatterns {
		for _, kw := range group {
			if strings.Contains(lower, strings.ToLower(kw)) {
				found = append(found, kw)
			}
		}
	}
	return found
}

func extractRegions(prompt string) []string {
	var found []string
	for _, region := range regionNames {
		if strings.Contains(prompt, region) {
			found = append(found, region)
		}
	}
	return found
}

func extractYearKeywords(prompt string) []string {
	var years []string
	for _, token := range yearPattern.FindAllString(prompt, -1) {
		if y, err := strconv.Atoi(token); err == nil && y >= 2000 && y <= 2035 {
			years = append(years, token)
		}
	}
	currentYear := time.Now().Year()
	if strings.Contains(prompt, "작년") {
		years = append(years, strconv.Itoa(currentYear-1))
	}
	if strings.Contains(prompt, "올해") || strings.Contains(prompt, "금년") ||
		strings.Contains(prompt, "최근") || strings.Contains(prompt, "최신") {
		years = append(years, strconv.Itoa(currentYear))
	}
	return years
}

func extractGeneralKeywords(prompt string, excludeWords []string) []string {
	exclude := make(map[string]struct{}, len(excludeWords))
	for _, w := range excludeWords {
		exclude[w] = struct{}{}
	}

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(particleSet, r) {
			return ' '
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, prompt)

	var out []string
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if len([]rune(token)) < 2 {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, excluded := exclude[token]; excluded {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func extractYear(prompt string) *int {
	if token := yearPattern.FindString(prompt); token != "" {
		if y, err := strconv.Atoi(token); err == nil && y >= 2000 && y <= 2035 {
			return &y
		}
	}
	currentYear := time.Now().Year()
	if strings.Contains(prompt, "작년") {
		y := currentYear - 1
		return &y
	}
	if strings.Contains(prompt, "올해") || strings.Contains(prompt, "금년") ||
		strings.Contains(prompt, "최근") || strings.Contains(prompt, "최신") {
		return &currentYear
	}
	return nil
}

func extractAgency(prompt string) string {
	for _, entry := range agencyTable {
		if strings.Contains(prompt, entry.Region) {
			return entry.Agency
		}
	}
	return DefaultAgency
}

func hasDateRelatedTerms(prompt string) bool {
	for _, term := range dateTerms {
		if strings.Contains(prompt, term) {
			return true
		}
	}
	return false
}

func extractLimit(prompt string) int {
	lower := strings.ToLower(prompt)
	if m := limitPattern.FindStringSubmatch(prompt); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n
		}
	}
	if strings.Contains(lower, "많이") {
		return 20
	}
	if strings.Contains(lower, "간단히") || strings.Contains(lower, "요약") {
		return 5
	}
	return 12
}
