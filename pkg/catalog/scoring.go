package catalog

import (
	"sort"
	"strings"
	"time"

	"oda-chatbot-be/internal/entity"
)

const (
	scoreProviderAgency     = 200
	scoreNameStartsWith     = 150
	scoreKeywordExactMatch  = 100
	scoreKeywordContains    = 60
	scoreNameContains       = 40
	scoreTitleContains      = 25
	scoreDescContains       = 30
	scoreDescFullPhrase     = 50
	scoreRecentlyModified   = 20
	scoreClassificationHit  = 20

	primaryRegionProvider     = 100
	primaryRegionNameStarts   = 80
	primaryRegionNameContains = 50
	primaryRegionDesc         = 40
	primaryNormalProvider     = 30
	primaryNormalName         = 20
	primaryNormalDesc         = 25

	descKeywordPresence   = 10
	descSpecialtyTerm     = 25
	descHighDensityBonus  = 20
	descDensityThreshold  = 2
)

// Domain jargon whose presence in a description marks a substantive record.
var specialtyTerms = []string{
	"도시개발", "토지구획", "재개발", "재정비", "환지", "감보율", "시행인가",
	"대기오염", "수질오염", "폐기물", "배출시설", "환경영향", "오염물질",
	"교통사고", "교통위반", "교통체계", "대중교통", "교통량", "신호체계",
	"교육과정", "학습", "연구", "교육시설", "교육프로그램",
	"문화재", "관광지", "문화시설", "예술", "공연", "축제",
}

// Rank sorts records descending by relevance score. The sort is stable so
// equal-scoring records keep their original relative order.
func Rank(records []*entity.PublicData, keywords []string) []*entity.PublicData {
	scores := make([]int, len(records))
	for i, r := range records {
		scores[i] = relevanceScore(r, keywords)
	}
	out := make([]*entity.PublicData, len(records))
	copy(out, records)
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	for i, j := range idx {
		out[i] = records[j]
	}
	return out
}

// relevanceScore never panics: any failure while scoring one record is
// treated as score 0 so the sort comparator stays total.
func relevanceScore(data *entity.PublicData, keywords []string) (score int) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()
	if data == nil {
		return 0
	}
	score += keywordScores(data, keywords)
	score += primaryKeywordScore(data, keywords)
	score += descriptionScore(data.Description, keywords)
	score += bonusScores(data, keywords)
	if score < 0 {
		score = 0
	}
	return score
}

func keywordScores(data *entity.PublicData, keywords []string) int {
	score := 0
	name := strings.ToLower(data.FileDataName)
	dataKeywords := strings.ToLower(data.Keywords)
	title := strings.ToLower(data.Title)
	provider := strings.ToLower(data.ProviderAgency)
	description := strings.ToLower(data.Description)
	phrase := strings.ToLower(strings.Join(keywords, " "))

	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		if strings.Contains(provider, kw) {
			score += scoreProviderAgency
		}
		if strings.HasPrefix(name, kw) {
			score += scoreNameStartsWith
		}
		if keywordExactMatch(dataKeywords, kw) {
			score += scoreKeywordExactMatch
		} else if strings.Contains(dataKeywords, kw) {
			score += scoreKeywordContains
		}
		if strings.Contains(name, kw) {
			score += scoreNameContains
		}
		if strings.Contains(title, kw) {
			score += scoreTitleContains
		}
		if strings.Contains(description, kw) {
			score += scoreDescContains
		}
		if len(keywords) >= 2 && strings.Contains(description, phrase) {
			score += scoreDescFullPhrase
		}
	}
	return score
}

func primaryKeywordScore(data *entity.PublicData, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}
	score := 0
	primary := strings.ToLower(keywords[0])
	name := strings.ToLower(data.FileDataName)
	provider := strings.ToLower(data.ProviderAgency)
	description := strings.ToLower(data.Description)

	if IsRegion(keywords[0]) {
		if strings.Contains(provider, primary) {
			score += primaryRegionProvider
		}
		if strings.HasPrefix(name, primary) {
			score += primaryRegionNameStarts
		}
		if strings.Contains(name, primary) {
			score += primaryRegionNameContains
		}
		if strings.Contains(description, primary) {
			score += primaryRegionDesc
		}
	} else {
		if strings.Contains(provider, primary) {
			score += primaryNormalProvider
		}
		if strings.Contains(name, primary) {
			score += primaryNormalName
		}
		if strings.Contains(description, primary) {
			score += primaryNormalDesc
		}
	}
	return score
}

func descriptionScore(description string, keywords []string) int {
	if description == "" {
		return 0
	}
	score := 0
	lower := strings.ToLower(description)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			score += descKeywordPresence
		}
	}
	for _, term := range specialtyTerms {
		if strings.Contains(lower, term) {
			score += descSpecialtyTerm
		}
	}
	density := 0
	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		if kw == "" {
			continue
		}
		density += strings.Count(lower, kw)
	}
	if density > descDensityThreshold {
		score += descHighDensityBonus
	}
	return score
}

func bonusScores(data *entity.PublicData, keywords []string) int {
	score := 0
	if data.ModifiedDate != nil && data.ModifiedDate.After(time.Now().AddDate(-1, 0, 0)) {
		score += scoreRecentlyModified
	}
	if data.ClassificationSystem != "" {
		classification := strings.ToLower(data.ClassificationSystem)
		for _, keyword := range keywords {
			if strings.Contains(classification, strings.ToLower(keyword)) {
				score += scoreClassificationHit
			}
		}
	}
	return score
}

func keywordExactMatch(dataKeywords, searchKeyword string) bool {
	if dataKeywords == "" {
		return false
	}
	for _, kw := range strings.Split(dataKeywords, ",") {
		trimmed := strings.ToLower(strings.TrimSpace(kw))
		if trimmed == searchKeyword || strings.Contains(trimmed, searchKeyword) {
			return true
		}
	}
	return false
}
