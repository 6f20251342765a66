package aimodel

import (
	"encoding/json"
	"strings"
)

// Static recommendations served when the model service is unavailable. The
// user always gets an answer; the model being down is an operational detail.

type fullRecommendations struct {
	Data    recommendationSet `json:"data"`
	Success bool              `json:"success"`
}

type recommendationSet struct {
	BusinessApplications   []string `json:"businessApplications"`
	ResearchApplications   []string `json:"researchApplications"`
	PolicyApplications     []string `json:"policyApplications"`
	CombinationSuggestions []string `json:"combinationSuggestions"`
	AnalysisTools          []string `json:"analysisTools"`
}

var defaultSet = recommendationSet{
	BusinessApplications: []string{
		"데이터 기반 비즈니스 서비스 개발",
		"관련 분야 컨설팅 사업",
		"정부 사업 입찰 참여",
	},
	ResearchApplications: []string{
		"현황 분석 및 트렌드 연구",
		"정책 효과성 분석",
		"지역별 비교 연구",
	},
	PolicyApplications: []string{
		"정책 수립 근거 자료",
		"예산 배분 참고",
		"성과 평가 지표",
	},
	CombinationSuggestions: []string{
		"인구 통계 데이터",
		"경제 지표 데이터",
		"지리 정보 데이터",
	},
	AnalysisTools: []string{
		"Excel/Google Sheets",
		"Python pandas",
		"R 통계 분석",
	},
}

// DefaultFullRecommendations is the five-category dashboard substituted when
// the model call fails.
func DefaultFullRecommendations() json.RawMessage {
	out, _ := json.Marshal(fullRecommendations{Data: defaultSet, Success: true})
	return out
}

// DefaultSingleRecommendation picks the dashboard slice matching the
// requested analysis type, or a generic mix for free-form prompts.
func DefaultSingleRecommendation(analysisType string) []string {
	lower := strings.ToLower(analysisType)
	switch {
	case strings.Contains(lower, "비즈니스") || strings.Contains(lower, "business"):
		return defaultSet.BusinessApplications
	case strings.Contains(lower, "연구") || strings.Contains(lower, "research"):
		return defaultSet.ResearchApplications
	case strings.Contains(lower, "정책") || strings.Contains(lower, "policy"):
		return defaultSet.PolicyApplications
	case strings.Contains(lower, "결합") || strings.Contains(lower, "combination"):
		return defaultSet.CombinationSuggestions
	case strings.Contains(lower, "도구") || strings.Contains(lower, "tool") || strings.Contains(lower, "분석"):
		return defaultSet.AnalysisTools
	default:
		return []string{
			defaultSet.BusinessApplications[0],
			defaultSet.ResearchApplications[0],
			defaultSet.PolicyApplications[0],
		}
	}
}
