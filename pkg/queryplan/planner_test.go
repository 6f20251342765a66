package queryplan

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlan_RegionTrafficPrompt(t *testing.T) {
	plan := CreatePlan("서울 교통 데이터 5개")

	require.NotEmpty(t, plan.Keywords)
	assert.Equal(t, "서울", plan.Keywords[0], "region is the primary keyword")
	assert.Contains(t, plan.Keywords, "교통")
	assert.Equal(t, 5, plan.Limit)
	assert.Equal(t, "교통및물류", plan.MajorCategory)
	assert.Equal(t, "서울특별시", plan.ProviderAgency)
}

func TestCreatePlan_NeverFailsAndLimitPositive(t *testing.T) {
	prompts := []string{
		"",
		"   ",
		"!!!@#$%^&*()",
		"ㅁㄴㅇㄹ",
		"a",
		"0개 데이터",
		"서울 부산 대구 인천 광주 대전 울산 세종 모든 지역",
		"1999년 혹은 2099년 데이터",
	}
	for _, prompt := range prompts {
		plan := CreatePlan(prompt)
		assert.GreaterOrEqual(t, plan.Limit, 1, "prompt %q", prompt)
		assert.NotEmpty(t, plan.MajorCategory)
		assert.NotEmpty(t, plan.ProviderAgency)
	}
}

func TestCreatePlan_CategoryClassification(t *testing.T) {
	tests := []struct {
		prompt   string
		expected string
	}{
		{"환경 오염 수질 데이터", "환경"},
		{"학교 도서관 현황", "교육"},
		{"병원 의료 기관", "보건"},
		{"아무 관련 없는 말", DefaultCategory},
	}
	for _, tc := range tests {
		plan := CreatePlan(tc.prompt)
		assert.Equal(t, tc.expected, plan.MajorCategory, "prompt %q", tc.prompt)
	}
}

func TestCreatePlan_LimitExtraction(t *testing.T) {
	tests := []struct {
		prompt   string
		expected int
	}{
		{"데이터 7개 보여줘", 7},
		{"데이터 많이 보여줘", 20},
		{"간단히 알려줘", 5},
		{"요약해줘", 5},
		{"그냥 보여줘", 12},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, CreatePlan(tc.prompt).Limit, "prompt %q", tc.prompt)
	}
}

func TestCreatePlan_YearExtraction(t *testing.T) {
	plan := CreatePlan("2023년 미세먼지 측정 자료")
	require.NotNil(t, plan.SearchYear)
	assert.Equal(t, 2023, *plan.SearchYear)
	assert.True(t, plan.HasDateFilter)
	assert.Contains(t, plan.Keywords, "2023")

	plan = CreatePlan("1999년 자료")
	assert.Nil(t, plan.SearchYear, "years before 2000 are ignored")

	plan = CreatePlan("작년 통계")
	require.NotNil(t, plan.SearchYear)
	assert.Equal(t, time.Now().Year()-1, *plan.SearchYear)

	plan = CreatePlan("최신 통계")
	require.NotNil(t, plan.SearchYear)
	assert.Equal(t, time.Now().Year(), *plan.SearchYear)
	assert.Contains(t, plan.Keywords, strconv.Itoa(time.Now().Year()))
}

func TestCreatePlan_AgencyInference(t *testing.T) {
	tests := []struct {
		prompt   string
		expected string
	}{
		{"인천 데이터", "인천광역시서구"},
		{"대구 공장 목록", "대구광역시서구"},
		{"제주 관광", "제주특별자치도"},
		{"아무 지역 없음", DefaultAgency},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, CreatePlan(tc.prompt).ProviderAgency, "prompt %q", tc.prompt)
	}
}

func TestCreatePlan_KeywordsDeduplicated(t *testing.T) {
	plan := CreatePlan("교통 교통 교통사고 서울 서울")
	seen := map[string]int{}
	for _, kw := range plan.Keywords {
		seen[kw]++
	}
	for kw, n := range seen {
		assert.Equal(t, 1, n, "keyword %q appears more than once", kw)
	}
}

func TestCreatePlan_GeneralKeywordsCappedAtThree(t *testing.T) {
	// No domain/region/year hits: every token is a general keyword candidate.
	plan := CreatePlan("호랑이 독수리 고래 상어 늑대")
	assert.LessOrEqual(t, len(plan.Keywords), 3)
}

func TestCreatePlan_StopwordsDropped(t *testing.T) {
	plan := CreatePlan("관련 대한 현황 목록")
	assert.Empty(t, plan.Keywords)
}
