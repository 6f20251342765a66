package prompt

import (
	"context"
	"regexp"
	"strings"
)

var (
	resetPhrases = []string{
		"다른 데이터 활용", "다른 데이터", "새로운 데이터", "다른 정보",
		"새 검색", "새로운 검색", "다른 자료",
	}
	resetPrefixes = []string{"/다른", "/새로운", "/새로", "/다시"}
	resetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`다른.*조회`),
		regexp.MustCompile(`새로.*찾`),
		regexp.MustCompile(`다시.*검색`),
	}
)

// NewSearchHandler clears the focused dataset so the next prompt starts a
// fresh search. No catalog query happens on this turn.
type NewSearchHandler struct{}

func NewNewSearchHandler() *NewSearchHandler { return &NewSearchHandler{} }

func (h *NewSearchHandler) Name() string { return "new_search" }

func (h *NewSearchHandler) CanHandle(prompt, focusedDataName string) bool {
	lower := strings.ToLower(prompt)
	for _, prefix := range resetPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	for _, phrase := range resetPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, pattern := range resetPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

func (h *NewSearchHandler) Handle(ctx context.Context, req Request) Result {
	return Result{
		Response: LinesResponse(
			"🔄 데이터 선택이 해제되었습니다.",
			"새로운 데이터를 검색하고 싶으시면 원하는 키워드를 입력해주세요.",
			"예: '서울시 교통 데이터', '부산 관광 정보' 등",
		),
		Focus: ClearFocus(),
	}
}
