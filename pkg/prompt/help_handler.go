package prompt

import "context"

// HelpHandler serves the static usage guide for the exact help command.
type HelpHandler struct{}

func NewHelpHandler() *HelpHandler { return &HelpHandler{} }

func (h *HelpHandler) Name() string { return "help_command" }

func (h *HelpHandler) CanHandle(prompt, focusedDataName string) bool {
	return prompt == "/도움말"
}

func (h *HelpHandler) Handle(ctx context.Context, req Request) Result {
	return Result{Response: LinesResponse(
		"안녕하세요! 저는 공공 데이터를 찾고 활용하는 것을 돕는 AI 챗봇입니다.",
		"다음과 같이 질문해보세요:",
		"• 특정 데이터 검색: '서울시 교통 데이터 보여줘'",
		"• 데이터 상세 정보: '[파일명] 자세히' 또는 '[파일명] 상세정보'",
		"• 데이터 활용 방안: '[파일명] 전체 활용' 또는 '[파일명] 비즈니스 활용'",
		"• 새로운 데이터 검색 시작: '다른 데이터 조회'",
		"• 현재 대화 초기화: '새 대화' (프론트엔드 기능)",
	)}
}
