package prompt

import (
	"context"
	"strings"

	"oda-chatbot-be/internal/pkg/logger"
	"oda-chatbot-be/pkg/catalog"
	"oda-chatbot-be/pkg/queryplan"
)

// GeneralSearchHandler is the unconditional fallback: plan the prompt, run
// the search pipeline, and focus the top hit for follow-up turns.
type GeneralSearchHandler struct {
	engine *catalog.Engine
	log    logger.ILogger
}

func NewGeneralSearchHandler(engine *catalog.Engine, log logger.ILogger) *GeneralSearchHandler {
	return &GeneralSearchHandler{engine: engine, log: log}
}

func (h *GeneralSearchHandler) Name() string { return "general_search" }

func (h *GeneralSearchHandler) CanHandle(prompt, focusedDataName string) bool {
	return true
}

func (h *GeneralSearchHandler) Handle(ctx context.Context, req Request) Result {
	plan := queryplan.CreatePlan(req.Prompt)
	h.log.Info("prompt", "general search", map[string]interface{}{
		"prompt":   req.Prompt,
		"keywords": plan.Keywords,
		"category": plan.MajorCategory,
		"limit":    plan.Limit,
	})

	ranked := h.engine.Search(ctx, plan)

	if len(ranked) == 0 {
		if region := catalog.RegionFromKeywords(plan.Keywords); region != "" {
			return Result{Response: LinesResponse(
				"해당 지역("+region+")의 데이터가 부족합니다.",
				"다른 지역의 유사한 데이터를 참고하거나",
				"상위 카테고리("+plan.MajorCategory+")로 검색해보세요.",
			)}
		}
		return Result{Response: LinesResponse("해당 조건에 맞는 데이터를 찾을 수 없습니다.")}
	}

	names := make([]string, 0, len(ranked))
	for _, data := range ranked {
		if strings.TrimSpace(data.FileDataName) == "" {
			continue
		}
		names = append(names, data.FileDataName)
	}

	lines := names
	if len(names) >= 3 {
		lines = append(lines,
			"💡 특정 데이터에 대한 자세한 정보가 필요하시면",
			"'[파일명] 상세정보' 또는 '[파일명] 자세히'라고 말씀하세요.",
		)
	}

	result := Result{Response: LinesResponse(lines...)}
	if len(names) > 0 {
		result.Focus = SetFocus(names[0])
	}
	return result
}
