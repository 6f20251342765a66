package prompt

import (
	"context"
	"regexp"
	"strings"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/pkg/logger"
	"oda-chatbot-be/pkg/aimodel"
	"oda-chatbot-be/pkg/catalog"
)

// Both the traditional single-category keywords (비즈니스/연구/정책/결합/도구
// 활용) and free-form prompts travel the same single-utilization path: the
// prompt itself is the analysis type. Only the full-dashboard phrase branches.
var fullUtilPattern = regexp.MustCompile(`(?i)(전체|종합)\s*활용`)

const utilFollowUpHint = "\n\n💡 다른 데이터 조회를 원하시면 '다른 데이터 활용'을 입력하시고, 다른 활용방안을 원하시면 프롬프트를 작성해주세요."

// UtilizationHandler claims any prompt while a dataset is focused and routes
// it to the full dashboard, a traditional single category, or a free-form
// analysis. Model failures are replaced with the static defaults.
type UtilizationHandler struct {
	store catalog.Store
	model aimodel.Client
	log   logger.ILogger
}

func NewUtilizationHandler(store catalog.Store, model aimodel.Client, log logger.ILogger) *UtilizationHandler {
	return &UtilizationHandler{store: store, model: model, log: log}
}

func (h *UtilizationHandler) Name() string { return "utilization" }

func (h *UtilizationHandler) CanHandle(prompt, focusedDataName string) bool {
	return strings.TrimSpace(focusedDataName) != ""
}

func (h *UtilizationHandler) Handle(ctx context.Context, req Request) Result {
	data, err := h.store.FindByName(ctx, req.FocusedDataName)
	if err != nil || data == nil {
		return Result{Response: ErrorResponse("파일을 찾을 수 없습니다: " + req.FocusedDataName)}
	}

	if fullUtilPattern.MatchString(req.Prompt) {
		return Result{Response: h.fullUtilization(ctx, data)}
	}
	return Result{Response: h.singleUtilization(ctx, data, req.Prompt)}
}

func (h *UtilizationHandler) fullUtilization(ctx context.Context, data *entity.PublicData) Response {
	raw, err := h.model.FullUtilization(ctx, data)
	if err != nil {
		h.log.Warn("prompt", "full utilization call failed, serving defaults", map[string]interface{}{
			"fileName": data.FileDataName,
			"error":    err.Error(),
		})
		raw = aimodel.DefaultFullRecommendations()
	}
	return UtilizationResponse(raw)
}

func (h *UtilizationHandler) singleUtilization(ctx context.Context, data *entity.PublicData, analysisType string) Response {
	recommendations, err := h.model.SingleUtilization(ctx, data, analysisType)
	if err != nil {
		h.log.Warn("prompt", "single utilization call failed, serving defaults", map[string]interface{}{
			"fileName":     data.FileDataName,
			"analysisType": analysisType,
			"error":        err.Error(),
		})
		recommendations = aimodel.DefaultSingleRecommendation(analysisType)
	}
	return LinesResponse(append(recommendations, utilFollowUpHint)...)
}
