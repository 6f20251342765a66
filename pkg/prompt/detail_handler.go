package prompt

import (
	"context"
	"strings"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/pkg/logger"
	"oda-chatbot-be/pkg/catalog"
)

// DetailHandler resolves "상세/자세히" requests to one catalog record and
// makes it the focused dataset.
type DetailHandler struct {
	store catalog.Store
	log   logger.ILogger
}

func NewDetailHandler(store catalog.Store, log logger.ILogger) *DetailHandler {
	return &DetailHandler{store: store, log: log}
}

func (h *DetailHandler) Name() string { return "detail" }

func (h *DetailHandler) CanHandle(prompt, focusedDataName string) bool {
	return strings.Contains(prompt, "상세") || strings.Contains(prompt, "자세히")
}

func (h *DetailHandler) Handle(ctx context.Context, req Request) Result {
	fileName := ExtractFileName(req.Prompt)
	if fileName == "" || fileName == "---" {
		fileName = req.FocusedDataName
		if fileName == "" {
			h.log.Warn("prompt", "detail request without filename or focused dataset", nil)
			return Result{Response: LinesResponse(
				"어떤 데이터의 상세 정보를 원하시는지 파일명을 함께 알려주세요.",
			)}
		}
	}

	data, err := h.lookup(ctx, fileName)
	if err != nil {
		h.log.Error("prompt", "detail lookup failed", map[string]interface{}{
			"fileName": fileName,
			"error":    err.Error(),
		})
		return Result{Response: ErrorResponse("데이터를 조회하는 중 오류가 발생했습니다.")}
	}
	if data == nil {
		return Result{Response: ErrorResponse("❌ 해당 파일명을 찾을 수 없습니다: " + fileName)}
	}

	return Result{
		Response: Response{Type: TypeDataDetail, Payload: detailPayload(data)},
		Focus:    SetFocus(data.FileDataName),
	}
}

// lookup prefers an exact name match and falls back to the first partial hit.
func (h *DetailHandler) lookup(ctx context.Context, fileName string) (*entity.PublicData, error) {
	exact, err := h.store.FindByName(ctx, fileName)
	if err != nil {
		return nil, err
	}
	if exact != nil {
		return exact, nil
	}

	partial, err := h.store.FindByNameContains(ctx, fileName)
	if err != nil {
		return nil, err
	}
	if len(partial) > 0 {
		return partial[0], nil
	}
	return nil, nil
}

type DetailPayload struct {
	FileDataName         string   `json:"fileDataName"`
	Title                string   `json:"title"`
	ClassificationSystem string   `json:"classificationSystem"`
	ProviderAgency       string   `json:"providerAgency"`
	ModifiedDate         string   `json:"modifiedDate"`
	FileExtension        string   `json:"fileExtension"`
	Description          string   `json:"description"`
	Keywords             []string `json:"keywords"`
}

func detailPayload(data *entity.PublicData) DetailPayload {
	modified := "정보 없음"
	if data.ModifiedDate != nil {
		modified = data.ModifiedDate.Format("2006-01-02")
	}
	return DetailPayload{
		FileDataName:         data.FileDataName,
		Title:                data.Title,
		ClassificationSystem: data.ClassificationSystem,
		ProviderAgency:       data.ProviderAgency,
		ModifiedDate:         modified,
		FileExtension:        data.FileExtension,
		Description:          data.Description,
		Keywords:             data.KeywordList(),
	}
}
