package prompt

import (
	"context"
	"fmt"
	"strings"

	"oda-chatbot-be/pkg/catalog"
)

// DataCheckHandler answers "데이터 확인" for the focused dataset with its
// registry identity and portal location.
type DataCheckHandler struct {
	store catalog.Store
}

func NewDataCheckHandler(store catalog.Store) *DataCheckHandler {
	return &DataCheckHandler{store: store}
}

func (h *DataCheckHandler) Name() string { return "data_check" }

func (h *DataCheckHandler) CanHandle(prompt, focusedDataName string) bool {
	return focusedDataName != "" && strings.TrimSpace(prompt) == "데이터 확인"
}

func (h *DataCheckHandler) Handle(ctx context.Context, req Request) Result {
	data, err := h.store.FindByName(ctx, req.FocusedDataName)
	if err != nil || data == nil {
		return Result{Response: ErrorResponse("선택된 데이터의 정보를 찾을 수 없습니다: " + req.FocusedDataName)}
	}
	if data.PublicDataPk == 0 {
		return Result{Response: ErrorResponse("데이터의 PK(publicDataPk) 값이 없습니다: " + req.FocusedDataName)}
	}

	return Result{Response: Response{
		Type: TypeDataCheck,
		Payload: map[string]interface{}{
			"fileDataName":   data.FileDataName,
			"publicDataPk":   data.PublicDataPk,
			"providerAgency": data.ProviderAgency,
			"fileExtension":  data.FileExtension,
			"portalUrl":      fmt.Sprintf("https://www.data.go.kr/data/%d/fileData.do", data.PublicDataPk),
		},
	}}
}
