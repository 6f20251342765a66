package prompt

import (
	"context"
	"fmt"
	"strings"

	"oda-chatbot-be/pkg/catalog"
)

const linkCommand = "/오픈api"

// LinkHandler answers the open-api slash command with the portal URL of the
// focused dataset.
type LinkHandler struct {
	store catalog.Store
}

func NewLinkHandler(store catalog.Store) *LinkHandler {
	return &LinkHandler{store: store}
}

func (h *LinkHandler) Name() string { return "link_command" }

func (h *LinkHandler) CanHandle(prompt, focusedDataName string) bool {
	return strings.EqualFold(strings.TrimSpace(prompt), linkCommand) && focusedDataName != ""
}

func (h *LinkHandler) Handle(ctx context.Context, req Request) Result {
	data, err := h.store.FindByName(ctx, req.FocusedDataName)
	if err != nil || data == nil {
		return Result{Response: ErrorResponse("해당 데이터를 찾을 수 없습니다: " + req.FocusedDataName)}
	}

	url := fmt.Sprintf("https://www.data.go.kr/data/%d/fileData.do#tab-layer-openapi", data.PublicDataPk)
	return Result{Response: LinkResponse(url)}
}
