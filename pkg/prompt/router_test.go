package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/pkg/aimodel"
	"oda-chatbot-be/pkg/catalog"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeStore struct {
	mu      sync.Mutex
	byName  map[string]*entity.PublicData
	byTitle map[string][]*entity.PublicData
	calls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byName:  map[string]*entity.PublicData{},
		byTitle: map[string][]*entity.PublicData{},
	}
}

func (s *fakeStore) count() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *fakeStore) FindByName(ctx context.Context, name string) (*entity.PublicData, error) {
	s.count()
	return s.byName[name], nil
}

func (s *fakeStore) FindByNameContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	s.count()
	var out []*entity.PublicData
	for _, d := range s.byName {
		if d != nil && term != "" && strings.Contains(d.FileDataName, term) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *fakeStore) FindByTitleContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	s.count()
	return s.byTitle[term], nil
}

func (s *fakeStore) FindByKeywordsContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	s.count()
	return nil, nil
}

func (s *fakeStore) FindByProviderContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	s.count()
	return nil, nil
}

func (s *fakeStore) FindByDescriptionContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	s.count()
	return nil, nil
}

func (s *fakeStore) FindByClassificationContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	s.count()
	return nil, nil
}

type fakeModel struct {
	fullCalls   int
	singleCalls int
	fail        bool
}

func (m *fakeModel) FullUtilization(ctx context.Context, data *entity.PublicData) (json.RawMessage, error) {
	m.fullCalls++
	if m.fail {
		return nil, errors.New("model unavailable")
	}
	return json.RawMessage(`{"success":true}`), nil
}

func (m *fakeModel) SingleUtilization(ctx context.Context, data *entity.PublicData, analysisType string) ([]string, error) {
	m.singleCalls++
	if m.fail {
		return nil, errors.New("model unavailable")
	}
	return []string{"추천 활용 방안"}, nil
}

func newTestRouter(store *fakeStore, model *fakeModel) *Router {
	engine := catalog.NewEngine(store, nopLogger{})
	return NewRouter(nopLogger{},
		NewLinkHandler(store),
		NewHelpHandler(),
		NewNewSearchHandler(),
		NewDetailHandler(store, nopLogger{}),
		NewDataCheckHandler(store),
		NewUtilizationHandler(store, model, nopLogger{}),
		NewGeneralSearchHandler(engine, nopLogger{}),
	)
}

func TestDispatch_HelpFiresRegardlessOfFocus(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{
		Prompt:          "/도움말",
		FocusedDataName: "어떤 데이터",
	})

	assert.Equal(t, "help_command", result.Handler)
	assert.Equal(t, TypeLines, result.Response.Type)
	assert.False(t, result.Focus.Apply)
	assert.Equal(t, 0, store.calls, "help must not touch the catalog")
}

func TestDispatch_NewSearchClearsFocusWithoutSearching(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{
		Prompt:          "다른 데이터 조회",
		FocusedDataName: "X",
	})

	assert.Equal(t, "new_search", result.Handler)
	require.True(t, result.Focus.Apply)
	assert.Empty(t, result.Focus.Name)
	assert.Equal(t, 0, store.calls, "reset must not run a catalog search")
}

func TestDispatch_FullUtilizationPath(t *testing.T) {
	store := newFakeStore()
	store.byName["X"] = &entity.PublicData{FileDataName: "X", PublicDataPk: 42}
	model := &fakeModel{}
	router := newTestRouter(store, model)

	result := router.Dispatch(context.Background(), Request{
		Prompt:          "전체 활용",
		FocusedDataName: "X",
	})

	assert.Equal(t, "utilization", result.Handler)
	assert.Equal(t, 1, model.fullCalls, "full-utilization phrase must take the dashboard path")
	assert.Equal(t, 0, model.singleCalls)
	assert.Equal(t, TypeUtilization, result.Response.Type)
}

func TestDispatch_FullUtilizationAcceptsBothPhrasings(t *testing.T) {
	for _, phrase := range []string{"전체 활용", "종합활용", "  전체  활용  "} {
		store := newFakeStore()
		store.byName["X"] = &entity.PublicData{FileDataName: "X"}
		model := &fakeModel{}
		router := newTestRouter(store, model)

		router.Dispatch(context.Background(), Request{Prompt: phrase, FocusedDataName: "X"})

		assert.Equal(t, 1, model.fullCalls, "phrase %q", phrase)
	}
}

func TestDispatch_UtilizationFailureServesDefaults(t *testing.T) {
	store := newFakeStore()
	store.byName["X"] = &entity.PublicData{FileDataName: "X"}
	model := &fakeModel{fail: true}
	router := newTestRouter(store, model)

	result := router.Dispatch(context.Background(), Request{
		Prompt:          "비즈니스 활용",
		FocusedDataName: "X",
	})

	require.Equal(t, TypeLines, result.Response.Type)
	lines, ok := result.Response.Payload.([]string)
	require.True(t, ok)
	assert.Contains(t, lines, aimodel.DefaultSingleRecommendation("비즈니스 활용")[0])
}

func TestDispatch_GeneralSearchRegionNotFoundMessage(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{Prompt: "서울 교통 데이터"})

	assert.Equal(t, "general_search", result.Handler)
	require.Equal(t, TypeLines, result.Response.Type)
	lines, ok := result.Response.Payload.([]string)
	require.True(t, ok)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "서울", "zero hits with a region keyword must name the region")
	assert.False(t, result.Focus.Apply)
}

func TestDispatch_GeneralSearchFocusesTopHit(t *testing.T) {
	store := newFakeStore()
	store.byTitle["호랑이"] = []*entity.PublicData{
		{FileDataName: "호랑이 서식 실태"},
		{FileDataName: "호랑이 보호 구역"},
	}
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{Prompt: "호랑이"})

	assert.Equal(t, "general_search", result.Handler)
	require.True(t, result.Focus.Apply)
	assert.Equal(t, "호랑이 서식 실태", result.Focus.Name)
}

func TestDispatch_DetailSetsFocusOnHit(t *testing.T) {
	store := newFakeStore()
	store.byName["버스 정류장"] = &entity.PublicData{FileDataName: "버스 정류장", Title: "정류장"}
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{Prompt: "버스 정류장 자세히"})

	assert.Equal(t, "detail", result.Handler)
	assert.Equal(t, TypeDataDetail, result.Response.Type)
	require.True(t, result.Focus.Apply)
	assert.Equal(t, "버스 정류장", result.Focus.Name)
}

func TestDispatch_DetailWithoutFilenameAsksForOne(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{Prompt: "자세히"})

	assert.Equal(t, "detail", result.Handler)
	assert.Equal(t, TypeLines, result.Response.Type)
	assert.False(t, result.Focus.Apply, "unresolved detail request must not change focus")
}

func TestDispatch_DetailUnknownNameIsNotFoundError(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{Prompt: "없는 파일 상세정보"})

	assert.Equal(t, TypeError, result.Response.Type)
	assert.False(t, result.Focus.Apply)
}

func TestDispatch_LinkCommandNeedsFocus(t *testing.T) {
	store := newFakeStore()
	store.byName["X"] = &entity.PublicData{FileDataName: "X", PublicDataPk: 7}
	router := newTestRouter(store, &fakeModel{})

	withFocus := router.Dispatch(context.Background(), Request{Prompt: "/오픈api", FocusedDataName: "X"})
	assert.Equal(t, "link_command", withFocus.Handler)
	require.Equal(t, TypeLink, withFocus.Response.Type)
	payload, ok := withFocus.Response.Payload.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "https://www.data.go.kr/data/7/fileData.do#tab-layer-openapi", payload["url"])

	withoutFocus := router.Dispatch(context.Background(), Request{Prompt: "/오픈api"})
	assert.NotEqual(t, "link_command", withoutFocus.Handler, "link command requires a focused dataset")
}

func TestDispatch_DataCheck(t *testing.T) {
	store := newFakeStore()
	store.byName["X"] = &entity.PublicData{FileDataName: "X", PublicDataPk: 11}
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{Prompt: " 데이터 확인 ", FocusedDataName: "X"})

	assert.Equal(t, "data_check", result.Handler)
	assert.Equal(t, TypeDataCheck, result.Response.Type)
}

func TestDispatch_AlwaysExactlyOneResponse(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, &fakeModel{})

	for i, prompt := range []string{"", "아무말", "/도움말", "자세히", "다시 검색"} {
		result := router.Dispatch(context.Background(), Request{Prompt: prompt})
		assert.NotEmpty(t, result.Response.Type, "case %d prompt %q", i, prompt)
		assert.NotEmpty(t, result.Handler, "case %d prompt %q", i, prompt)
	}
}

type panickyHandler struct{}

func (panickyHandler) Name() string                  { return "panicky" }
func (panickyHandler) CanHandle(string, string) bool { return true }
func (panickyHandler) Handle(context.Context, Request) Result {
	panic("boom")
}

func TestDispatch_RecoversFromHandlerPanic(t *testing.T) {
	router := NewRouter(nopLogger{}, panickyHandler{})

	var result Result
	assert.NotPanics(t, func() {
		result = router.Dispatch(context.Background(), Request{Prompt: "x"})
	})
	assert.Equal(t, TypeError, result.Response.Type)
}

func TestDispatch_SearchHintAppendedForThreeOrMoreResults(t *testing.T) {
	store := newFakeStore()
	store.byTitle["늑대"] = []*entity.PublicData{
		{FileDataName: "늑대 개체수 일"},
		{FileDataName: "늑대 개체수 이"},
		{FileDataName: "늑대 개체수 삼"},
	}
	router := newTestRouter(store, &fakeModel{})

	result := router.Dispatch(context.Background(), Request{Prompt: "늑대"})

	lines, ok := result.Response.Payload.([]string)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[len(lines)-2], "자세한 정보")
}
