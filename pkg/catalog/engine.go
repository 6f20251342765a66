package catalog

import (
	"context"
	"strings"
	"sync"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/pkg/logger"
	"oda-chatbot-be/pkg/queryplan"
)

// Jurisdiction names that trigger agency-prioritized retrieval and ranking.
var regionKeywords = map[string]struct{}{}

func init() {
	for _, r := range []string{
		"서울", "부산", "대구", "인천", "광주", "대전", "울산", "세종",
		"경기", "강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주",
	} {
		regionKeywords[r] = struct{}{}
	}
}

func IsRegion(keyword string) bool {
	_, ok := regionKeywords[keyword]
	return ok
}

// RegionFromKeywords returns the first recognized region name, or "".
func RegionFromKeywords(keywords []string) string {
	for _, kw := range keywords {
		if IsRegion(kw) {
			return kw
		}
	}
	return ""
}

// Engine executes a query plan against the catalog store: per-keyword
// retrieval, category filtering, dedup and relevance ranking.
type Engine struct {
	store Store
	log   logger.ILogger
}

func NewEngine(store Store, log logger.ILogger) *Engine {
	return &Engine{
		store: store,
		log:   log,
	}
}

// maxSearchResults bounds what one turn may return. The plan carries whatever
// count the user asked for; the cap lives here, at the consumer.
const maxSearchResults = 30

// Search runs the full pipeline and caps the result at plan.Limit.
func (e *Engine) Search(ctx context.Context, plan queryplan.Plan) []*entity.PublicData {
	results := e.SearchAndFilter(ctx, plan.Keywords, plan.MajorCategory)
	ranked := Rank(Deduplicate(results), plan.Keywords)
	limit := plan.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > maxSearchResults {
		limit = maxSearchResults
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SearchAndFilter retrieves candidates for every keyword and unions them in
// keyword order. Region keywords hit the agency and name fields first and only
// widen to the remaining fields when fewer than 10 records were found.
// Keyword queries are fanned out concurrently; a failing keyword contributes
// nothing instead of aborting the search.
func (e *Engine) SearchAndFilter(ctx context.Context, keywords []string, majorCategory string) []*entity.PublicData {
	perKeyword := make([][]*entity.PublicData, len(keywords))

	var wg sync.WaitGroup
	for i, keyword := range keywords {
		wg.Add(1)
		go func(i int, keyword string) {
			defer wg.Done()
			perKeyword[i] = e.searchKeyword(ctx, keyword)
		}(i, keyword)
	}
	wg.Wait()

	var all []*entity.PublicData
	for i, results := range perKeyword {
		filtered := filterByCategory(results, majorCategory)
		all = append(all, filtered...)
		e.log.Info("catalog", "keyword search complete", map[string]interface{}{
			"keyword": keywords[i],
			"count":   len(filtered),
		})
	}
	return all
}

func (e *Engine) searchKeyword(ctx context.Context, keyword string) []*entity.PublicData {
	var results []*entity.PublicData
	seen := make(map[string]struct{})

	add := func(records []*entity.PublicData, err error) bool {
		if err != nil {
			e.log.Error("catalog", "keyword field query failed", map[string]interface{}{
				"keyword": keyword,
				"error":   err.Error(),
			})
			return false
		}
		for _, r := range records {
			if r == nil || r.FileDataName == "" {
				continue
			}
			if _, dup := seen[r.FileDataName]; dup {
				continue
			}
			seen[r.FileDataName] = struct{}{}
			results = append(results, r)
		}
		return true
	}

	if IsRegion(keyword) {
		add(e.store.FindByProviderContains(ctx, keyword))
		add(e.store.FindByNameContains(ctx, keyword))
		if len(results) < 10 {
			add(e.store.FindByKeywordsContains(ctx, keyword))
			add(e.store.FindByTitleContains(ctx, keyword))
			add(e.store.FindByDescriptionContains(ctx, keyword))
		}
		return results
	}

	add(e.store.FindByKeywordsContains(ctx, keyword))
	add(e.store.FindByTitleContains(ctx, keyword))
	add(e.store.FindByProviderContains(ctx, keyword))
	add(e.store.FindByNameContains(ctx, keyword))
	add(e.store.FindByDescriptionContains(ctx, keyword))
	return results
}

func filterByCategory(records []*entity.PublicData, majorCategory string) []*entity.PublicData {
	if majorCategory == "" || majorCategory == queryplan.DefaultCategory || majorCategory == queryplan.GeneralAdminCategory {
		return records
	}
	upper := strings.ToUpper(majorCategory)
	var out []*entity.PublicData
	for _, r := range records {
		if r == nil {
			continue
		}
		if strings.Contains(strings.ToUpper(r.ClassificationSystem), upper) {
			out = append(out, r)
		}
	}
	return out
}

// Deduplicate keys records by dataset name; the first occurrence wins and
// insertion order is preserved. Idempotent.
func Deduplicate(records []*entity.PublicData) []*entity.PublicData {
	seen := make(map[string]struct{}, len(records))
	out := make([]*entity.PublicData, 0, len(records))
	for _, r := range records {
		if r == nil || r.FileDataName == "" {
			continue
		}
		if _, dup := seen[r.FileDataName]; dup {
			continue
		}
		seen[r.FileDataName] = struct{}{}
		out = append(out, r)
	}
	return out
}
