package v1

import (
	"context"

	"github.com/samber/lo"

	"github.com/reportrack/reportrack/app/core"
	"github.com/reportrack/reportrack/pkg/errors"
	"github.com/reportrack/reportrack/pkg/i18n"
	"github.com/reportrack/reportrack/pkg/keyword"
	"github.com/reportrack/reportrack/pkg/types"
)

const RELATED_MAJOR_LIMIT = 6

type SearchLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewSearchLogic(ctx context.Context, core *core.Core) *SearchLogic {
	return &SearchLogic{
		ctx:  ctx,
		core: core,
	}
}

// Search 静态关键词解析，任何输入都有结果，不会失败
func (l *SearchLogic) Search(query string) keyword.Result {
	result := l.core.Keywords().Resolve(query)
	if result.Matched {
		l.core.Metrics().KeywordResolvedInc("matched")
	} else {
		l.core.Metrics().KeywordResolvedInc("default")
	}
	return result
}

type SearchResourcesResult struct {
	List          []types.Resource `json:"list"`
	RelatedMajors []string         `json:"related_majors"`
}

// SearchResources 实时库内检索，limit 为 0 时不限制条数
func (l *SearchLogic) SearchResources(query string, limit uint64) (*SearchResourcesResult, error) {
	list, err := l.core.Store().ResourceStore().Search(l.ctx, query, limit)
	if err != nil {
		return nil, errors.New("SearchLogic.SearchResources.ResourceStore.Search", i18n.ERROR_RESOURCE_LOAD_FAIL, err)
	}

	majors := lo.Uniq(lo.FilterMap(list, func(item types.Resource, _ int) (string, bool) {
		return item.Major, item.Major != ""
	}))
	if len(majors) > RELATED_MAJOR_LIMIT {
		majors = majors[:RELATED_MAJOR_LIMIT]
	}

	if list == nil {
		list = []types.Resource{}
	}

	return &SearchResourcesResult{
		List:          list,
		RelatedMajors: majors,
	}, nil
}

// Categories 首页分类内容，来自静态表
func (l *SearchLogic) Categories() []keyword.Category {
	return l.core.Keywords().Categories()
}
