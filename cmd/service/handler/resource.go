package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/app/response"
	"github.com/reportrack/reportrack/pkg/keyword"
	"github.com/reportrack/reportrack/pkg/utils"
)

type SearchRequest struct {
	Query string `json:"query" form:"query"`
}

type SearchResponse struct {
	Keyword keyword.Result            `json:"keyword"`
	Live    *v1.SearchResourcesResult `json:"live"`
}

// Search 静态关键词解析 + 实时库内检索。静态解析永不失败，
// 库内检索失败时返回错误信封，由前端降级为空列表。
func (s *HttpSrv) Search(c *gin.Context) {
	var (
		err error
		req SearchRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewSearchLogic(c, s.Core)
	result := logic.Search(req.Query)

	live, err := logic.SearchResources(req.Query, 0)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, SearchResponse{
		Keyword: result,
		Live:    live,
	})
}

type ListCategoriesResponse struct {
	List []keyword.Category `json:"list"`
}

func (s *HttpSrv) ListResourceCategories(c *gin.Context) {
	response.APISuccess(c, ListCategoriesResponse{
		List: v1.NewSearchLogic(c, s.Core).Categories(),
	})
}
