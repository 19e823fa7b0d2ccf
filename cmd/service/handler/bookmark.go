package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/app/response"
	"github.com/reportrack/reportrack/pkg/utils"
)

func (s *HttpSrv) CreateBookmark(c *gin.Context) {
	var (
		err error
		req v1.CreateBookmarkArgs
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	bookmark, err := v1.NewBookmarkLogic(c, s.Core).Create(req)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, bookmark)
}

func (s *HttpSrv) DeleteBookmark(c *gin.Context) {
	id, _ := c.Params.Get("bookmarkid")

	if err := v1.NewBookmarkLogic(c, s.Core).Delete(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type ListBookmarksRequest struct {
	Page     uint64 `json:"page" form:"page"`
	Pagesize uint64 `json:"pagesize" form:"pagesize"`
}

func (s *HttpSrv) ListBookmarks(c *gin.Context) {
	var (
		err error
		req ListBookmarksRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewBookmarkLogic(c, s.Core).List(req.Page, req.Pagesize)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}
