package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/app/response"
	"github.com/reportrack/reportrack/pkg/utils"
)

func (s *HttpSrv) GetUserProfile(c *gin.Context) {
	user, err := v1.NewAuthedUserLogic(c, s.Core).GetUser()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, user)
}

type UpdateUserProfileRequest struct {
	Name      string `json:"name" form:"name" binding:"required,max=32"`
	BirthDate string `json:"birth_date" form:"birth_date"`
}

func (s *HttpSrv) UpdateUserProfile(c *gin.Context) {
	var (
		err error
		req UpdateUserProfileRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewAuthedUserLogic(c, s.Core).UpdateUserProfile(req.Name, req.BirthDate)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

type UpdateUserPasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required"`
}

func (s *HttpSrv) UpdateUserPassword(c *gin.Context) {
	var (
		err error
		req UpdateUserPasswordRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewAuthedUserLogic(c, s.Core).UpdateUserPassword(req.OldPassword, req.NewPassword)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
