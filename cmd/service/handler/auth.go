package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/app/response"
	"github.com/reportrack/reportrack/pkg/i18n"
	"github.com/reportrack/reportrack/pkg/utils"
)

type RegisterRequest struct {
	Name      string `json:"name" form:"name" binding:"required,max=32"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required"`
	BirthDate string `json:"birth_date" form:"birth_date"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

func (s *HttpSrv) Register(c *gin.Context) {
	var (
		err error
		req RegisterRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	userID, err := v1.NewAuthLogic(c, s.Core).Register(req.Name, req.Email, req.Password, req.BirthDate)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, RegisterResponse{
		UserID: userID,
	})
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (s *HttpSrv) Login(c *gin.Context) {
	var (
		err error
		req LoginRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewAuthLogic(c, s.Core).Login(req.Email, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}

type ResetPasswordRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type ResetPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *HttpSrv) ResetPassword(c *gin.Context) {
	var (
		err error
		req ResetPasswordRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewAuthLogic(c, s.Core).ResetPassword(req.Email); err != nil {
		response.APIError(c, err)
		return
	}

	l := response.InjectResponseLocalizer(c)
	response.APISuccess(c, ResetPasswordResponse{
		Success: true,
		Message: l.Get(response.GetLangFromRequestOrDefault(c), i18n.MESSAGE_RESET_PASSWORD_SENT),
	})
}
