package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/reportrack/reportrack/app/core"
	"github.com/reportrack/reportrack/pkg/errors"
	"github.com/reportrack/reportrack/pkg/i18n"
	"github.com/reportrack/reportrack/pkg/security"
	"github.com/reportrack/reportrack/pkg/types"
	"github.com/reportrack/reportrack/pkg/utils"
)

const MIN_PASSWORD_LENGTH = 6

// logic for unlogin
type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	l := &AuthLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *AuthLogic) Register(name, email, password, birthDate string) (string, error) {
	if len(password) < MIN_PASSWORD_LENGTH {
		return "", errors.New("AuthLogic.Register.Password.length", i18n.ERROR_PASSWORD_TOO_SHORT, nil).Code(http.StatusBadRequest)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	exist, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
	if err != nil && err != sql.ErrNoRows {
		return "", errors.New("AuthLogic.Register.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return "", errors.New("AuthLogic.Register.Email.exist", i18n.ERROR_EMAIL_ALREADY_USED, nil).Code(http.StatusBadRequest)
	}

	salt := utils.RandomStr(10)
	userID := utils.GenRandomID()

	err = l.core.Store().UserStore().Create(l.ctx, types.User{
		ID:        userID,
		Name:      name,
		Email:     email,
		Salt:      salt,
		Password:  utils.GenUserPassword(salt, password),
		BirthDate: birthDate,
		UpdatedAt: time.Now().Unix(),
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", errors.New("AuthLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
	}

	return userID, nil
}

type LoginResult struct {
	Token string       `json:"token"`
	User  UserBaseInfo `json:"user"`
}

func (l *AuthLogic) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthLogic.Login.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}

	if user == nil || user.Password != utils.GenUserPassword(user.Salt, password) {
		return nil, errors.New("AuthLogic.Login.Password.check", i18n.ERROR_INVALID_ACCOUNT, err).Code(http.StatusBadRequest)
	}

	expireAt := time.Now().Add(time.Hour * time.Duration(l.core.Cfg().Auth.TokenExpireHours)).Unix()
	claims := security.NewTokenClaims(user.ID, user.Name, user.Email, expireAt)
	token, err := security.GenerateJWT(claims, []byte(l.core.Cfg().Auth.TokenSecret))
	if err != nil {
		return nil, errors.New("AuthLogic.Login.GenerateJWT", i18n.ERROR_INTERNAL, err)
	}

	return &LoginResult{
		Token: token,
		User: UserBaseInfo{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			BirthDate: user.BirthDate,
			UpdatedAt: user.UpdatedAt,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// ResetPassword 给注册邮箱下发临时密码。无论邮箱是否存在，对外都返回成功，
// 避免暴露账号注册状态。
func (l *AuthLogic) ResetPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := l.core.Store().UserStore().GetByEmail(l.ctx, email)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("AuthLogic.ResetPassword.UserStore.GetByEmail", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return nil
	}

	tempPassword, err := utils.GenTempPassword()
	if err != nil {
		return errors.New("AuthLogic.ResetPassword.GenTempPassword", i18n.ERROR_RESET_PASSWORD_FAIL, err)
	}

	salt := utils.RandomStr(10)
	if err = l.core.Store().UserStore().UpdateUserPassword(l.ctx, user.ID, salt, utils.GenUserPassword(salt, tempPassword)); err != nil {
		return errors.New("AuthLogic.ResetPassword.UserStore.UpdateUserPassword", i18n.ERROR_RESET_PASSWORD_FAIL, err)
	}

	if err = l.core.Mail().SendTempPassword(l.ctx, user.Email, tempPassword); err != nil {
		l.core.Metrics().MailSendInc("failed")
		return errors.New("AuthLogic.ResetPassword.Mail.SendTempPassword", i18n.ERROR_RESET_PASSWORD_FAIL, err)
	}
	l.core.Metrics().MailSendInc("ok")

	return nil
}
