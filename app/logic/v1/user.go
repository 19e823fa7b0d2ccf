package v1

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/reportrack/reportrack/app/core"
	"github.com/reportrack/reportrack/pkg/errors"
	"github.com/reportrack/reportrack/pkg/i18n"
	"github.com/reportrack/reportrack/pkg/utils"
)

type UserBaseInfo struct {
	ID        string `json:"id" db:"id"`                 // 用户ID，主键
	Name      string `json:"name" db:"name"`             // 用户名
	Email     string `json:"email" db:"email"`           // 用户邮箱，唯一约束
	BirthDate string `json:"birth_date" db:"birth_date"` // 出生日期
	UpdatedAt int64  `json:"updated_at" db:"updated_at"` // 更新时间，Unix时间戳
	CreatedAt int64  `json:"created_at" db:"created_at"` // 创建时间，Unix时间戳
}

type AuthedUserLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewAuthedUserLogic(ctx context.Context, core *core.Core) *AuthedUserLogic {
	l := &AuthedUserLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx),
	}

	return l
}

func (l *AuthedUserLogic) GetUser() (*UserBaseInfo, error) {
	user, err := l.core.Store().UserStore().GetUser(l.ctx, l.GetUserInfo().User)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("AuthedUserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	if user == nil {
		return nil, errors.New("AuthedUserLogic.GetUser.UserStore.GetUser.nil", i18n.ERROR_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	return &UserBaseInfo{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		BirthDate: user.BirthDate,
		UpdatedAt: user.UpdatedAt,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (l *AuthedUserLogic) UpdateUserProfile(userName, birthDate string) error {
	err := l.core.Store().UserStore().UpdateUserProfile(l.ctx, l.GetUserInfo().User, userName, birthDate)
	if err != nil {
		return errors.New("AuthedUserLogic.UpdateUserProfile.UserStore.UpdateUserProfile", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *AuthedUserLogic) UpdateUserPassword(oldPassword, newPassword string) error {
	if len(newPassword) < MIN_PASSWORD_LENGTH {
		return errors.New("AuthedUserLogic.UpdateUserPassword.length", i18n.ERROR_PASSWORD_TOO_SHORT, nil).Code(http.StatusBadRequest)
	}

	user, err := l.core.Store().UserStore().GetUser(l.ctx, l.GetUserInfo().User)
	if err != nil {
		return errors.New("AuthedUserLogic.UpdateUserPassword.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}

	if user.Password != utils.GenUserPassword(user.Salt, oldPassword) {
		return errors.New("AuthedUserLogic.UpdateUserPassword.check", i18n.ERROR_PASSWORD_NOT_MATCH, nil).Code(http.StatusBadRequest)
	}

	salt := utils.RandomStr(10)
	if err = l.core.Store().UserStore().UpdateUserPassword(l.ctx, user.ID, salt, utils.GenUserPassword(salt, newPassword)); err != nil {
		return errors.New("AuthedUserLogic.UpdateUserPassword.UserStore.UpdateUserPassword", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
