package v1

import (
	"context"
	"log/slog"

	"github.com/reportrack/reportrack/pkg/security"
)

const (
	TOKEN_CONTEXT_KEY = "__rt.access_token"
	LANGUAGE_KEY      = "__rt.accept_language"
)

// InjectTokenClaim get user token claims from context
func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	val, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return val, ok
}

func InjectLanguage(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(LANGUAGE_KEY).(string)
	return val, ok
}

type _userInfo struct {
	u *security.TokenClaims
}

func (u *_userInfo) GetUserInfo() security.TokenClaims {
	return *u.u
}

func SetupUserInfo(ctx context.Context) UserInfo {
	userInfo, ok := InjectTokenClaim(ctx)
	if !ok {
		slog.Error("Not found user in context", slog.String("component", "logic.v1.setupUserInfo"))
		userInfo = security.TokenClaims{}
	}
	return &_userInfo{
		u: &userInfo,
	}
}

type UserInfo interface {
	GetUserInfo() security.TokenClaims
}
