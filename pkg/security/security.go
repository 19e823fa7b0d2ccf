package security

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	TOKEN_KEY = "Authorization"
)

// TokenClaims 会话令牌内容，携带用户身份
type TokenClaims struct {
	User  string `json:"u"` // 用户唯一标识
	Name  string `json:"n"` // 用户名
	Email string `json:"e"` // 用户邮箱
	jwt.StandardClaims
}

func NewTokenClaims(userID, name, email string, expireTime int64) TokenClaims {
	return TokenClaims{
		User:  userID,
		Name:  name,
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime,
			NotBefore: time.Now().Unix() - 1,
		},
	}
}

func (t TokenClaims) GetUser() string {
	return t.User
}

func GenerateJWT(info TokenClaims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, info)
	return token.SignedString(secret)
}

func VerifyJWT(tokenValue string, secret []byte) (TokenClaims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenValue, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return claims, err
	}
	if !token.Valid {
		return claims, fmt.Errorf("invalid token")
	}
	return claims, nil
}
