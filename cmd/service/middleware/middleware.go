package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reportrack/reportrack/app/core"
	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/app/response"
	"github.com/reportrack/reportrack/pkg/errors"
	"github.com/reportrack/reportrack/pkg/i18n"
	"github.com/reportrack/reportrack/pkg/security"
)

func I18n() gin.HandlerFunc {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}
	l := i18n.NewLocalizer(allowList...)

	return response.ProvideResponseLocalizer(l)
}

const AUTH_TOKEN_HEADER_KEY = "Authorization"

func Authorization(core *core.Core) gin.HandlerFunc {
	tracePrefix := "middleware.Authorization"
	return func(ctx *gin.Context) {
		tokenValue := ctx.GetHeader(AUTH_TOKEN_HEADER_KEY)
		tokenValue = strings.TrimPrefix(tokenValue, "Bearer ")
		if tokenValue == "" {
			response.APIError(ctx, errors.New(tracePrefix, i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized))
			return
		}

		claims, err := security.VerifyJWT(tokenValue, []byte(core.Cfg().Auth.TokenSecret))
		if err != nil {
			response.APIError(ctx, errors.New(tracePrefix+".VerifyJWT", i18n.ERROR_UNAUTHORIZED, err).Code(http.StatusUnauthorized))
			return
		}

		ctx.Set(v1.TOKEN_CONTEXT_KEY, claims)
		ctx.Set("user", claims.User)
	}
}

func Metrics(appCore *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := appCore.Metrics().ApiResponseTimer(c.FullPath())
		c.Next()
		timer.ObserveDuration()

		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			appCore.Metrics().ApiErrorInc(c.Request.Method, c.FullPath(), status)
		}
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization, X-Client-Info, Apikey, Accept-Language")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	if method == "OPTIONS" {
		c.AbortWithStatus(http.StatusOK)
	}
	c.Next()
}

type LimiterFunc func(key string, opts ...core.LimitOption) gin.HandlerFunc

func UseLimit(appCore *core.Core, operation string, genKeyFunc func(c *gin.Context) string, opts ...core.LimitOption) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !appCore.UseLimiter(c, genKeyFunc(c), operation, opts...).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}
