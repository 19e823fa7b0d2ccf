package service

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reportrack/reportrack/app/core"
	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/app/response"
	"github.com/reportrack/reportrack/cmd/service/handler"
	"github.com/reportrack/reportrack/cmd/service/middleware"
	"github.com/reportrack/reportrack/pkg/metrics"
	"github.com/reportrack/reportrack/pkg/safe"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	srv := &http.Server{
		Addr:    core.Cfg().Addr,
		Handler: core.HttpEngine(),
	}

	go safe.Run(func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server exited", slog.String("error", err.Error()))
			os.Exit(1)
		}
	})

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown", slog.String("error", err.Error()))
	}
}

func GetIPLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		}, opts...)
	}
}

func GetUserLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, key, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			return key + ":" + token.User
		}, opts...)
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors, middleware.Metrics(s.Core))

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", ipLimit("register"), s.Register)
			auth.POST("/login", ipLimit("login"), s.Login)
			auth.POST("/reset-password", ipLimit("reset_password", core.WithLimit(10)), s.ResetPassword)
		}

		apiV1.GET("/search", s.Search)
		resource := apiV1.Group("/resources")
		{
			resource.GET("", s.Search)
			resource.GET("/categories", s.ListResourceCategories)
		}

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		authed.POST("/ai/search", userLimit("ai_search", core.WithLimit(20)), s.AISearch)

		user := authed.Group("/user")
		{
			user.GET("/profile", s.GetUserProfile)
			user.PUT("/profile", userLimit("profile"), s.UpdateUserProfile)
			user.PUT("/password", userLimit("password"), s.UpdateUserPassword)
		}

		bookmark := authed.Group("/bookmarks")
		{
			bookmark.GET("", s.ListBookmarks)
			bookmark.POST("", s.CreateBookmark)
			bookmark.DELETE("/:bookmarkid", s.DeleteBookmark)
		}
	}
}
