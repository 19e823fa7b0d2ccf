package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/reportrack/reportrack/app/store/sqlstore"
	"github.com/reportrack/reportrack/pkg/ai"
	"github.com/reportrack/reportrack/pkg/keyword"
	"github.com/reportrack/reportrack/pkg/mail"
)

const DEFAULT_TOKEN_EXPIRE_HOURS = 72

type Core struct {
	cfg CoreConfig

	stores     func() *sqlstore.Provider
	httpEngine *gin.Engine

	metrics  *Metrics
	ai       *ai.Gateway
	mail     *mail.Sender
	keywords *keyword.Table
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	if cfg.Auth.TokenExpireHours <= 0 {
		cfg.Auth.TokenExpireHours = DEFAULT_TOKEN_EXPIRE_HOURS
	}

	engine := gin.New()
	// 让 gin context 透传请求级 cancel，流式转发依赖它
	engine.ContextWithFallback = true

	core := &Core{
		cfg:        cfg,
		metrics:    NewMetrics("reportrack", "core"),
		httpEngine: engine,
		ai:         ai.New(cfg.AI),
		mail:       mail.NewSender(cfg.Mail),
		keywords:   keyword.MustLoad(cfg.Keyword.Path),
	}

	// setup store
	setupSqlStore(core)

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	// 执行数据库表初始化
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
	fmt.Println("setupSqlStore done")
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) AI() *ai.Gateway {
	return s.ai
}

func (s *Core) Mail() *mail.Sender {
	return s.mail
}

func (s *Core) Keywords() *keyword.Table {
	return s.keywords
}
