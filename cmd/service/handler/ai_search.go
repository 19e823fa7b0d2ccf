package handler

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/app/response"
	"github.com/reportrack/reportrack/pkg/utils"
)

type AISearchRequest struct {
	Query string `json:"query" form:"query" binding:"required"`
}

// AISearch 透传上游的流式回答。上游每个事件的原始 JSON 按
// "data: <json>\n\n" 帧转发，结束时补发 "data: [DONE]\n\n"。
func (s *HttpSrv) AISearch(c *gin.Context) {
	var (
		err error
		req AISearchRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	stream, err := v1.NewAISearchLogic(c, s.Core).Search(req.Query)
	if err != nil {
		response.APIError(c, err)
		return
	}
	defer stream.Close()

	timer := s.Core.Metrics().AIResponseTimer()
	defer timer.ObserveDuration()

	relayEventStream(c, stream)
}

type rawEventStream interface {
	RecvRaw() ([]byte, error)
}

func relayEventStream(c *gin.Context, stream rawEventStream) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	for {
		raw, err := stream.RecvRaw()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				// 中途断流时直接截断，不补 [DONE]，让客户端丢弃半截内容
				slog.Error("ai search stream interrupted",
					slog.String("error", err.Error()))
				return
			}
			break
		}

		select {
		case <-c.Request.Context().Done():
			return
		default:
		}

		if _, err = c.Writer.WriteString("data: " + string(raw) + "\n\n"); err != nil {
			return
		}
		c.Writer.Flush()
	}

	c.Writer.WriteString("data: [DONE]\n\n")
	c.Writer.Flush()
	c.Abort()
}
