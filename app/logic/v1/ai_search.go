package v1

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/reportrack/reportrack/app/core"
	"github.com/reportrack/reportrack/pkg/ai"
	"github.com/reportrack/reportrack/pkg/errors"
	"github.com/reportrack/reportrack/pkg/i18n"
	"github.com/reportrack/reportrack/pkg/types"
)

// AI 检索只取库内前 10 条做上下文
const AI_SEARCH_CONTEXT_LIMIT = 10

const NO_RESOURCE_CONTEXT = "데이터베이스에서 관련 자료를 찾지 못했습니다."

type AISearchLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewAISearchLogic(ctx context.Context, core *core.Core) *AISearchLogic {
	return &AISearchLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx),
	}
}

// BuildGroundingContext 将库内检索结果整理为模型的事实依据
func BuildGroundingContext(resources []types.Resource) string {
	if len(resources) == 0 {
		return NO_RESOURCE_CONTEXT
	}

	orDefault := func(s string) string {
		if s == "" {
			return "없음"
		}
		return s
	}

	var b strings.Builder
	b.WriteString("다음은 데이터베이스에서 찾은 관련 자료입니다:\n\n")
	for i, r := range resources {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. **%s**\n   - 설명: %s\n   - 전공: %s\n   - 유형: %s\n   - 링크: %s",
			i+1, r.Title, orDefault(r.Description), orDefault(r.Major), orDefault(r.Type), orDefault(r.Link))
	}
	return b.String()
}

// Search 库内检索 + 模型流式回答。检索失败不阻断流程，仅降级为无上下文。
func (l *AISearchLogic) Search(query string) (*openai.ChatCompletionStream, error) {
	ctxTimer := l.core.Metrics().GenContextTimer("search")
	resources, err := l.core.Store().ResourceStore().Search(l.ctx, query, AI_SEARCH_CONTEXT_LIMIT)
	if err != nil {
		slog.Error("ai search database lookup failed",
			slog.String("query", query), slog.String("error", err.Error()))
		resources = nil
	}
	groundingContext := BuildGroundingContext(resources)
	ctxTimer.ObserveDuration()

	timer := l.core.Metrics().AIRequestTimer("search")
	stream, err := l.core.AI().SearchStream(l.ctx, query, groundingContext)
	timer.ObserveDuration()
	if err != nil {
		return nil, l.wrapUpstreamError(err)
	}

	return stream, nil
}

func (l *AISearchLogic) wrapUpstreamError(err error) error {
	status := ai.StatusForError(err)
	switch status {
	case http.StatusTooManyRequests:
		l.core.Metrics().AIErrorInc("rate_limited")
		return errors.New("AISearchLogic.Search.SearchStream", i18n.ERROR_AI_RATE_LIMITED, err).Code(http.StatusTooManyRequests)
	case http.StatusPaymentRequired:
		l.core.Metrics().AIErrorInc("quota_exceeded")
		return errors.New("AISearchLogic.Search.SearchStream", i18n.ERROR_AI_QUOTA_EXCEEDED, err).Code(http.StatusPaymentRequired)
	default:
		l.core.Metrics().AIErrorInc("upstream")
		return errors.New("AISearchLogic.Search.SearchStream", i18n.ERROR_AI_SEARCH_FAILED, err).Code(http.StatusInternalServerError)
	}
}
