package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const NAME = "gateway"

type Config struct {
	Endpoint  string `toml:"endpoint"`   // OpenAI 兼容网关地址
	Token     string `toml:"token"`      // 网关密钥
	ChatModel string `toml:"chat_model"` // 如 google/gemini-2.5-flash
}

func (c *Config) FromENV(getenv func(string) string) {
	if v := getenv("RT_AI_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := getenv("RT_AI_TOKEN"); v != "" {
		c.Token = v
	}
	if v := getenv("RT_AI_CHAT_MODEL"); v != "" {
		c.ChatModel = v
	}
}

// Gateway 托管 LLM 网关客户端
type Gateway struct {
	client *openai.Client
	model  string
}

func New(cfg Config) *Gateway {
	ocfg := openai.DefaultConfig(cfg.Token)
	if cfg.Endpoint != "" {
		ocfg.BaseURL = cfg.Endpoint
	}

	model := cfg.ChatModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Gateway{
		client: openai.NewClientWithConfig(ocfg),
		model:  model,
	}
}

// SearchStream 发起流式搜索问答请求，groundingContext 为数据库检索出的资料上下文
func (s *Gateway) SearchStream(ctx context.Context, query, groundingContext string) (*openai.ChatCompletionStream, error) {
	slog.Debug("SearchStream", slog.String("driver", NAME), slog.String("model", s.model))

	req := openai.ChatCompletionRequest{
		Model:  s.model,
		Stream: true,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: searchAssistantPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("검색 주제: %q\n\n%s", query, groundingContext),
			},
		},
	}

	return s.client.CreateChatCompletionStream(ctx, req)
}

// StatusForError 从网关错误中提取上游 HTTP 状态码，无法识别时返回 500
func StatusForError(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}

	return http.StatusInternalServerError
}
