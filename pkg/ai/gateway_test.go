package ai_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportrack/reportrack/pkg/ai"
)

func Test_SearchStream(t *testing.T) {
	chunks := []string{
		`{"id":"1","object":"chat.completion.chunk","created":1,"model":"test","choices":[{"index":0,"delta":{"content":"📘 **제목:** "}}]}`,
		`{"id":"1","object":"chat.completion.chunk","created":1,"model":"test","choices":[{"index":0,"delta":{"content":"MZ세대 소비"}}]}`,
		`{"id":"1","object":"chat.completion.chunk","created":1,"model":"test","choices":[{"index":0,"delta":{"content":" 트렌드"}}]}`,
	}

	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range chunks {
			fmt.Fprintf(w, "data: %s\n\n", chunk)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	gateway := ai.New(ai.Config{
		Endpoint:  srv.URL + "/v1",
		Token:     "test-token",
		ChatModel: "test",
	})

	stream, err := gateway.SearchStream(context.Background(), "MZ세대", "데이터베이스에서 관련 자료를 찾지 못했습니다.")
	require.NoError(t, err)
	defer stream.Close()

	var answer strings.Builder
	var received int
	for {
		raw, err := stream.RecvRaw()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		assert.Equal(t, chunks[received], string(raw))
		received++

		var resp openai.ChatCompletionStreamResponse
		require.NoError(t, json.Unmarshal(raw, &resp))
		answer.WriteString(resp.Choices[0].Delta.Content)
	}

	assert.Equal(t, len(chunks), received)
	assert.Equal(t, "📘 **제목:** MZ세대 소비 트렌드", answer.String())

	var req openai.ChatCompletionRequest
	require.NoError(t, json.Unmarshal(gotBody, &req))
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, `검색 주제: "MZ세대"`)
	assert.Contains(t, req.Messages[1].Content, "데이터베이스에서 관련 자료를 찾지 못했습니다.")
	assert.True(t, req.Stream)
}

func Test_SearchStream_UpstreamStatus(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusPaymentRequired} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":{"message":"denied","type":"gateway"}}`)
		}))

		gateway := ai.New(ai.Config{Endpoint: srv.URL + "/v1", Token: "test-token"})
		_, err := gateway.SearchStream(context.Background(), "q", "ctx")
		require.Error(t, err)
		assert.Equal(t, status, ai.StatusForError(err))

		srv.Close()
	}
}

func Test_StatusForError(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, ai.StatusForError(&openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}))
	assert.Equal(t, http.StatusPaymentRequired, ai.StatusForError(&openai.RequestError{HTTPStatusCode: http.StatusPaymentRequired}))
	assert.Equal(t, http.StatusInternalServerError, ai.StatusForError(fmt.Errorf("boom")))
}
