package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type scriptedEventStream struct {
	frames [][]byte
	err    error
}

func (s *scriptedEventStream) RecvRaw() ([]byte, error) {
	if len(s.frames) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	raw := s.frames[0]
	s.frames = s.frames[1:]
	return raw, nil
}

func serveRelay(t *testing.T, stream rawEventStream) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.POST("/ai/search", func(c *gin.Context) {
		relayEventStream(c, stream)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/search", nil)
	e.ServeHTTP(w, req)
	return w
}

func Test_RelayEventStream(t *testing.T) {
	stream := &scriptedEventStream{frames: [][]byte{
		[]byte(`{"choices":[{"delta":{"content":"📘 **제목:**"}}]}`),
		[]byte(`{"choices":[{"delta":{"content":" MZ세대 소비 트렌드"}}]}`),
	}}

	w := serveRelay(t, stream)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t,
		"data: {\"choices\":[{\"delta\":{\"content\":\"📘 **제목:**\"}}]}\n\n"+
			"data: {\"choices\":[{\"delta\":{\"content\":\" MZ세대 소비 트렌드\"}}]}\n\n"+
			"data: [DONE]\n\n",
		w.Body.String())
}

func Test_RelayEventStream_Interrupted(t *testing.T) {
	stream := &scriptedEventStream{
		frames: [][]byte{[]byte(`{"choices":[{"delta":{"content":"📘"}}]}`)},
		err:    errors.New("unexpected EOF"),
	}

	w := serveRelay(t, stream)

	// 断流只转发已到的帧，不能补 [DONE] 冒充正常结束
	assert.Equal(t, "data: {\"choices\":[{\"delta\":{\"content\":\"📘\"}}]}\n\n", w.Body.String())
	assert.NotContains(t, w.Body.String(), "[DONE]")
}
