package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reportrack/reportrack/pkg/i18n"
)

func Test_Localizer(t *testing.T) {
	l := i18n.NewLocalizer("en", "ko")

	assert.Equal(t, "요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요.", l.Get("ko", i18n.ERROR_AI_RATE_LIMITED))
	assert.Equal(t, "크레딧이 부족합니다. 워크스페이스 설정에서 크레딧을 추가해주세요.", l.Get("ko", i18n.ERROR_AI_QUOTA_EXCEEDED))
	assert.NotEqual(t, l.Get("ko", i18n.ERROR_AI_RATE_LIMITED), l.Get("ko", i18n.ERROR_AI_QUOTA_EXCEEDED))

	// 未知语言或未登记的 key 回退为 key 本身
	assert.Equal(t, i18n.ERROR_INTERNAL, l.Get("fr", i18n.ERROR_INTERNAL))
	assert.Equal(t, "no.such.key", l.Get("ko", "no.such.key"))
}
