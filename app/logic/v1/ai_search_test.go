package v1_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/pkg/types"
)

func Test_BuildGroundingContext_Empty(t *testing.T) {
	assert.Equal(t, "데이터베이스에서 관련 자료를 찾지 못했습니다.", v1.BuildGroundingContext(nil))
	assert.Equal(t, "데이터베이스에서 관련 자료를 찾지 못했습니다.", v1.BuildGroundingContext([]types.Resource{}))
}

func Test_BuildGroundingContext(t *testing.T) {
	got := v1.BuildGroundingContext([]types.Resource{
		{
			Title:       "MZ세대 소비 트렌드 분석",
			Description: "최신 소비 패턴 연구",
			Major:       "경영학",
			Type:        "논문",
			Link:        "https://example.com/mz",
		},
		{
			Title: "ESG 입문",
		},
	})

	assert.True(t, strings.HasPrefix(got, "다음은 데이터베이스에서 찾은 관련 자료입니다:\n\n"))
	assert.Contains(t, got, "1. **MZ세대 소비 트렌드 분석**")
	assert.Contains(t, got, "- 설명: 최신 소비 패턴 연구")
	assert.Contains(t, got, "- 전공: 경영학")
	assert.Contains(t, got, "- 유형: 논문")
	assert.Contains(t, got, "- 링크: https://example.com/mz")

	// 빈 필드는 "없음"으로 채운다
	assert.Contains(t, got, "2. **ESG 입문**")
	assert.Contains(t, got, "- 설명: 없음")
	assert.Contains(t, got, "- 링크: 없음")
}
