package v1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/reportrack/reportrack/app/logic/v1"
	"github.com/reportrack/reportrack/pkg/security"
	"github.com/reportrack/reportrack/pkg/types"
	"github.com/reportrack/reportrack/pkg/utils"
)

func newAuthedCtx(userID string) context.Context {
	claims := security.NewTokenClaims(userID, "tester", "tester@example.com", time.Now().Add(time.Hour).Unix())
	return context.WithValue(context.Background(), v1.TOKEN_CONTEXT_KEY, claims)
}

func Test_BookmarkLifecycle(t *testing.T) {
	appCore := NewCore(t)
	userID := utils.GenRandomID()
	logic := v1.NewBookmarkLogic(newAuthedCtx(userID), appCore)

	args := v1.CreateBookmarkArgs{
		Title:       "MZ세대 소비 트렌드 분석",
		URL:         "https://example.com/mz",
		Description: "최신 소비 패턴 연구",
		Category:    "경영/경제",
	}

	first, err := logic.Create(args)
	require.NoError(t, err)
	assert.Equal(t, types.BOOKMARK_TYPE_RESOURCE, first.BookmarkType)

	// 重复收藏不做去重
	second, err := logic.Create(args)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	result, err := logic.List(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.List, 2)

	require.NoError(t, logic.Delete(first.ID))
	require.NoError(t, logic.Delete(second.ID))

	result, err = logic.List(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
	assert.Empty(t, result.List)
}

func Test_BookmarkImageType(t *testing.T) {
	appCore := NewCore(t)
	userID := utils.GenRandomID()
	logic := v1.NewBookmarkLogic(newAuthedCtx(userID), appCore)

	bookmark, err := logic.Create(v1.CreateBookmarkArgs{
		Title:        "캠퍼스 풍경",
		BookmarkType: types.BOOKMARK_TYPE_IMAGE,
		ImageURL:     "https://images.example.com/campus.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, types.BOOKMARK_TYPE_IMAGE, bookmark.BookmarkType)
	assert.Equal(t, "https://images.example.com/campus.jpg", bookmark.ImageURL)

	require.NoError(t, logic.Delete(bookmark.ID))
}
