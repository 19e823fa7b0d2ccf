package v1

import (
	"context"

	"github.com/reportrack/reportrack/app/core"
	"github.com/reportrack/reportrack/pkg/errors"
	"github.com/reportrack/reportrack/pkg/i18n"
	"github.com/reportrack/reportrack/pkg/types"
	"github.com/reportrack/reportrack/pkg/utils"
)

type BookmarkLogic struct {
	UserInfo
	ctx  context.Context
	core *core.Core
}

func NewBookmarkLogic(ctx context.Context, core *core.Core) *BookmarkLogic {
	return &BookmarkLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx),
	}
}

type CreateBookmarkArgs struct {
	Title        string `json:"title" binding:"required"`
	URL          string `json:"url"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	BookmarkType string `json:"bookmark_type"`
	ImageURL     string `json:"image_url"`
	Notes        string `json:"notes"`
}

// Create 收藏即快照，不做去重，重复收藏产生多条记录
func (l *BookmarkLogic) Create(args CreateBookmarkArgs) (*types.Bookmark, error) {
	data := types.Bookmark{
		ID:           utils.GenRandomID(),
		UserID:       l.GetUserInfo().User,
		Title:        args.Title,
		URL:          args.URL,
		Description:  args.Description,
		Category:     args.Category,
		BookmarkType: args.BookmarkType,
		ImageURL:     args.ImageURL,
		Notes:        args.Notes,
	}
	if data.BookmarkType == "" {
		data.BookmarkType = types.BOOKMARK_TYPE_RESOURCE
	}

	if err := l.core.Store().BookmarkStore().Create(l.ctx, data); err != nil {
		return nil, errors.New("BookmarkLogic.Create.BookmarkStore.Create", i18n.ERROR_BOOKMARK_SAVE_FAIL, err)
	}
	return &data, nil
}

func (l *BookmarkLogic) Delete(id string) error {
	if err := l.core.Store().BookmarkStore().Delete(l.ctx, l.GetUserInfo().User, id); err != nil {
		return errors.New("BookmarkLogic.Delete.BookmarkStore.Delete", i18n.ERROR_BOOKMARK_SAVE_FAIL, err)
	}
	return nil
}

type ListBookmarksResult struct {
	List  []types.Bookmark `json:"list"`
	Total int64            `json:"total"`
}

func (l *BookmarkLogic) List(page, pageSize uint64) (*ListBookmarksResult, error) {
	userID := l.GetUserInfo().User
	list, err := l.core.Store().BookmarkStore().ListUserBookmarks(l.ctx, userID, page, pageSize)
	if err != nil {
		return nil, errors.New("BookmarkLogic.List.BookmarkStore.ListUserBookmarks", i18n.ERROR_BOOKMARK_LOAD_FAIL, err)
	}

	total, err := l.core.Store().BookmarkStore().Total(l.ctx, userID)
	if err != nil {
		return nil, errors.New("BookmarkLogic.List.BookmarkStore.Total", i18n.ERROR_BOOKMARK_LOAD_FAIL, err)
	}

	if list == nil {
		list = []types.Bookmark{}
	}

	return &ListBookmarksResult{
		List:  list,
		Total: total,
	}, nil
}
