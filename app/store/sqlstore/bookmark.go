package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/reportrack/reportrack/pkg/register"
	"github.com/reportrack/reportrack/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.BookmarkStore = NewBookmarkStore(provider)
	})
}

// BookmarkStore 处理 rt_bookmark 表的操作
type BookmarkStore struct {
	CommonFields
}

// NewBookmarkStore 创建新的 BookmarkStore 实例
func NewBookmarkStore(provider SqlProviderAchieve) *BookmarkStore {
	repo := &BookmarkStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_BOOKMARK)
	repo.SetAllColumns("id", "user_id", "title", "url", "description", "category", "bookmark_type", "image_url", "notes", "created_at")
	return repo
}

// Create 创建新的收藏记录
func (s *BookmarkStore) Create(ctx context.Context, data types.Bookmark) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.BookmarkType == "" {
		data.BookmarkType = types.BOOKMARK_TYPE_RESOURCE
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "title", "url", "description", "category", "bookmark_type", "image_url", "notes", "created_at").
		Values(data.ID, data.UserID, data.Title, data.URL, data.Description, data.Category, data.BookmarkType, data.ImageURL, data.Notes, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

// Delete 删除指定用户的收藏记录
func (s *BookmarkStore) Delete(ctx context.Context, userID, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"user_id": userID, "id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// ListUserBookmarks 按创建时间倒序获取用户的收藏列表
func (s *BookmarkStore) ListUserBookmarks(ctx context.Context, userID string, page, pageSize uint64) ([]types.Bookmark, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"user_id": userID}).OrderBy("created_at DESC")
	if page != 0 || pageSize != 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Bookmark
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// Total 获取用户收藏总数
func (s *BookmarkStore) Total(ctx context.Context, userID string) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}
