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
		provider.stores.ResourceStore = NewResourceStore(provider)
	})
}

// ResourceStore 处理 rt_resource 表的操作
type ResourceStore struct {
	CommonFields
}

// NewResourceStore 创建新的 ResourceStore 实例
func NewResourceStore(provider SqlProviderAchieve) *ResourceStore {
	repo := &ResourceStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_RESOURCE)
	repo.SetAllColumns("id", "title", "description", "link", "major", "type", "created_at")
	return repo
}

// Create 创建新的资源记录
func (s *ResourceStore) Create(ctx context.Context, data types.Resource) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "title", "description", "link", "major", "type", "created_at").
		Values(data.ID, data.Title, data.Description, data.Link, data.Major, data.Type, data.CreatedAt)

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

// GetResource 根据ID获取资源记录
func (s *ResourceStore) GetResource(ctx context.Context, id string) (*types.Resource, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Resource
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Search 对标题、描述、学科、类型做模糊匹配，limit 为 0 时不限制条数
func (s *ResourceStore) Search(ctx context.Context, keyword string, limit uint64) ([]types.Resource, error) {
	pattern := "%" + keyword + "%"
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Or{
		sq.ILike{"title": pattern},
		sq.ILike{"description": pattern},
		sq.ILike{"major": pattern},
		sq.ILike{"type": pattern},
	}).OrderBy("created_at DESC")
	if limit != 0 {
		query = query.Limit(limit)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Resource
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// List 分页获取资源记录列表
func (s *ResourceStore) List(ctx context.Context, page, pageSize uint64) ([]types.Resource, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC")
	if page != 0 || pageSize != 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Resource
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// Delete 删除资源记录
func (s *ResourceStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
