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
		provider.stores.UserStore = NewUserStore(provider)
	})
}

// UserStore 处理 rt_user 表的操作
type UserStore struct {
	CommonFields
}

// NewUserStore 创建新的 UserStore 实例
func NewUserStore(provider SqlProviderAchieve) *UserStore {
	repo := &UserStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_USER)
	repo.SetAllColumns("id", "name", "email", "salt", "password", "birth_date", "updated_at", "created_at")
	return repo
}

// Create 创建新的用户记录
func (s *UserStore) Create(ctx context.Context, data types.User) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "name", "email", "salt", "password", "birth_date", "updated_at", "created_at").
		Values(data.ID, data.Name, data.Email, data.Salt, data.Password, data.BirthDate, data.UpdatedAt, data.CreatedAt)

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

// GetUser 根据ID获取用户记录
func (s *UserStore) GetUser(ctx context.Context, id string) (*types.User, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.User
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetByEmail 根据邮箱获取用户记录
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"email": email})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.User
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateUserProfile 更新用户资料
func (s *UserStore) UpdateUserProfile(ctx context.Context, id, name, birthDate string) error {
	query := sq.Update(s.GetTable()).
		Set("name", name).
		Set("birth_date", birthDate).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// UpdateUserPassword 更新用户密码
func (s *UserStore) UpdateUserPassword(ctx context.Context, id, salt, password string) error {
	query := sq.Update(s.GetTable()).
		Set("salt", salt).
		Set("password", password).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
