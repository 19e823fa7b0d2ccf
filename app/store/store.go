package store

import (
	"context"

	"github.com/reportrack/reportrack/pkg/types"
)

type ResourceStore interface {
	Create(ctx context.Context, data types.Resource) error
	GetResource(ctx context.Context, id string) (*types.Resource, error)
	Search(ctx context.Context, query string, limit uint64) ([]types.Resource, error)
	List(ctx context.Context, page, pageSize uint64) ([]types.Resource, error)
	Delete(ctx context.Context, id string) error
}

type BookmarkStore interface {
	Create(ctx context.Context, data types.Bookmark) error
	Delete(ctx context.Context, userID, id string) error
	ListUserBookmarks(ctx context.Context, userID string, page, pageSize uint64) ([]types.Bookmark, error)
	Total(ctx context.Context, userID string) (int64, error)
}

type UserStore interface {
	Create(ctx context.Context, data types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateUserProfile(ctx context.Context, id, name, birthDate string) error
	UpdateUserPassword(ctx context.Context, id, salt, password string) error
}
