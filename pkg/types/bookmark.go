package types

const (
	BOOKMARK_TYPE_RESOURCE = "resource"
	BOOKMARK_TYPE_IMAGE    = "image"
)

// Bookmark 用户收藏记录。字段是收藏时从资料复制的快照，
// 与 rt_resource 没有外键关系，资料后续变更不会影响已有收藏。
type Bookmark struct {
	ID           string `json:"id" db:"id"`                       // 收藏唯一标识
	UserID       string `json:"user_id" db:"user_id"`             // 所属用户
	Title        string `json:"title" db:"title"`                 // 收藏时的资料标题
	URL          string `json:"url" db:"url"`                     // 收藏时的资料链接
	Description  string `json:"description" db:"description"`     // 收藏时的资料描述
	Category     string `json:"category" db:"category"`           // 收藏时的分类（专业/学院）
	BookmarkType string `json:"bookmark_type" db:"bookmark_type"` // resource | image
	ImageURL     string `json:"image_url" db:"image_url"`         // 图片类收藏的图片地址
	Notes        string `json:"notes" db:"notes"`                 // 用户备注
	CreatedAt    int64  `json:"created_at" db:"created_at"`       // 创建时间，UNIX时间戳
}
