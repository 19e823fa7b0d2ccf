package types

// Resource 数据库中的学习资料记录，仅由后台维护，对外只读
type Resource struct {
	ID          string `json:"id" db:"id"`                   // 资料唯一标识
	Title       string `json:"title" db:"title"`             // 资料标题
	Description string `json:"description" db:"description"` // 资料描述
	Link        string `json:"link" db:"link"`               // 资料外部链接
	Major       string `json:"major" db:"major"`             // 相关专业
	Type        string `json:"type" db:"type"`               // 资料类型（报告、论文等）
	CreatedAt   int64  `json:"created_at" db:"created_at"`   // 创建时间，UNIX时间戳
}
