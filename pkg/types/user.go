package types

type User struct {
	ID        string `json:"id" db:"id"`                 // 用户ID，主键
	Name      string `json:"name" db:"name"`             // 用户名
	Email     string `json:"email" db:"email"`           // 用户邮箱，唯一约束
	Salt      string `json:"-" db:"salt"`                // 密码盐
	Password  string `json:"-" db:"password"`            // 密码散列
	BirthDate string `json:"birth_date" db:"birth_date"` // 生日 YYYY-MM-DD
	UpdatedAt int64  `json:"updated_at" db:"updated_at"` // 更新时间，Unix时间戳
	CreatedAt int64  `json:"created_at" db:"created_at"` // 创建时间，Unix时间戳
}
