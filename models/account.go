package models

import (
	"time"
)

// Account 用户账号模型
// 密码沿用原设计按明文比较，加固不在本服务范围内
type Account struct {
	ID        string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username  string     `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Password  string     `gorm:"type:varchar(100)" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
