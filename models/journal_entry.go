package models

import "time"

// JournalEntry 日记模型
// 创建后仅 Content 可修改，Title 和 Date 不可变
type JournalEntry struct {
	ID       string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username string    `gorm:"type:varchar(100);index" json:"username"`
	Date     time.Time `json:"date"`
	Title    string    `gorm:"type:varchar(200)" json:"title"`
	Content  string    `gorm:"type:text" json:"content"`
}
