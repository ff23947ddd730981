package models

import "time"

// 固定的心情标签集合
const (
	MoodHappy   = "Happy"
	MoodSad     = "Sad"
	MoodAngry   = "Angry"
	MoodAnxious = "Anxious"
	MoodCalm    = "Calm"
)

// MoodLabels 按展示顺序排列的全部心情标签
var MoodLabels = []string{MoodHappy, MoodSad, MoodAngry, MoodAnxious, MoodCalm}

// IsValidMood 校验标签是否在固定集合内
func IsValidMood(mood string) bool {
	for _, label := range MoodLabels {
		if mood == label {
			return true
		}
	}
	return false
}

// MoodEntry 心情记录模型
// 同一用户同一时间戳允许多条记录，删除必须按ID而不是展示文本
type MoodEntry struct {
	ID       string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username string    `gorm:"type:varchar(100);index" json:"username"`
	Date     time.Time `json:"date"`
	Mood     string    `gorm:"type:varchar(20)" json:"mood"`
}
