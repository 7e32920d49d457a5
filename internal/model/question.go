package model

// AnswerCount 每道题固定的选项数量
const AnswerCount = 4

// Question 单选题，四个选项，正确答案以下标标记
// swagger:model Question
type Question struct {
	UUIDBase
	Question           string   `gorm:"type:text;not null" json:"question"`
	Answers            []string `gorm:"type:json;serializer:json" json:"answers"`
	CorrectAnswerIndex int      `gorm:"not null" json:"correctAnswerIndex"`
	Channel            string   `gorm:"size:255;not null;index" json:"channel"`
	Course             string   `gorm:"size:255;not null;index" json:"course"`
	Topic              string   `gorm:"size:255;not null;index" json:"topic"`
	Lecture            string   `gorm:"size:255;not null;index" json:"lecture"`
}

func (Question) TableName() string {
	return "questions"
}

// CorrectAnswer 按下标解析正确答案文本
func (q *Question) CorrectAnswer() string {
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Answers) {
		return ""
	}
	return q.Answers[q.CorrectAnswerIndex]
}

// QuestionFilter 按分类标签过滤题目。匹配策略：TrimSpace 后精确比较，区分大小写。
type QuestionFilter struct {
	Channel string `form:"channel" json:"channel"`
	Course  string `form:"course" json:"course"`
	Topic   string `form:"topic" json:"topic"`
	Lecture string `form:"lessons" json:"lecture"`
}

// Matches 判断题目是否满足过滤条件（空字段表示不限制）
func (f QuestionFilter) Matches(q *Question) bool {
	if f.Channel != "" && q.Channel != f.Channel {
		return false
	}
	if f.Course != "" && q.Course != f.Course {
		return false
	}
	if f.Topic != "" && q.Topic != f.Topic {
		return false
	}
	if f.Lecture != "" && q.Lecture != f.Lecture {
		return false
	}
	return true
}
