package model

// AnswerResult 单题作答结果，内嵌于 Result 的 result 数组
type AnswerResult struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
	Correct        bool   `json:"correct"`
}

// Result 一次被接受的答题提交及其评分
// swagger:model Result
type Result struct {
	UUIDBase
	// UserID 存储的是随机生成标识的 bcrypt 哈希，原始标识只在创建响应中返回一次
	UserID          string         `gorm:"size:255;not null" json:"userId"`
	Username        string         `gorm:"size:255;not null;index" json:"username"`
	Result          []AnswerResult `gorm:"type:json;serializer:json" json:"result"`
	Attempts        int            `gorm:"not null" json:"attempts"`
	Points          int            `gorm:"not null" json:"points"`
	Achieved        string         `gorm:"size:20;not null" json:"achieved"`
	PassedQuestions int            `gorm:"not null" json:"passedQuestions"`
	TotalQuestions  int            `gorm:"not null" json:"totalQuestions"`
	PercentageScore float64        `gorm:"not null" json:"percentageScore"`
}

func (Result) TableName() string {
	return "results"
}
