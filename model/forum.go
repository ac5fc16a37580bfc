package model

//问题状态
const (
	StatusOpen     = "Open"     //未回答
	StatusAnswered = "Answered" //已回答
	StatusResolved = "Resolved" //已解决(保留状态, 暂无操作会产生)
)

//农民提出的问题, 问答论坛整体保存在一个json文档中, 不走数据库表
type Question struct {
	ID       string `json:"id"` //形如 Q0001, 单调递增分配
	Title    string `json:"title"`
	Category string `json:"category"`
	Question string `json:"question"` //问题正文

	FarmerID   int64  `json:"farmer_id"`
	FarmerName string `json:"farmer_name"`
	Location   string `json:"farmer_location,omitempty"` //种子数据携带
	CropType   string `json:"crop_type,omitempty"`
	Urgency    string `json:"urgency,omitempty"`

	PostedDate string   `json:"posted_date"` //日期, 形如 2006-01-02
	Status     string   `json:"status"`
	Tags       []string `json:"tags,omitempty"`

	Views   uint      `json:"views"`              //只增不减
	Likes   uint      `json:"likes"`              //点赞数, 只增不减
	VotedBy []int64   `json:"voted_by,omitempty"` //点过赞的用户, 防止重复投票
	Answers []*Answer `json:"answers"`            //按插入顺序
}

//问题下的回答
type Answer struct {
	ID         string `json:"id"`          //形如 A0001-2, 问题号+序号, 问题内唯一
	QuestionID string `json:"question_id"` //反向引用
	ExpertID   int64  `json:"expert_id"`
	ExpertName string `json:"expert_name"`
	ExpertType string `json:"expert_type"` //角色标签, 如 Agricultural Scientist / Community Member
	Answer     string `json:"answer"`      //回答正文
	AnswerDate string `json:"answer_date"`

	HelpfulVotes uint    `json:"helpful_votes"`
	VotedBy      []int64 `json:"voted_by,omitempty"`
	Verified     bool    `json:"verified"`
}

//专家名册, 种子数据生成
type Expert struct {
	ID              string  `json:"id"` //形如 EXP001
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	Qualification   string  `json:"qualification"`
	ExperienceYears int     `json:"experience_years"`
	AnswersGiven    int     `json:"answers_given"`
	Rating          float64 `json:"rating"`
	Location        string  `json:"location"`
	Contact         string  `json:"contact"`
	Availability    string  `json:"availability"`
}

//论坛汇总, 计数类字段按需从语料重新计算, 文档里只存展示串
type ForumStats struct {
	TotalQuestions    int    `json:"total_questions"`
	AnsweredQuestions int    `json:"answered_questions"`
	ActiveExperts     int    `json:"active_experts"`
	AvgResponseTime   string `json:"avg_response_time"`
	SatisfactionRate  string `json:"satisfaction_rate"`
}

//整个论坛的持久化文档, 每次变更整体重写
type ForumDocument struct {
	Questions  []*Question `json:"questions"` //最新的在最前
	Experts    []Expert    `json:"experts"`
	Categories []string    `json:"categories"`
	Stats      ForumStats  `json:"forum_stats"`
}
