package app

import (
	"AgriSuper/common"
	"AgriSuper/dao"
	"strconv"

	"github.com/gin-gonic/gin"
)

//列表项视图, 不带正文和回答内容
func questionBrief(q *dao.Question) common.H {
	return common.H{
		"id":           q.ID,
		"title":        q.Title,
		"category":     q.Category,
		"farmer_name":  q.FarmerName,
		"posted_date":  q.PostedDate,
		"status":       q.Status,
		"views":        q.Views,
		"likes":        q.Likes,
		"tags":         q.Tags,
		"answer_count": len(q.Answers),
	}
}

func answerView(a *dao.Answer) common.H {
	return common.H{
		"id":            a.ID,
		"expert_name":   a.ExpertName,
		"expert_type":   a.ExpertType,
		"answer":        a.Answer,
		"answer_date":   a.AnswerDate,
		"helpful_votes": a.HelpfulVotes,
		"verified":      a.Verified,
	}
}

//问题列表, category/status为可选过滤条件, 同时生效
func getQuestions(c *gin.Context) {
	questions := dao.Forum().Questions(c.Query("category"), c.Query("status"))
	data := make([]common.H, len(questions))
	for i, q := range questions {
		data[i] = questionBrief(q)
	}
	c.Set("total", len(data))
	c.Set("data", data)
}

//问题详情, 每次获取浏览数+1, 同时附带相关问题
func getQuestion(c *gin.Context) {
	id := c.Query("question_id")
	store := dao.Forum()
	store.IncrementViewCount(id)
	q, ok := store.QuestionByID(id)
	if !ok {
		setError(c, 403, "Not Found")
		return
	}
	answers := make([]common.H, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = answerView(a)
	}
	detail := questionBrief(q)
	detail["question"] = q.Question
	detail["answers"] = answers
	c.Set("question", detail)

	related := store.RelatedQuestions(id, 5)
	relatedData := make([]common.H, len(related))
	for i, item := range related {
		relatedData[i] = questionBrief(item)
	}
	c.Set("related", relatedData)
}

func getRelatedQuestions(c *gin.Context) {
	id := c.Query("question_id")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 || limit > 50 {
		setError(c, 403, "参数错误")
		return
	}
	related := dao.Forum().RelatedQuestions(id, limit)
	data := make([]common.H, len(related))
	for i, q := range related {
		data[i] = questionBrief(q)
	}
	c.Set("data", data)
}

func getCategories(c *gin.Context) {
	c.Set("categories", dao.Forum().Categories())
}

func getExperts(c *gin.Context) {
	c.Set("experts", dao.Forum().Experts(c.Query("specialization")))
}

func getForumStats(c *gin.Context) {
	st := dao.Forum().Stats()
	setMap(c, common.H{
		"total_questions":    st.TotalQuestions,
		"answered_questions": st.AnsweredQuestions,
		"active_experts":     st.ActiveExperts,
		"avg_response_time":  st.AvgResponseTime,
		"satisfaction_rate":  st.SatisfactionRate,
	})
}

//发布新问题
func askQuestion(c *gin.Context) {
	form := new(askValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	tags := common.SplitTags(form.Tags)
	if !dao.Forum().AddQuestion(form.Title, form.Category, form.Question, getUserID(c), getUserName(c), tags) {
		setError(c, 500, "提问失败")
		return
	}
	c.Set("result", "ok")
}

//回答问题
func answerQuestion(c *gin.Context) {
	form := new(answerValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	if !dao.Forum().AddAnswer(form.QuestionID, form.Answer, getUserID(c), getUserName(c)) {
		setError(c, 403, "操作失败, 问题可能不存在")
		return
	}
	c.Set("result", "ok")
}

//问题点赞, 重复点赞不报系统错误, 只提示已点过
func upvoteQuestion(c *gin.Context) {
	if !dao.Forum().UpvoteQuestion(c.Query("question_id"), getUserID(c)) {
		setError(c, 403, "你可能已经点过赞了")
		return
	}
	c.Set("result", "ok")
}

func upvoteAnswer(c *gin.Context) {
	if !dao.Forum().UpvoteAnswer(c.Query("question_id"), c.Query("answer_id"), getUserID(c)) {
		setError(c, 403, "你可能已经点过赞了")
		return
	}
	c.Set("result", "ok")
}

//管理员认证回答
func verifyAnswer(c *gin.Context) {
	if !dao.Forum().VerifyAnswer(c.Query("question_id"), c.Query("answer_id")) {
		setError(c, 403, "操作失败")
		return
	}
	c.Set("result", "ok")
}
