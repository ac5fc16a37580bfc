package dao

import (
	"AgriSuper/common"
	"AgriSuper/model"
	"encoding/json"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type (
	Question      = model.Question
	Answer        = model.Answer
	Expert        = model.Expert
	ForumStats    = model.ForumStats
	ForumDocument = model.ForumDocument
)

const forumDataFile = "qa_forum_data.json"

//问答论坛. 全部数据保存在一个json文档里, 每次写操作是一次整体的读改写,
//所有操作共用一把锁, 写文件先写临时文件再rename, 失败不落半截数据.
//所有写操作只返回成功与否, 不向调用方抛错误(找不到/重复投票/落盘失败都算失败).
type ForumStore struct {
	mu   sync.Mutex
	file string
	data *ForumDocument
}

//从dataFolder加载论坛文档, 文件不存在时生成默认数据并落盘
func NewForumStore(dataFolder string) (*ForumStore, error) {
	if err := os.MkdirAll(dataFolder, os.ModePerm); err != nil {
		return nil, err
	}
	s := &ForumStore{file: filepath.Join(dataFolder, forumDataFile)}
	if yes, _ := common.PathExists(s.file); !yes {
		s.data = GenerateForumData(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now())
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}
	bt, err := ioutil.ReadFile(s.file)
	if err != nil {
		return nil, err
	}
	doc := &ForumDocument{}
	if err := json.Unmarshal(bt, doc); err != nil {
		return nil, err
	}
	s.data = doc
	return s, nil
}

//整体重写文档. 先写同目录下的临时文件再rename, 写坏不会截断原文件
func (s *ForumStore) persist() error {
	bt, err := json.MarshalIndent(s.data, "", "    ")
	if err != nil {
		return err
	}
	tmp := s.file + ".tmp"
	if err := ioutil.WriteFile(tmp, bt, os.ModePerm); err != nil {
		return err
	}
	return os.Rename(tmp, s.file)
}

func (s *ForumStore) persistOr(undo func()) bool {
	if err := s.persist(); err != nil {
		undo()
		log.Println("论坛数据写入失败:", err)
		return false
	}
	return true
}

func (s *ForumStore) findQuestion(id string) *Question {
	for _, q := range s.data.Questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

//按分类和状态过滤(条件同时满足, 空串表示不过滤), 按提问日期降序,
//同一天的保持文档内顺序(新问题插在最前)
func (s *ForumStore) Questions(category, status string) []*Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make([]*Question, 0)
	for _, q := range s.data.Questions {
		if category != "" && q.Category != category {
			continue
		}
		if status != "" && q.Status != status {
			continue
		}
		ret = append(ret, q)
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].PostedDate > ret[j].PostedDate
	})
	return ret
}

func (s *ForumStore) QuestionByID(id string) (*Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuestion(id)
	return q, q != nil
}

func (s *ForumStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make([]string, len(s.data.Categories))
	copy(ret, s.data.Categories)
	return ret
}

func (s *ForumStore) Experts(specialization string) []Expert {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make([]Expert, 0)
	for _, e := range s.data.Experts {
		if specialization != "" && e.Specialization != specialization {
			continue
		}
		ret = append(ret, e)
	}
	return ret
}

//汇总信息. 计数从语料现算, 不维护独立计数器, 展示串取自文档
func (s *ForumStore) Stats() ForumStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := ForumStats{
		TotalQuestions:   len(s.data.Questions),
		ActiveExperts:    len(s.data.Experts),
		AvgResponseTime:  s.data.Stats.AvgResponseTime,
		SatisfactionRate: s.data.Stats.SatisfactionRate,
	}
	for _, q := range s.data.Questions {
		if len(q.Answers) > 0 {
			st.AnsweredQuestions++
		}
	}
	return st
}

//分配新的问题号: 扫描现有最大号+1, 与分类无关
func nextQuestionID(questions []*Question) string {
	last := 0
	for _, q := range questions {
		if !strings.HasPrefix(q.ID, "Q") {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(q.ID, "Q")); err == nil && n > last {
			last = n
		}
	}
	return "Q" + zfill(last+1, 4)
}

func zfill(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

//新问题插到最前, 初始Open/0浏览/0赞. 标题正文分类为空或者身份缺失直接拒绝
func (s *ForumStore) AddQuestion(title, category, question string, userID int64, username string, tags []string) bool {
	if blank(title) || blank(category) || blank(question) || userID == 0 || blank(username) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q := &Question{
		ID:         nextQuestionID(s.data.Questions),
		Title:      title,
		Category:   category,
		Question:   question,
		FarmerID:   userID,
		FarmerName: username,
		PostedDate: common.DateToStr(time.Now()),
		Status:     model.StatusOpen,
		Urgency:    "Medium",
		Tags:       tags,
		Answers:    make([]*Answer, 0),
	}
	s.data.Questions = append([]*Question{q}, s.data.Questions...)
	return s.persistOr(func() {
		s.data.Questions = s.data.Questions[1:]
	})
}

//浏览数+1, 问题不存在返回false且不落盘
func (s *ForumStore) IncrementViewCount(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuestion(questionID)
	if q == nil {
		return false
	}
	q.Views++
	return s.persistOr(func() {
		q.Views--
	})
}

//相关问题: 同分类或有相同标签的问题, 不含自身.
//排序规则: 分类相同的排在仅标签相同的前面, 同档内按浏览数降序,
//再按日期新在前, 最后按id保证确定性
func (s *ForumStore) RelatedQuestions(questionID string, limit int) []*Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.findQuestion(questionID)
	if target == nil || limit <= 0 {
		return []*Question{}
	}
	tags := make(map[string]bool)
	for _, t := range target.Tags {
		tags[t] = true
	}
	sameTag := func(q *Question) bool {
		for _, t := range q.Tags {
			if tags[t] {
				return true
			}
		}
		return false
	}
	related := make([]*Question, 0)
	band := make(map[string]int) //0同分类 1仅标签相同
	for _, q := range s.data.Questions {
		if q.ID == questionID {
			continue
		}
		if q.Category == target.Category {
			related = append(related, q)
			band[q.ID] = 0
		} else if sameTag(q) {
			related = append(related, q)
			band[q.ID] = 1
		}
	}
	sort.SliceStable(related, func(i, j int) bool {
		a, b := related[i], related[j]
		if band[a.ID] != band[b.ID] {
			return band[a.ID] < band[b.ID]
		}
		if a.Views != b.Views {
			return a.Views > b.Views
		}
		if a.PostedDate != b.PostedDate {
			return a.PostedDate > b.PostedDate
		}
		return a.ID < b.ID
	})
	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

//分配回答号: 扫描该问题下已有回答的序号取最大+1,
//号段可能有空洞或乱序, 只看序号最大值保证不撞号
func nextAnswerID(q *Question) string {
	qnum := strings.TrimPrefix(q.ID, "Q")
	prefix := "A" + qnum + "-"
	last := 0
	for _, a := range q.Answers {
		if !strings.HasPrefix(a.ID, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(a.ID, prefix)); err == nil && n > last {
			last = n
		}
	}
	return prefix + strconv.Itoa(last+1)
}

//追加回答, 问题若处于Open则转为Answered(只进不退)
func (s *ForumStore) AddAnswer(questionID, answerText string, userID int64, username string) bool {
	if blank(answerText) || userID == 0 || blank(username) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuestion(questionID)
	if q == nil {
		return false
	}
	a := &Answer{
		ID:         nextAnswerID(q),
		QuestionID: q.ID,
		ExpertID:   userID,
		ExpertName: username,
		ExpertType: "Community Member",
		Answer:     answerText,
		AnswerDate: common.DateToStr(time.Now()),
		VotedBy:    make([]int64, 0),
	}
	oldStatus := q.Status
	q.Answers = append(q.Answers, a)
	if q.Status == model.StatusOpen {
		q.Status = model.StatusAnswered
	}
	return s.persistOr(func() {
		q.Answers = q.Answers[:len(q.Answers)-1]
		q.Status = oldStatus
	})
}

//问题点赞, 同一用户只计一次, 重复点赞视作失败且不改状态
func (s *ForumStore) UpvoteQuestion(questionID string, userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuestion(questionID)
	if q == nil || containsID(q.VotedBy, userID) {
		return false
	}
	q.Likes++
	q.VotedBy = append(q.VotedBy, userID)
	return s.persistOr(func() {
		q.Likes--
		q.VotedBy = q.VotedBy[:len(q.VotedBy)-1]
	})
}

//回答点赞, 按回答单独去重
func (s *ForumStore) UpvoteAnswer(questionID, answerID string, userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuestion(questionID)
	if q == nil {
		return false
	}
	var a *Answer
	for _, item := range q.Answers {
		if item.ID == answerID {
			a = item
			break
		}
	}
	if a == nil || containsID(a.VotedBy, userID) {
		return false
	}
	a.HelpfulVotes++
	a.VotedBy = append(a.VotedBy, userID)
	return s.persistOr(func() {
		a.HelpfulVotes--
		a.VotedBy = a.VotedBy[:len(a.VotedBy)-1]
	})
}

//管理员认证某条回答, 已认证的再次认证视作失败
func (s *ForumStore) VerifyAnswer(questionID, answerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.findQuestion(questionID)
	if q == nil {
		return false
	}
	for _, a := range q.Answers {
		if a.ID == answerID {
			if a.Verified {
				return false
			}
			a.Verified = true
			return s.persistOr(func() {
				a.Verified = false
			})
		}
	}
	return false
}

func containsID(ids []int64, id int64) bool {
	for _, item := range ids {
		if item == id {
			return true
		}
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
