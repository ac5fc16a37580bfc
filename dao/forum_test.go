package dao

import (
	"AgriSuper/model"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDoc(questions ...*Question) *ForumDocument {
	return &ForumDocument{
		Questions:  questions,
		Experts:    []Expert{{ID: "EXP001", Name: "Dr. Expert 1", Specialization: "Soil Health"}},
		Categories: append([]string(nil), ForumCategories...),
		Stats: ForumStats{
			AvgResponseTime:  "4.2 hours",
			SatisfactionRate: "94%",
		},
	}
}

func question(id, category, date string, views uint, tags ...string) *Question {
	return &Question{
		ID:         id,
		Title:      "t-" + id,
		Category:   category,
		Question:   "body of " + id,
		FarmerID:   1,
		FarmerName: "farmer",
		PostedDate: date,
		Status:     model.StatusOpen,
		Views:      views,
		Tags:       tags,
		Answers:    make([]*Answer, 0),
	}
}

func newTestStore(t *testing.T, doc *ForumDocument) *ForumStore {
	t.Helper()
	s := &ForumStore{file: filepath.Join(t.TempDir(), forumDataFile), data: doc}
	require.NoError(t, s.persist())
	return s
}

func reload(t *testing.T, s *ForumStore) *ForumStore {
	t.Helper()
	r, err := NewForumStore(filepath.Dir(s.file))
	require.NoError(t, err)
	return r
}

func TestAddQuestion(t *testing.T) {
	s := newTestStore(t, baseDoc(question("Q0003", "Irrigation", "2025-01-01", 10)))

	ok := s.AddQuestion("Drip system cost?", "Irrigation", "What does a drip setup cost per acre?", 7, "ramesh", []string{"drip"})
	assert.True(t, ok)

	list := s.Questions("", "")
	require.NotEmpty(t, list)
	q := list[0]
	assert.Equal(t, "Q0004", q.ID, "new id must be max existing + 1")
	assert.Equal(t, model.StatusOpen, q.Status)
	assert.Equal(t, uint(0), q.Views)
	assert.Equal(t, uint(0), q.Likes)
	assert.Empty(t, q.Answers)

	// survives a reload from disk
	r := reload(t, s)
	got, found := r.QuestionByID("Q0004")
	require.True(t, found)
	assert.Equal(t, "Drip system cost?", got.Title)
	assert.Equal(t, []string{"drip"}, got.Tags)
}

func TestAddQuestionValidation(t *testing.T) {
	s := newTestStore(t, baseDoc())

	assert.False(t, s.AddQuestion("", "Irrigation", "body", 1, "u", nil))
	assert.False(t, s.AddQuestion("   ", "Irrigation", "body", 1, "u", nil))
	assert.False(t, s.AddQuestion("title", "", "body", 1, "u", nil))
	assert.False(t, s.AddQuestion("title", "Irrigation", "", 1, "u", nil))
	assert.False(t, s.AddQuestion("title", "Irrigation", "body", 0, "u", nil))
	assert.False(t, s.AddQuestion("title", "Irrigation", "body", 1, "", nil))
	assert.Empty(t, s.Questions("", ""))
	assert.Empty(t, reload(t, s).Questions("", ""))
}

func TestIncrementViewCount(t *testing.T) {
	s := newTestStore(t, baseDoc(question("Q0001", "Weather", "2025-01-01", 0)))

	for i := 0; i < 3; i++ {
		assert.True(t, s.IncrementViewCount("Q0001"))
	}
	q, _ := s.QuestionByID("Q0001")
	assert.Equal(t, uint(3), q.Views)

	assert.False(t, s.IncrementViewCount("Q9999"))
	r := reload(t, s)
	q, _ = r.QuestionByID("Q0001")
	assert.Equal(t, uint(3), q.Views)
}

func TestAnswerIDSkipsSparseIDs(t *testing.T) {
	q := question("Q0007", "Pest Control", "2025-01-01", 0)
	q.Answers = []*Answer{
		{ID: "A0007-1", QuestionID: "Q0007"},
		{ID: "A0007-2", QuestionID: "Q0007"},
		{ID: "A0007-5", QuestionID: "Q0007"},
	}
	s := newTestStore(t, baseDoc(q))

	require.True(t, s.AddAnswer("Q0007", "spray neem oil", 3, "expert3"))
	got, _ := s.QuestionByID("Q0007")
	ids := make(map[string]bool)
	for _, a := range got.Answers {
		assert.False(t, ids[a.ID], "answer id %s duplicated", a.ID)
		ids[a.ID] = true
	}
	assert.Equal(t, "A0007-6", got.Answers[len(got.Answers)-1].ID)
}

func TestStatusTransition(t *testing.T) {
	s := newTestStore(t, baseDoc(question("Q0001", "Soil Health", "2025-01-01", 0)))

	q, _ := s.QuestionByID("Q0001")
	require.Equal(t, model.StatusOpen, q.Status)

	require.True(t, s.AddAnswer("Q0001", "add compost", 2, "expert"))
	q, _ = s.QuestionByID("Q0001")
	assert.Equal(t, model.StatusAnswered, q.Status)

	require.True(t, s.AddAnswer("Q0001", "and gypsum", 3, "expert2"))
	q, _ = s.QuestionByID("Q0001")
	assert.Equal(t, model.StatusAnswered, q.Status)
	assert.Len(t, q.Answers, 2)

	assert.False(t, s.AddAnswer("Q0404", "no such question", 2, "expert"))
	assert.False(t, s.AddAnswer("Q0001", "   ", 2, "expert"))
}

func TestUpvoteQuestionIdempotent(t *testing.T) {
	s := newTestStore(t, baseDoc(question("Q0001", "Weather", "2025-01-01", 0)))

	assert.True(t, s.UpvoteQuestion("Q0001", 42))
	assert.False(t, s.UpvoteQuestion("Q0001", 42), "second vote by same user must fail")
	q, _ := s.QuestionByID("Q0001")
	assert.Equal(t, uint(1), q.Likes)

	assert.True(t, s.UpvoteQuestion("Q0001", 43))
	q, _ = s.QuestionByID("Q0001")
	assert.Equal(t, uint(2), q.Likes)

	assert.False(t, s.UpvoteQuestion("Q0404", 42))
}

func TestUpvoteAnswer(t *testing.T) {
	q := question("Q0001", "Weather", "2025-01-01", 0)
	q.Answers = []*Answer{{ID: "A0001-1", QuestionID: "Q0001", VotedBy: make([]int64, 0)}}
	s := newTestStore(t, baseDoc(q))

	assert.True(t, s.UpvoteAnswer("Q0001", "A0001-1", 9))
	assert.False(t, s.UpvoteAnswer("Q0001", "A0001-1", 9))
	got, _ := s.QuestionByID("Q0001")
	assert.Equal(t, uint(1), got.Answers[0].HelpfulVotes)

	assert.False(t, s.UpvoteAnswer("Q0001", "A0001-7", 9))
	assert.False(t, s.UpvoteAnswer("Q0404", "A0404-1", 9))
}

func TestRelatedQuestionsRanking(t *testing.T) {
	qt := question("Q0001", "Pest Control", "2025-01-04", 10, "wheat")
	q1 := question("Q0002", "Pest Control", "2025-01-03", 50)
	q2 := question("Q0003", "Pest Control", "2025-01-02", 200)
	q3 := question("Q0004", "Soil Health", "2025-01-01", 999, "wheat")
	s := newTestStore(t, baseDoc(qt, q1, q2, q3))

	related := s.RelatedQuestions("Q0001", 2)
	require.Len(t, related, 2)
	assert.Equal(t, "Q0003", related[0].ID)
	assert.Equal(t, "Q0002", related[1].ID)

	// tag-only matches rank after every category match regardless of views
	related = s.RelatedQuestions("Q0001", 3)
	require.Len(t, related, 3)
	assert.Equal(t, "Q0004", related[2].ID)

	assert.Empty(t, s.RelatedQuestions("Q0404", 5))
	assert.Empty(t, s.RelatedQuestions("Q0001", 0))
}

func TestQuestionsFilterConjunction(t *testing.T) {
	a := question("Q0001", "Irrigation", "2025-01-01", 0)
	b := question("Q0002", "Irrigation", "2025-01-03", 0)
	b.Status = model.StatusAnswered
	c := question("Q0003", "Irrigation", "2025-01-02", 0)
	d := question("Q0004", "Weather", "2025-01-04", 0)
	s := newTestStore(t, baseDoc(a, b, c, d))

	got := s.Questions("Irrigation", model.StatusOpen)
	require.Len(t, got, 2)
	assert.Equal(t, "Q0003", got[0].ID, "sorted by posted date descending")
	assert.Equal(t, "Q0001", got[1].ID)

	assert.Len(t, s.Questions("Irrigation", ""), 3)
	assert.Len(t, s.Questions("", model.StatusOpen), 3)
	assert.Len(t, s.Questions("", ""), 4)
}

func TestStatsDerivedFromCorpus(t *testing.T) {
	a := question("Q0001", "Weather", "2025-01-01", 0)
	b := question("Q0002", "Weather", "2025-01-02", 0)
	b.Status = model.StatusAnswered
	b.Answers = []*Answer{{ID: "A0002-1", QuestionID: "Q0002"}}
	s := newTestStore(t, baseDoc(a, b))

	st := s.Stats()
	assert.Equal(t, 2, st.TotalQuestions)
	assert.Equal(t, 1, st.AnsweredQuestions)
	assert.Equal(t, 1, st.ActiveExperts)
	assert.Equal(t, "4.2 hours", st.AvgResponseTime)

	// the counters track the corpus, not a stored number
	require.True(t, s.AddAnswer("Q0001", "an answer", 5, "expert"))
	st = s.Stats()
	assert.Equal(t, 2, st.AnsweredQuestions)
}

func TestVerifyAnswer(t *testing.T) {
	q := question("Q0001", "Weather", "2025-01-01", 0)
	q.Answers = []*Answer{{ID: "A0001-1", QuestionID: "Q0001"}}
	s := newTestStore(t, baseDoc(q))

	assert.True(t, s.VerifyAnswer("Q0001", "A0001-1"))
	assert.False(t, s.VerifyAnswer("Q0001", "A0001-1"), "already verified")
	got, _ := reload(t, s).QuestionByID("Q0001")
	assert.True(t, got.Answers[0].Verified)

	assert.False(t, s.VerifyAnswer("Q0001", "A0001-9"))
	assert.False(t, s.VerifyAnswer("Q0404", "A0404-1"))
}

func TestForumEndToEnd(t *testing.T) {
	s := newTestStore(t, baseDoc(question("Q0001", "Weather", "2020-01-01", 5)))

	require.True(t, s.AddQuestion("Best time to sow wheat?", "Sowing", "When should wheat go in the ground in Punjab?", 1, "u1", []string{"wheat"}))
	list := s.Questions("", "")
	require.NotEmpty(t, list)
	assert.Equal(t, "Best time to sow wheat?", list[0].Title)
	qid := list[0].ID

	require.True(t, s.AddAnswer(qid, "First week of November after rice harvest.", 2, "u2"))
	q, found := s.QuestionByID(qid)
	require.True(t, found)
	assert.Equal(t, model.StatusAnswered, q.Status)
	require.Len(t, q.Answers, 1)
	aid := q.Answers[0].ID

	require.True(t, s.UpvoteAnswer(qid, aid, 1))
	q, _ = s.QuestionByID(qid)
	assert.Equal(t, uint(1), q.Answers[0].HelpfulVotes)

	assert.False(t, s.UpvoteAnswer(qid, aid, 1))
	q, _ = s.QuestionByID(qid)
	assert.Equal(t, uint(1), q.Answers[0].HelpfulVotes)

	// everything above survives a process restart
	r := reload(t, s)
	q, found = r.QuestionByID(qid)
	require.True(t, found)
	assert.Equal(t, model.StatusAnswered, q.Status)
	assert.Equal(t, uint(1), q.Answers[0].HelpfulVotes)
}
