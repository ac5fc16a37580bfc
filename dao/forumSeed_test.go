package dao

import (
	"AgriSuper/model"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateForumDataDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateForumData(rand.New(rand.NewSource(7)), now)
	b := GenerateForumData(rand.New(rand.NewSource(7)), now)
	assert.Equal(t, a, b, "same seed must produce the same corpus")

	c := GenerateForumData(rand.New(rand.NewSource(8)), now)
	assert.NotEqual(t, a, c)
}

func TestGenerateForumDataShape(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	doc := GenerateForumData(rand.New(rand.NewSource(1)), now)

	require.Len(t, doc.Questions, 500)
	require.Len(t, doc.Experts, 50)
	assert.Equal(t, ForumCategories, doc.Categories)

	ids := make(map[string]bool)
	cats := make(map[string]bool)
	for _, cat := range doc.Categories {
		cats[cat] = true
	}
	for _, q := range doc.Questions {
		assert.False(t, ids[q.ID], "question id %s duplicated", q.ID)
		ids[q.ID] = true
		assert.True(t, cats[q.Category])
		//状态必须与是否有回答一致
		if len(q.Answers) == 0 {
			assert.Equal(t, model.StatusOpen, q.Status)
		} else {
			assert.Contains(t, []string{model.StatusAnswered, model.StatusResolved}, q.Status)
			assert.Equal(t, q.ID, q.Answers[0].QuestionID)
		}
	}
}

func TestGenerateMandiPricesDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateMandiPrices(rand.New(rand.NewSource(3)), now, 14)
	b := GenerateMandiPrices(rand.New(rand.NewSource(3)), now, 14)
	assert.Equal(t, a, b)

	require.Len(t, a, len(MandiCrops)*len(MandiStates)*14)
	for _, p := range a {
		assert.True(t, p.Price > 0)
		assert.True(t, p.Volume >= 100)
		assert.NotEmpty(t, p.Date)
	}
	assert.Equal(t, "2025-05-19", a[0].Date)
	assert.Equal(t, "2025-06-01", a[13].Date)
}
