package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// newScoringTest создает тест с вопросами, где правильные варианты заданы списком
func newScoringTest(passingScore int, correctOptions ...int) *entity.Test {
	test := &entity.Test{
		ID:           1,
		SubjectID:    1,
		Subject:      "Mathematics",
		PassingScore: passingScore,
	}
	for i, correct := range correctOptions {
		test.Questions = append(test.Questions, entity.Question{
			ID:            uint(i + 1),
			TestID:        1,
			Position:      i,
			Text:          "question",
			Options:       entity.StringArray{"a", "b", "c", "d"},
			CorrectOption: correct,
		})
	}
	return test
}

func TestScoreSubmission(t *testing.T) {
	tests := []struct {
		name       string
		test       *entity.Test
		answers    []int
		wantScore  int
		wantPassed bool
	}{
		{
			name:       "four of five correct passes at 70",
			test:       newScoringTest(70, 1, 1, 1, 1, 2),
			answers:    []int{1, 1, 0, 1, 2},
			wantScore:  80,
			wantPassed: true,
		},
		{
			name:       "all correct",
			test:       newScoringTest(70, 1, 1, 1, 1, 2),
			answers:    []int{1, 1, 1, 1, 2},
			wantScore:  100,
			wantPassed: true,
		},
		{
			name:       "all wrong fails",
			test:       newScoringTest(70, 1, 1, 1, 1, 2),
			answers:    []int{0, 0, 0, 0, 0},
			wantScore:  0,
			wantPassed: false,
		},
		{
			name:       "exact passing score passes",
			test:       newScoringTest(50, 0, 0, 1, 1),
			answers:    []int{0, 0, 3, 3},
			wantScore:  50,
			wantPassed: true,
		},
		{
			name:       "one below passing score fails",
			test:       newScoringTest(70, 0, 0, 0),
			answers:    []int{0, 0, 1},
			wantScore:  67, // 2/3 = 66.67, округляется до 67
			wantPassed: false,
		},
		{
			name:       "rounds half up",
			test:       newScoringTest(70, 0, 0, 0, 0, 0, 0, 0, 0),
			answers:    []int{0, 0, 0, 0, 1, 1, 1, 1},
			wantScore:  50, // 4/8 ровно 50
			wantPassed: false,
		},
		{
			name:       "one of three rounds down",
			test:       newScoringTest(70, 0, 0, 0),
			answers:    []int{0, 1, 1},
			wantScore:  33, // 1/3 = 33.33
			wantPassed: false,
		},
		{
			name:       "unanswered marker counts as wrong",
			test:       newScoringTest(70, 1, 1),
			answers:    []int{1, entity.UnansweredOption},
			wantScore:  50,
			wantPassed: false,
		},
		{
			name:       "short answers padded as unanswered",
			test:       newScoringTest(70, 1, 1, 1, 1),
			answers:    []int{1, 1},
			wantScore:  50,
			wantPassed: false,
		},
		{
			name:       "empty answers all unanswered",
			test:       newScoringTest(70, 1, 1),
			answers:    []int{},
			wantScore:  0,
			wantPassed: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, passed, err := ScoreSubmission(tc.test, tc.answers)
			require.NoError(t, err)
			assert.Equal(t, tc.wantScore, score)
			assert.Equal(t, tc.wantPassed, passed)
		})
	}
}

func TestScoreSubmission_Deterministic(t *testing.T) {
	test := newScoringTest(70, 1, 2, 3, 0, 1)
	answers := []int{1, 2, 0, 0, 1}

	firstScore, firstPassed, err := ScoreSubmission(test, answers)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		score, passed, err := ScoreSubmission(test, answers)
		require.NoError(t, err)
		assert.Equal(t, firstScore, score)
		assert.Equal(t, firstPassed, passed)
	}
}

func TestScoreSubmission_ScoreRange(t *testing.T) {
	test := newScoringTest(70, 0, 1, 2, 3, 0, 1, 2)

	// Любая комбинация валидных ответов дает процент в диапазоне 0..100
	answerSets := [][]int{
		{0, 1, 2, 3, 0, 1, 2},
		{3, 3, 3, 3, 3, 3, 3},
		{-1, -1, -1, -1, -1, -1, -1},
		{0, 1, 2},
		{},
	}
	for _, answers := range answerSets {
		score, _, err := ScoreSubmission(test, answers)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestScoreSubmission_ValidationErrors(t *testing.T) {
	t.Run("empty test", func(t *testing.T) {
		test := newScoringTest(70)
		_, _, err := ScoreSubmission(test, []int{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("more answers than questions", func(t *testing.T) {
		test := newScoringTest(70, 1, 1)
		_, _, err := ScoreSubmission(test, []int{1, 1, 1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("option index out of range", func(t *testing.T) {
		test := newScoringTest(70, 1, 1)
		_, _, err := ScoreSubmission(test, []int{1, 4})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("negative option other than marker", func(t *testing.T) {
		test := newScoringTest(70, 1, 1)
		_, _, err := ScoreSubmission(test, []int{-2, 1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}
