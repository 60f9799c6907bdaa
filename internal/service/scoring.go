package service

import (
	"fmt"
	"math"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
)

// ScoreSubmission подсчитывает результат сдачи теста.
// Чистая функция без побочных эффектов: одинаковые входы всегда дают
// одинаковый результат, конкурентные вызовы безопасны.
//
// Балл начисляется только за точное совпадение выбранного варианта с
// правильным; частичных баллов нет. Итоговый процент округляется
// арифметически (0.5 вверх), passed = score >= PassingScore.
//
// Массив ответов короче списка вопросов дополняется маркерами
// неотвеченных вопросов; более длинный массив — ошибка валидации,
// как и индекс варианта вне диапазона (кроме маркера -1).
func ScoreSubmission(test *entity.Test, answers []int) (score int, passed bool, err error) {
	total := test.QuestionCount()
	if total == 0 {
		// Деление на ноль здесь недопустимо: тест без вопросов — ошибка данных
		return 0, false, fmt.Errorf("%w: test %d has no questions", apperrors.ErrValidation, test.ID)
	}
	if len(answers) > total {
		return 0, false, fmt.Errorf("%w: got %d answers for %d questions", apperrors.ErrValidation, len(answers), total)
	}

	correct := 0
	for i, q := range test.Questions {
		answer := entity.UnansweredOption
		if i < len(answers) {
			answer = answers[i]
		}
		if !q.IsValidOption(answer) {
			return 0, false, fmt.Errorf("%w: answer %d for question %d is out of range", apperrors.ErrValidation, answer, i+1)
		}
		if q.IsCorrect(answer) {
			correct++
		}
	}

	score = int(math.Round(float64(correct) / float64(total) * 100))
	passed = score >= test.PassingScore
	return score, passed, nil
}
