package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_IsCorrect_CorrectAnswer(t *testing.T) {
	// Arrange
	question := &Question{
		ID:            1,
		TestID:        1,
		Text:          "Какой язык используется в Go?",
		Options:       StringArray{"Python", "Go", "Java", "Rust"},
		CorrectOption: 1, // "Go" — индекс 1
	}

	// Act & Assert
	assert.True(t, question.IsCorrect(1), "IsCorrect должен вернуть true для правильного ответа")
}

func TestQuestion_IsCorrect_IncorrectAnswer(t *testing.T) {
	// Arrange
	question := &Question{
		ID:            1,
		CorrectOption: 2,
	}

	// Act & Assert
	assert.False(t, question.IsCorrect(0), "IsCorrect должен вернуть false для неправильного ответа")
	assert.False(t, question.IsCorrect(1), "IsCorrect должен вернуть false для неправильного ответа")
	assert.False(t, question.IsCorrect(3), "IsCorrect должен вернуть false для неправильного ответа")
}

func TestQuestion_IsCorrect_UnansweredMarker(t *testing.T) {
	// Маркер неотвеченного вопроса никогда не считается правильным,
	// даже если CorrectOption случайно совпал бы с ним
	question := &Question{CorrectOption: UnansweredOption}

	assert.False(t, question.IsCorrect(UnansweredOption))
}

func TestQuestion_IsValidOption(t *testing.T) {
	// Arrange
	question := &Question{
		Options: StringArray{"A", "B", "C", "D"},
	}

	// Act & Assert: валидные опции
	assert.True(t, question.IsValidOption(0), "Индекс 0 должен быть валидным")
	assert.True(t, question.IsValidOption(3), "Индекс 3 должен быть валидным")

	// Маркер неотвеченного вопроса — допустимый явный отказ от ответа
	assert.True(t, question.IsValidOption(UnansweredOption))

	// Assert: невалидные опции
	assert.False(t, question.IsValidOption(-2), "Отрицательный индекс кроме маркера должен быть невалидным")
	assert.False(t, question.IsValidOption(4), "Индекс вне диапазона должен быть невалидным")
	assert.False(t, question.IsValidOption(100), "Индекс далеко за пределами должен быть невалидным")
}

func TestQuestion_OptionsCount(t *testing.T) {
	question := &Question{Options: StringArray{"A", "B", "C"}}
	assert.Equal(t, 3, question.OptionsCount())

	empty := &Question{}
	assert.Equal(t, 0, empty.OptionsCount())
}
