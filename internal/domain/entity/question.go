package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if o == nil || len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// UnansweredOption — значение-маркер неотвеченного вопроса
const UnansweredOption = -1

// Question представляет вопрос сертификационного теста.
// После создания теста вопросы не изменяются.
type Question struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	TestID        uint        `gorm:"not null;index" json:"test_id"`
	Position      int         `gorm:"not null;default:0" json:"position"`
	Text          string      `gorm:"size:500;not null" json:"text"`
	Options       StringArray `gorm:"type:jsonb;not null" json:"options"`
	CorrectOption int         `gorm:"not null" json:"-"` // Скрыто от клиента
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет, является ли выбранный вариант правильным.
// Маркер неотвеченного вопроса никогда не совпадает с правильным вариантом.
func (q *Question) IsCorrect(selectedOption int) bool {
	if selectedOption == UnansweredOption {
		return false
	}
	return selectedOption == q.CorrectOption
}

// OptionsCount возвращает количество вариантов ответа
func (q *Question) OptionsCount() int {
	return len(q.Options)
}

// IsValidOption проверяет, является ли выбранный вариант допустимым.
// UnansweredOption допустим как явный отказ от ответа.
func (q *Question) IsValidOption(selectedOption int) bool {
	if selectedOption == UnansweredOption {
		return true
	}
	return selectedOption >= 0 && selectedOption < len(q.Options)
}
