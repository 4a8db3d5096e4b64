package catalog

import "strconv"

type QuestionType string

const (
	QuestionRating QuestionType = "rating"
	QuestionChoice QuestionType = "choice"
	QuestionText   QuestionType = "text"
)

type Question struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []any        `json:"options"`
}

// ResponseKey is the key under which answers to q are stored in an evaluation
func (q Question) ResponseKey() string {
	return "question_" + strconv.Itoa(q.ID)
}

var ratingScale = []any{1, 2, 3, 4, 5}

var questions = []Question{
	{
		ID:       1,
		Question: "Как вы оцениваете качество продукции?",
		Type:     QuestionRating,
		Options:  ratingScale,
	},
	{
		ID:       2,
		Question: "Соответствовала ли продукция заявленным характеристикам?",
		Type:     QuestionChoice,
		Options: []any{
			"Полностью соответствовала",
			"Частично соответствовала",
			"Не соответствовала",
		},
	},
	{
		ID:       3,
		Question: "Как вы оцениваете скорость доставки?",
		Type:     QuestionRating,
		Options:  ratingScale,
	},
	{
		ID:       4,
		Question: "Качество обслуживания менеджеров",
		Type:     QuestionRating,
		Options:  ratingScale,
	},
	{
		ID:       5,
		Question: "Рекомендовали бы нашу компанию друзьям?",
		Type:     QuestionChoice,
		Options: []any{
			"Определенно да",
			"Скорее да",
			"Не знаю",
			"Скорее нет",
			"Определенно нет",
		},
	},
	{
		ID:       6,
		Question: "Что можно улучшить в нашей работе?",
		Type:     QuestionText,
		Options:  []any{},
	},
}

// Questions returns a copy of the fixed questionnaire in catalog order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
