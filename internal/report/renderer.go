// Package report renders evaluation reports as plain text.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"beton-feedback/internal/catalog"
)

const dateLayout = "02.01.2006, 15:04:05"

type User struct {
	Username string
	Phone    string
}

// Data holds everything a report needs. It is built either from a fresh
// submission or from a stored evaluation.
type Data struct {
	User          User
	Product       string
	Evaluation    map[string]any
	OverallRating int
	Date          time.Time
}

type Renderer struct {
	questions []catalog.Question
	location  *time.Location
}

// NewRenderer builds a renderer over a fixed question catalog. A nil location means UTC.
func NewRenderer(questions []catalog.Question, location *time.Location) *Renderer {
	if location == nil {
		location = time.UTC
	}
	qs := make([]catalog.Question, len(questions))
	copy(qs, questions)
	return &Renderer{questions: qs, location: location}
}

func (r *Renderer) Render(data Data) string {
	var b strings.Builder

	b.WriteString("ОТЧЕТ ПО ОЦЕНКЕ ПРОДУКЦИИ БЕТОН-30\n")
	b.WriteString("========================================\n\n")
	fmt.Fprintf(&b, "Пользователь: %s\n", data.User.Username)
	fmt.Fprintf(&b, "Телефон: %s\n", data.User.Phone)
	fmt.Fprintf(&b, "Продукт: %s\n", data.Product)
	fmt.Fprintf(&b, "Дата оценки: %s\n", data.Date.In(r.location).Format(dateLayout))
	fmt.Fprintf(&b, "Общая оценка: %d/5\n\n", data.OverallRating)
	b.WriteString("ОТВЕТЫ НА ВОПРОСЫ:\n")
	b.WriteString("==================\n\n")

	for i, q := range r.questions {
		answer, ok := formatAnswer(data.Evaluation[q.ResponseKey()])
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
		fmt.Fprintf(&b, "   Ответ: %s\n\n", answer)
	}

	b.WriteString("\nСпасибо за оценку!\n")
	b.WriteString("Компания БЕТОН-30 - ваш надежный партнер\n")
	b.WriteString("Сайт: https://www.beton-30.ru/\n")

	return b.String()
}

// formatAnswer reports false for answers that must not be rendered.
func formatAnswer(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprint(v), true
	}
}
