package report

import (
	"testing"
	"time"

	"beton-feedback/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func sampleData() Data {
	return Data{
		User:    User{Username: "Иван", Phone: "+79991234567"},
		Product: "Бетон М300",
		Evaluation: map[string]any{
			"question_1": float64(5),
			"question_2": "Полностью соответствовала",
			"question_3": float64(4),
			"question_6": "Всё отлично",
		},
		OverallRating: 5,
		Date:          time.Date(2024, 5, 17, 9, 3, 7, 0, time.UTC),
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer(catalog.Questions(), time.UTC)

	want := "ОТЧЕТ ПО ОЦЕНКЕ ПРОДУКЦИИ БЕТОН-30\n" +
		"========================================\n\n" +
		"Пользователь: Иван\n" +
		"Телефон: +79991234567\n" +
		"Продукт: Бетон М300\n" +
		"Дата оценки: 17.05.2024, 09:03:07\n" +
		"Общая оценка: 5/5\n\n" +
		"ОТВЕТЫ НА ВОПРОСЫ:\n" +
		"==================\n\n" +
		"1. Как вы оцениваете качество продукции?\n" +
		"   Ответ: 5\n\n" +
		"2. Соответствовала ли продукция заявленным характеристикам?\n" +
		"   Ответ: Полностью соответствовала\n\n" +
		"3. Как вы оцениваете скорость доставки?\n" +
		"   Ответ: 4\n\n" +
		"6. Что можно улучшить в нашей работе?\n" +
		"   Ответ: Всё отлично\n\n" +
		"\nСпасибо за оценку!\n" +
		"Компания БЕТОН-30 - ваш надежный партнер\n" +
		"Сайт: https://www.beton-30.ru/\n"

	assert.Equal(t, want, renderer.Render(sampleData()))
}

func TestRenderer_SkipsMissingAndEmptyAnswers(t *testing.T) {
	renderer := NewRenderer(catalog.Questions(), time.UTC)

	data := sampleData()
	delete(data.Evaluation, "question_3")
	data.Evaluation["question_6"] = ""

	out := renderer.Render(data)

	assert.NotContains(t, out, "скорость доставки")
	assert.NotContains(t, out, "Что можно улучшить")
	assert.Contains(t, out, "1. Как вы оцениваете качество продукции?")
}

func TestRenderer_IsDeterministic(t *testing.T) {
	renderer := NewRenderer(catalog.Questions(), nil)

	assert.Equal(t, renderer.Render(sampleData()), renderer.Render(sampleData()))
}

func TestRenderer_UsesLocation(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	renderer := NewRenderer(catalog.Questions(), moscow)

	assert.Contains(t, renderer.Render(sampleData()), "Дата оценки: 17.05.2024, 12:03:07\n")
}
