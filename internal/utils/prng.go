package utils

import (
	"math/rand"
	"time"
)

//go:generate go tool mockgen -destination=./mocks/random_mock.go -package=mocks . Random

// Random — источник случайности для ИИ и генерации уровней.
// Всё случайное в симуляции идёт через него, чтобы тесты были воспроизводимы.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

var _ Random = (*PRNGService)(nil)

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// WeightedEntry — элемент для взвешенного выбора
type WeightedEntry struct {
	ID     string
	Weight float64
}

// ChooseWeighted выполняет взвешенный случайный выбор.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func ChooseWeighted(r Random, entries []WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0.0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}

	if totalWeight <= 0 {
		return entries[0].ID
	}

	roll := r.Float64() * totalWeight
	upto := 0.0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > roll {
			return entry.ID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].ID
}

// Pick возвращает случайный индекс в [0, n) или -1 для пустого набора
func Pick(r Random, n int) int {
	if n <= 0 {
		return -1
	}
	return r.Intn(n)
}
