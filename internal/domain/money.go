package domain

import (
	"fmt"
	"math"
)

// Денежные суммы во всём сервисе хранятся в целых копейках/центах.

// RoundHalfUp округляет значение до ближайшего целого, 0.5 - вверх
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// FormatCents форматирует сумму в центах как строку в долларах
// Целые суммы выводятся без дробной части: 5000 -> "$50", 5050 -> "$50.50"
func FormatCents(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
