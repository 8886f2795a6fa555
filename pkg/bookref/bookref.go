package bookref

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// Префикс и алфавит кода бронирования
// Итоговый формат: BK + 8 символов [A-Z0-9], всего 10 символов
const (
	prefix   = "BK"
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLen  = 8
)

// Pattern регулярное выражение для валидации кода бронирования
var Pattern = regexp.MustCompile(`^BK[A-Z0-9]{8}$`)

// Generate генерирует код бронирования
// Код не уникален по построению (пространство 36^8), уникальность
// обеспечивает UNIQUE-констрейнт в БД с повтором генерации при конфликте
func Generate() (string, error) {
	buf := make([]byte, codeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("bookref: failed to read random bytes: %w", err)
	}

	code := make([]byte, codeLen)
	for i, b := range buf {
		code[i] = alphabet[int(b)%len(alphabet)]
	}

	return prefix + string(code), nil
}
