package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinNumPeople        = 1
	MaxNumPeople        = 100
	MaxCustomerNameLen  = 200
	MaxCustomerPhoneLen = 32
)

// TaxRateBasisPoints ставка налога в десятитысячных долях (5.9%)
// Налог считается от базовой стоимости до скидки - это осознанное
// поведение, зафиксированное тестами
const TaxRateBasisPoints = 590
