package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancellationNotice минимальный срок до начала, за который клиент
// ещё может отменить запись
const CancellationNotice = 24 * time.Hour

// DepositAmount фиксированная сумма аванса, принимаемая с подтверждением
// оплаты (платёжная интеграция вне рамок сервиса - хранится только факт)
const DepositAmount = 25.0

// Pagination defaults for admin listings
const (
	DefaultPage       = 1
	DefaultLimit      = 20
	DefaultAdminLimit = 100
	MaxLimit          = 200
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNotesLength            = 500
	MinPasswordLength         = 6
)
