// Package model содержит модели данных платформы.
//
// Группа: ENTITIES - Основные сущности
// Содержит: User, Plan, UserRole
package model

import "time"

// Plan представляет тарифный план пользователя
type Plan string

const (
	PlanFree       Plan = "Free"
	PlanHobby      Plan = "Hobby"
	PlanPro        Plan = "Pro"
	PlanEnterprise Plan = "Enterprise"
)

// ProjectLimit возвращает максимальное число проектов для плана
func (p Plan) ProjectLimit() int {
	switch p {
	case PlanFree:
		return 2
	case PlanHobby:
		return 5
	case PlanPro:
		return 15
	case PlanEnterprise:
		return int(^uint(0) >> 1)
	default:
		return 0
	}
}

// IsValid проверяет, что план известен
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanHobby, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

// UserRole представляет роль пользователя
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
	RoleOwner UserRole = "owner"
)

// User представляет пользователя платформы
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
	Plan     Plan     `json:"plan"`
	IP       string   `json:"ip"`
	APIKey   string   `json:"apiKey,omitempty"`
}

// Validate проверяет валидность пользователя
func (u *User) Validate() error {
	var errors ValidationErrors

	if err := ValidateRequired("username", u.Username); err != nil {
		errors = append(errors, err.(ValidationError))
	}

	if u.Email != "" {
		if err := ValidateEmail("email", u.Email); err != nil {
			errors = append(errors, err.(ValidationError))
		}
	}

	if !u.Plan.IsValid() {
		errors = append(errors, ValidationError{Field: "plan", Message: "unknown plan"})
	}

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// IsAdmin проверяет, имеет ли пользователь административные права
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleOwner
}

// SupportTicket представляет тикет поддержки
type SupportTicket struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Username  string       `json:"username"`
	Subject   string       `json:"subject"`
	Message   string       `json:"message"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// TicketStatus представляет статус тикета поддержки
type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketResolved TicketStatus = "resolved"
)

// Validate проверяет валидность тикета
func (t *SupportTicket) Validate() error {
	var errors ValidationErrors

	if err := ValidateRequired("subject", t.Subject); err != nil {
		errors = append(errors, err.(ValidationError))
	}

	if err := ValidateRequired("message", t.Message); err != nil {
		errors = append(errors, err.(ValidationError))
	}

	if errors.HasErrors() {
		return errors
	}
	return nil
}

// SystemLog представляет запись системного журнала
type SystemLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
}

// LogLevel представляет уровень записи системного журнала
type LogLevel string

const (
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Announcement представляет объявление платформы
type Announcement struct {
	Message string `json:"message"`
	Active  bool   `json:"active"`
}
