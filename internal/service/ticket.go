package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"nexusforge/internal/model"

	"go.uber.org/zap"
)

// ErrTicketNotFound возвращается для операций над неизвестным тикетом
var ErrTicketNotFound = errors.New("ticket not found")

// TicketService управляет тикетами поддержки.
// Тикеты хранятся от новых к старым.
type TicketService struct {
	mu      sync.Mutex
	store   Store
	syslog  *SysLogService
	logger  *zap.Logger
	tickets []model.SupportTicket
}

// NewTicketService создает сервис тикетов поддержки
func NewTicketService(store Store, syslog *SysLogService, logger *zap.Logger) *TicketService {
	s := &TicketService{
		store:  store,
		syslog: syslog,
		logger: logger,
	}
	store.Load(model.CollectionTickets, &s.tickets)
	return s
}

// Create создает открытый тикет от имени пользователя
func (s *TicketService) Create(user model.User, subject, message string) (model.SupportTicket, error) {
	ticket := model.SupportTicket{
		ID:        model.NewID("ticket"),
		UserID:    user.ID,
		Username:  user.Username,
		Subject:   subject,
		Message:   message,
		Status:    model.TicketOpen,
		CreatedAt: time.Now(),
	}
	if err := ticket.Validate(); err != nil {
		return model.SupportTicket{}, fmt.Errorf("invalid ticket: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = append([]model.SupportTicket{ticket}, s.tickets...)
	s.store.Save(model.CollectionTickets, s.tickets)
	s.syslog.Log(model.LogInfo, fmt.Sprintf("Support ticket opened by %s: %s", user.Username, subject))

	return ticket, nil
}

// Resolve закрывает тикет
func (s *TicketService) Resolve(ticketID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID != ticketID {
			continue
		}

		s.tickets[i].Status = model.TicketResolved
		s.store.Save(model.CollectionTickets, s.tickets)
		s.syslog.Log(model.LogInfo, fmt.Sprintf("Support ticket %s resolved", ticketID))
		return nil
	}

	return fmt.Errorf("%w: %s", ErrTicketNotFound, ticketID)
}

// Tickets возвращает копию списка тикетов, от новых к старым
func (s *TicketService) Tickets() []model.SupportTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := make([]model.SupportTicket, len(s.tickets))
	copy(tickets, s.tickets)
	return tickets
}
