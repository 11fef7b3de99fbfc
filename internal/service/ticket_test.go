package service

import (
	"testing"

	"nexusforge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTicketService(store Store) *TicketService {
	return NewTicketService(store, testSysLog(store), zap.NewNop())
}

func TestTicketService_Create(t *testing.T) {
	store := newFakeStore()
	svc := newTestTicketService(store)
	user := testUser(model.PlanFree)

	ticket, err := svc.Create(user, "Billing", "I was charged twice")
	require.NoError(t, err)

	assert.Equal(t, model.TicketOpen, ticket.Status)
	assert.Equal(t, user.ID, ticket.UserID)
	assert.Equal(t, user.Username, ticket.Username)
	assert.False(t, ticket.CreatedAt.IsZero())
}

func TestTicketService_CreateRejectsEmpty(t *testing.T) {
	store := newFakeStore()
	svc := newTestTicketService(store)

	_, err := svc.Create(testUser(model.PlanFree), "", "message")
	assert.Error(t, err)

	_, err = svc.Create(testUser(model.PlanFree), "subject", "")
	assert.Error(t, err)

	assert.Empty(t, svc.Tickets())
}

func TestTicketService_NewestFirst(t *testing.T) {
	store := newFakeStore()
	svc := newTestTicketService(store)
	user := testUser(model.PlanFree)

	_, err := svc.Create(user, "First", "one")
	require.NoError(t, err)
	_, err = svc.Create(user, "Second", "two")
	require.NoError(t, err)

	tickets := svc.Tickets()
	require.Len(t, tickets, 2)
	assert.Equal(t, "Second", tickets[0].Subject)
	assert.Equal(t, "First", tickets[1].Subject)
}

func TestTicketService_Resolve(t *testing.T) {
	store := newFakeStore()
	svc := newTestTicketService(store)

	ticket, err := svc.Create(testUser(model.PlanFree), "Bug", "preview is blank")
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(ticket.ID))
	assert.Equal(t, model.TicketResolved, svc.Tickets()[0].Status)

	assert.ErrorIs(t, svc.Resolve("ticket_missing"), ErrTicketNotFound)
}

func TestTicketService_SurvivesRestart(t *testing.T) {
	store := newFakeStore()
	svc := newTestTicketService(store)

	created, err := svc.Create(testUser(model.PlanFree), "Bug", "still there")
	require.NoError(t, err)

	restarted := newTestTicketService(store)
	tickets := restarted.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, created.ID, tickets[0].ID)
	assert.False(t, tickets[0].CreatedAt.IsZero())
}
