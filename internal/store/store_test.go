package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/identity"
	"github.com/spec-kit/helpdesk/internal/storage"
	"github.com/spec-kit/helpdesk/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	s := store.New(store.Dependencies{
		KV:     kv,
		Roster: identity.NewDemoRoster(),
		Logger: zap.NewNop(),
	})
	s.Open(context.Background())
	return s, kv
}

func TestSeedData(t *testing.T) {
	s, _ := newTestStore(t)

	tickets := s.Tickets()
	require.Len(t, tickets, 3)
	require.Len(t, s.Inventory(), 4)

	settings := s.Settings()
	require.Equal(t, "CDCE Anzoátegui", settings.OrganizationName)
	require.Equal(t, "Sistema de Gestión Integral", settings.SystemName)
	require.Empty(t, settings.Logo)
}

func TestAddTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("ids are strictly increasing and collection is most-recent-first", func(t *testing.T) {
		s, _ := newTestStore(t)
		var created []domain.Ticket
		for i := 0; i < 5; i++ {
			created = append(created, s.AddTicket(ctx, store.TicketInput{UserID: 2, Title: "t", Description: "d"}))
		}
		for i := 1; i < len(created); i++ {
			require.Greater(t, created[i].ID, created[i-1].ID)
		}

		tickets := s.Tickets()
		require.Len(t, tickets, 8)
		// newest additions sit at the head, in reverse creation order
		for i, ticket := range created {
			require.Equal(t, ticket.ID, tickets[len(created)-1-i].ID)
		}
		seen := map[int]bool{}
		for _, ticket := range tickets {
			require.False(t, seen[ticket.ID])
			seen[ticket.ID] = true
		}
	})

	t.Run("status defaults to Open and timestamps match", func(t *testing.T) {
		s, _ := newTestStore(t)
		ticket := s.AddTicket(ctx, store.TicketInput{UserID: 5, Title: "sin estado", Description: "d"})
		require.Equal(t, domain.TicketStatusOpen, ticket.Status)
		require.Equal(t, ticket.CreatedAt, ticket.UpdatedAt)
	})

	t.Run("admin response cannot be set at creation", func(t *testing.T) {
		s, _ := newTestStore(t)
		ticket := s.AddTicket(ctx, store.TicketInput{UserID: 5, Title: "t", Description: "d"})
		require.Empty(t, ticket.AdminResponse)
	})
}

func TestUpdateTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("merges set fields and bumps updated_at", func(t *testing.T) {
		s, _ := newTestStore(t)
		created := s.AddTicket(ctx, store.TicketInput{
			UserID:      2,
			Title:       "Proyector dañado",
			Description: "No enciende",
			Priority:    domain.TicketPriorityLow,
			Category:    domain.TicketCategoryHardware,
		})

		time.Sleep(time.Millisecond)
		status := domain.TicketStatusInProgress
		response := "Técnico asignado"
		updated, found := s.UpdateTicket(ctx, created.ID, store.TicketUpdate{
			Status:        &status,
			AdminResponse: &response,
		})
		require.True(t, found)
		require.Equal(t, status, updated.Status)
		require.Equal(t, response, updated.AdminResponse)
		require.True(t, updated.UpdatedAt.After(created.UpdatedAt))

		// untouched fields survive the merge
		require.Equal(t, created.Title, updated.Title)
		require.Equal(t, created.Description, updated.Description)
		require.Equal(t, created.Priority, updated.Priority)
		require.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("status transitions are unrestricted", func(t *testing.T) {
		s, _ := newTestStore(t)
		created := s.AddTicket(ctx, store.TicketInput{UserID: 2, Title: "t", Description: "d"})

		resolved := domain.TicketStatusResolved
		_, found := s.UpdateTicket(ctx, created.ID, store.TicketUpdate{Status: &resolved})
		require.True(t, found)

		open := domain.TicketStatusOpen
		reopened, found := s.UpdateTicket(ctx, created.ID, store.TicketUpdate{Status: &open})
		require.True(t, found)
		require.Equal(t, open, reopened.Status)
	})

	t.Run("unknown id leaves the collection byte-for-byte unchanged", func(t *testing.T) {
		s, _ := newTestStore(t)
		before, err := json.Marshal(s.Tickets())
		require.NoError(t, err)

		status := domain.TicketStatusResolved
		_, found := s.UpdateTicket(ctx, 999, store.TicketUpdate{Status: &status})
		require.False(t, found)

		after, err := json.Marshal(s.Tickets())
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// seed carries one ticket in each status
	require.Equal(t, domain.DashboardStats{Open: 1, InProgress: 1, Resolved: 1}, s.Stats())

	s.AddTicket(ctx, store.TicketInput{UserID: 2, Title: "t", Description: "d", Status: domain.TicketStatusOpen})
	require.Equal(t, domain.DashboardStats{Open: 2, InProgress: 1, Resolved: 1}, s.Stats())

	stats := s.Stats()
	require.Equal(t, len(s.Tickets()), stats.Open+stats.InProgress+stats.Resolved)
}

func TestTicketsForUser(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddTicket(ctx, store.TicketInput{UserID: 2, Title: "mía", Description: "d"})
	s.AddTicket(ctx, store.TicketInput{UserID: 7, Title: "ajena", Description: "d"})

	owned := s.TicketsForUser(2)
	require.Len(t, owned, 2) // one seeded plus one new
	for _, ticket := range owned {
		require.Equal(t, 2, ticket.UserID)
	}
}

func TestAddInventoryItem(t *testing.T) {
	ctx := context.Background()

	t.Run("appends with next id on the seeded inventory", func(t *testing.T) {
		s, _ := newTestStore(t)
		item := s.AddInventoryItem(ctx, store.InventoryItemInput{
			Name:         "Router X",
			Type:         domain.InventoryTypeHardware,
			SerialNumber: "RX-1",
			Status:       domain.InventoryStatusActive,
			Stock:        3,
		})
		require.Equal(t, 5, item.ID)
		require.Equal(t, 3, item.Stock)

		inventory := s.Inventory()
		require.Equal(t, item, inventory[len(inventory)-1])
	})

	t.Run("duplicate serial numbers are permitted", func(t *testing.T) {
		s, _ := newTestStore(t)
		input := store.InventoryItemInput{
			Name:         "Switch",
			Type:         domain.InventoryTypeHardware,
			SerialNumber: "SW-1",
			Status:       domain.InventoryStatusActive,
			Stock:        1,
		}
		first := s.AddInventoryItem(ctx, input)
		second := s.AddInventoryItem(ctx, input)
		require.NotEqual(t, first.ID, second.ID)
		require.Equal(t, first.SerialNumber, second.SerialNumber)
	})
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	name := "Dirección de Tecnología"
	updated := s.UpdateSettings(ctx, store.SettingsUpdate{OrganizationName: &name})
	require.Equal(t, name, updated.OrganizationName)
	// shallow merge leaves the rest alone
	require.Equal(t, "Sistema de Gestión Integral", updated.SystemName)
	require.Equal(t, updated, s.Settings())
}

func TestDepartments(t *testing.T) {
	s, _ := newTestStore(t)

	departments := s.Departments()
	require.Len(t, departments, 25)
	require.Equal(t, "Atención al ciudadano", departments[0].Name)
	for _, dept := range departments {
		require.NotEqual(t, 1, dept.ID) // admin entry is not a department
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	ticket := s.AddTicket(ctx, store.TicketInput{
		UserID:         3,
		Title:          "Round trip",
		Description:    "d",
		Priority:       domain.TicketPriorityHigh,
		Category:       domain.TicketCategoryNetwork,
		DepartmentName: "Seguro social",
	})
	item := s.AddInventoryItem(ctx, store.InventoryItemInput{
		Name:         "Teclado",
		Type:         domain.InventoryTypePeripheral,
		SerialNumber: "KB-9",
		Status:       domain.InventoryStatusActive,
		Stock:        10,
	})
	logo := "data:image/png;base64,AAAA"
	s.UpdateSettings(ctx, store.SettingsUpdate{Logo: &logo})

	// a second store over the same KV sees identical collections
	reloaded := store.New(store.Dependencies{
		KV:     kv,
		Roster: identity.NewDemoRoster(),
		Logger: zap.NewNop(),
	})
	reloaded.Open(ctx)

	require.Equal(t, s.Tickets(), reloaded.Tickets())
	require.Equal(t, s.Inventory(), reloaded.Inventory())
	require.Equal(t, s.Settings(), reloaded.Settings())
	require.Equal(t, ticket, reloaded.Tickets()[0])
	require.Equal(t, item, reloaded.Inventory()[len(reloaded.Inventory())-1])
}

func TestCorruptStorageFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, storage.KeyTickets, []byte("{not json")))
	require.NoError(t, kv.Set(ctx, storage.KeySettings, []byte("][")))

	s := store.New(store.Dependencies{
		KV:     kv,
		Roster: identity.NewDemoRoster(),
		Logger: zap.NewNop(),
	})
	s.Open(ctx)

	require.Len(t, s.Tickets(), 3)
	require.Equal(t, "CDCE Anzoátegui", s.Settings().OrganizationName)
}
