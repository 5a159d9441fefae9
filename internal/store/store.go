package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/identity"
	"github.com/spec-kit/helpdesk/internal/storage"
)

// Store owns the three mutable collections: tickets, inventory and
// settings. Each is persisted independently under its own storage key;
// every mutation writes the whole collection back. The store performs
// no input validation — required-field checks belong to the caller.
type Store struct {
	kv         storage.KV
	roster     *identity.Roster
	logger     *zap.Logger
	dispatcher events.Dispatcher

	mu        sync.RWMutex
	tickets   []domain.Ticket
	inventory []domain.InventoryItem
	settings  domain.AppSettings
}

// Dependencies bundles collaborators for the store.
type Dependencies struct {
	KV         storage.KV
	Roster     *identity.Roster
	Logger     *zap.Logger
	Dispatcher events.Dispatcher
}

// TicketInput describes ticket creation fields. ID and timestamps are
// assigned by the store.
type TicketInput struct {
	UserID         int
	Title          string
	Description    string
	Priority       domain.TicketPriority
	Category       domain.TicketCategory
	Status         domain.TicketStatus
	DepartmentName string
}

// TicketUpdate carries a partial ticket mutation; nil fields are left
// untouched.
type TicketUpdate struct {
	Title          *string
	Description    *string
	Priority       *domain.TicketPriority
	Category       *domain.TicketCategory
	Status         *domain.TicketStatus
	AdminResponse  *string
	DepartmentName *string
}

// InventoryItemInput describes inventory creation fields.
type InventoryItemInput struct {
	Name         string
	Type         domain.InventoryType
	SerialNumber string
	Status       domain.InventoryStatus
	Stock        int
	Description  string
}

// SettingsUpdate carries a partial settings mutation.
type SettingsUpdate struct {
	Logo             *string
	OrganizationName *string
	SystemName       *string
}

// New constructs an unloaded store; call Open before use.
func New(deps Dependencies) *Store {
	return &Store{
		kv:         deps.KV,
		roster:     deps.Roster,
		logger:     deps.Logger,
		dispatcher: deps.Dispatcher,
	}
}

// Open loads every collection from storage. A missing or unparseable
// entry falls back to the seed dataset (tickets, inventory) or the
// fixed defaults (settings); Open itself never fails.
func (s *Store) Open(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = loadCollection(ctx, s, storage.KeyTickets, seedTickets)
	s.inventory = loadCollection(ctx, s, storage.KeyInventory, seedInventory)

	s.settings = defaultSettings()
	if payload, err := s.kv.Get(ctx, storage.KeySettings); err == nil {
		var settings domain.AppSettings
		if jsonErr := json.Unmarshal(payload, &settings); jsonErr == nil {
			s.settings = settings
		} else {
			s.logger.Warn("discarding corrupt settings, using defaults", zap.Error(jsonErr))
		}
	} else if err != storage.ErrKeyNotFound {
		s.logger.Warn("failed to read settings, using defaults", zap.Error(err))
	}

	s.logger.Info("store loaded",
		zap.Int("tickets", len(s.tickets)),
		zap.Int("inventory_items", len(s.inventory)))
}

func loadCollection[T any](ctx context.Context, s *Store, key string, seed func() []T) []T {
	payload, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.logger.Warn("failed to read collection, using seed", zap.String("key", key), zap.Error(err))
		}
		return seed()
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		s.logger.Warn("discarding corrupt collection, using seed", zap.String("key", key), zap.Error(err))
		return seed()
	}
	return items
}

// AddTicket assigns the next id, stamps both timestamps and prepends so
// the collection stays most-recent-first. Status defaults to Open.
func (s *Store) AddTicket(ctx context.Context, input TicketInput) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	ticket := domain.Ticket{
		ID:             maxTicketID(s.tickets) + 1,
		UserID:         input.UserID,
		Title:          input.Title,
		Description:    input.Description,
		Priority:       input.Priority,
		Category:       input.Category,
		Status:         input.Status,
		DepartmentName: input.DepartmentName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}

	s.tickets = append([]domain.Ticket{ticket}, s.tickets...)
	s.persist(ctx, storage.KeyTickets, s.tickets)
	s.publish(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID:       ticket.ID,
			UserID:         ticket.UserID,
			DepartmentName: ticket.DepartmentName,
			Priority:       ticket.Priority,
			Title:          ticket.Title,
		},
	})
	return ticket
}

// UpdateTicket merges the set fields into the matching ticket and bumps
// updated_at. An unknown id leaves the collection unchanged: it signals
// a harmless race with a stale view, not an error.
func (s *Store) UpdateTicket(ctx context.Context, id int, update TicketUpdate) (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID != id {
			continue
		}

		ticket := &s.tickets[i]
		oldStatus := ticket.Status
		if update.Title != nil {
			ticket.Title = *update.Title
		}
		if update.Description != nil {
			ticket.Description = *update.Description
		}
		if update.Priority != nil {
			ticket.Priority = *update.Priority
		}
		if update.Category != nil {
			ticket.Category = *update.Category
		}
		if update.Status != nil {
			ticket.Status = *update.Status
		}
		if update.AdminResponse != nil {
			ticket.AdminResponse = *update.AdminResponse
		}
		if update.DepartmentName != nil {
			ticket.DepartmentName = *update.DepartmentName
		}
		ticket.UpdatedAt = time.Now().UTC()

		s.persist(ctx, storage.KeyTickets, s.tickets)
		s.publish(ctx, events.Event{
			Type: events.EventTicketUpdated,
			Payload: events.TicketUpdatedPayload{
				TicketID:    ticket.ID,
				OldStatus:   oldStatus,
				NewStatus:   ticket.Status,
				HasResponse: ticket.AdminResponse != "",
			},
		})
		return *ticket, true
	}
	return domain.Ticket{}, false
}

// Tickets returns a copy of the full collection, most-recent-first.
func (s *Store) Tickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Ticket(nil), s.tickets...)
}

// TicketsForUser returns the tickets owned by the given user, in
// collection order.
func (s *Store) TicketsForUser(userID int) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owned := make([]domain.Ticket, 0)
	for _, ticket := range s.tickets {
		if ticket.UserID == userID {
			owned = append(owned, ticket)
		}
	}
	return owned
}

// AddInventoryItem assigns the next id and appends, keeping insertion
// order stable. Duplicate serial numbers are permitted.
func (s *Store) AddInventoryItem(ctx context.Context, input InventoryItemInput) domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.InventoryItem{
		ID:           maxItemID(s.inventory) + 1,
		Name:         input.Name,
		Type:         input.Type,
		SerialNumber: input.SerialNumber,
		Status:       input.Status,
		Stock:        input.Stock,
		Description:  input.Description,
		CreatedAt:    time.Now().UTC(),
	}

	s.inventory = append(s.inventory, item)
	s.persist(ctx, storage.KeyInventory, s.inventory)
	s.publish(ctx, events.Event{
		Type: events.EventInventoryItemAdded,
		Payload: events.InventoryItemAddedPayload{
			ItemID:       item.ID,
			Name:         item.Name,
			Type:         item.Type,
			SerialNumber: item.SerialNumber,
			Stock:        item.Stock,
		},
	})
	return item
}

// Inventory returns a copy of the inventory collection.
func (s *Store) Inventory() []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.InventoryItem(nil), s.inventory...)
}

// UpdateSettings shallow-merges the set fields into the singleton. The
// result is visible to all subsequent reads.
func (s *Store) UpdateSettings(ctx context.Context, update SettingsUpdate) domain.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	logoChanged := false
	if update.Logo != nil {
		s.settings.Logo = *update.Logo
		logoChanged = true
	}
	if update.OrganizationName != nil {
		s.settings.OrganizationName = *update.OrganizationName
	}
	if update.SystemName != nil {
		s.settings.SystemName = *update.SystemName
	}

	s.persist(ctx, storage.KeySettings, s.settings)
	s.publish(ctx, events.Event{
		Type: events.EventSettingsUpdated,
		Payload: events.SettingsUpdatedPayload{
			OrganizationName: s.settings.OrganizationName,
			SystemName:       s.settings.SystemName,
			LogoChanged:      logoChanged,
		},
	})
	return s.settings
}

// Settings returns the current settings singleton.
func (s *Store) Settings() domain.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Stats counts tickets by status. Recomputed on every call; the
// collection is small by construction.
func (s *Store) Stats() domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.DashboardStats
	for _, ticket := range s.tickets {
		switch ticket.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		case domain.TicketStatusResolved:
			stats.Resolved++
		}
	}
	return stats
}

// Departments returns every department roster entry in roster order.
func (s *Store) Departments() []domain.Department {
	return s.roster.Departments()
}

// persist serializes value under key. Writes are fire-and-forget: a
// failure is logged and the in-memory mutation stands.
func (s *Store) persist(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err == nil {
		err = s.kv.Set(ctx, key, payload)
	}
	if err != nil {
		s.logger.Warn("failed to persist collection", zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func maxTicketID(tickets []domain.Ticket) int {
	max := 0
	for _, ticket := range tickets {
		if ticket.ID > max {
			max = ticket.ID
		}
	}
	return max
}

func maxItemID(items []domain.InventoryItem) int {
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max
}
