package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchTermChanged EventType = "SearchTermChanged"
	EventAdminDataLoaded   EventType = "AdminDataLoaded"
	EventUserBlocked       EventType = "UserBlocked"
	EventUserUnblocked     EventType = "UserUnblocked"
	EventAdminCreated      EventType = "AdminCreated"
	EventRecordDeleted     EventType = "RecordDeleted"
	EventLoggedIn          EventType = "LoggedIn"
	EventLoggedOut         EventType = "LoggedOut"
	EventThemeChanged      EventType = "ThemeChanged"
	EventLanguageChanged   EventType = "LanguageChanged"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchTermChangedEvent is emitted whenever the search term is written
type SearchTermChangedEvent struct {
	Term string
}

func (e SearchTermChangedEvent) Type() EventType { return EventSearchTermChanged }

// AdminDataLoadedEvent is emitted after admin data was fetched
type AdminDataLoadedEvent struct {
	Users    int
	Projects int
	Datasets int
}

func (e AdminDataLoadedEvent) Type() EventType { return EventAdminDataLoaded }

// UserBlockedEvent is emitted when a user was blocked
type UserBlockedEvent struct {
	UserID string
}

func (e UserBlockedEvent) Type() EventType { return EventUserBlocked }

// UserUnblockedEvent is emitted when a user was unblocked
type UserUnblockedEvent struct {
	UserID string
}

func (e UserUnblockedEvent) Type() EventType { return EventUserUnblocked }

// AdminCreatedEvent is emitted when a new administrator account was created
type AdminCreatedEvent struct {
	Username string
}

func (e AdminCreatedEvent) Type() EventType { return EventAdminCreated }

// RecordDeletedEvent is emitted when a record was removed on the backend
type RecordDeletedEvent struct {
	Resource Resource
	ID       string
}

func (e RecordDeletedEvent) Type() EventType { return EventRecordDeleted }

// LoggedInEvent is emitted after a successful login
type LoggedInEvent struct {
	Username string
}

func (e LoggedInEvent) Type() EventType { return EventLoggedIn }

// LoggedOutEvent is emitted when the session ends
type LoggedOutEvent struct {
	Reason string // "user", "expired", "unauthorized"
}

func (e LoggedOutEvent) Type() EventType { return EventLoggedOut }

// ThemeChangedEvent is emitted when the theme preference changes
type ThemeChangedEvent struct {
	Theme Theme
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// LanguageChangedEvent is emitted when the language preference changes
type LanguageChangedEvent struct {
	Language Language
}

func (e LanguageChangedEvent) Type() EventType { return EventLanguageChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
