package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged  EventType = "SelectionChanged"
	EventItemAdded         EventType = "ItemAdded"
	EventListToggled       EventType = "ListToggled"
	EventSelectorCleared   EventType = "SelectorCleared"
	EventSearchChanged     EventType = "SearchChanged"
	EventItemsLoaded       EventType = "ItemsLoaded"
	EventSelectionAccepted EventType = "SelectionAccepted"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent carries the full selection after a user change
type SelectionChangedEvent struct {
	Selected []Key
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ItemAddedEvent is emitted when the user creates an item from search text
type ItemAddedEvent struct {
	Key   Key
	Label string
	Total int // item count after the addition
}

func (e ItemAddedEvent) Type() EventType { return EventItemAdded }

// ListToggledEvent is emitted when the dropdown opens or closes
type ListToggledEvent struct {
	Open bool
}

func (e ListToggledEvent) Type() EventType { return EventListToggled }

// SelectorClearedEvent is emitted after "clear all"
type SelectorClearedEvent struct{}

func (e SelectorClearedEvent) Type() EventType { return EventSelectorCleared }

// SearchChangedEvent is emitted when the search text changes
type SearchChangedEvent struct {
	Text string
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// ItemsLoadedEvent is emitted once the host has read its item source
type ItemsLoadedEvent struct {
	Source string
	Count  int
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// SelectionAcceptedEvent is emitted when the host accepts the final selection
type SelectionAcceptedEvent struct {
	Selected []Key
}

func (e SelectionAcceptedEvent) Type() EventType { return EventSelectionAccepted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
