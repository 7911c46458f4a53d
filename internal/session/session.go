package session

import (
	"log"

	"storefront/internal/storage"
)

// storageKey is the namespace the session context has always persisted under.
const storageKey = "planet-kebab-app-store"

type state struct {
	StoreID     *int    `json:"storeId"`
	CountryCode *string `json:"countryCode"`
	CountryID   *int    `json:"countryId"`
}

// Session holds the customer's current store and country selection. Each
// field stays unset until chosen and is only ever overwritten by a new
// selection, never auto-cleared. Mutations write through to storage.
type Session struct {
	store storage.Store
	state state
}

// New restores the session from storage, starting unset when no usable
// record exists.
func New(store storage.Store) (*Session, error) {
	s := &Session{store: store}

	ok, err := store.Load(storageKey, &s.state)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.state = state{}
	}
	return s, nil
}

func (s *Session) StoreID() (int, bool) {
	if s.state.StoreID == nil {
		return 0, false
	}
	return *s.state.StoreID, true
}

func (s *Session) CountryCode() (string, bool) {
	if s.state.CountryCode == nil {
		return "", false
	}
	return *s.state.CountryCode, true
}

func (s *Session) CountryID() (int, bool) {
	if s.state.CountryID == nil {
		return 0, false
	}
	return *s.state.CountryID, true
}

func (s *Session) SetStoreID(id int) {
	s.state.StoreID = &id
	s.persist()
}

func (s *Session) SetCountryCode(code string) {
	s.state.CountryCode = &code
	s.persist()
}

func (s *Session) SetCountryID(id int) {
	s.state.CountryID = &id
	s.persist()
}

func (s *Session) persist() {
	if err := s.store.Save(storageKey, s.state); err != nil {
		log.Printf("[SESSION] persist failed: %v", err)
	}
}
