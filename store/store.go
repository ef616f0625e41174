// ABOUTME: In-memory data store with whole-file JSON persistence
// ABOUTME: Owns the entity collections and implements all CRUD operations
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dirmacs/dcrm/models"
)

// Store owns the three entity collections and persists them as a single
// JSON document after every mutation. It is single-threaded by design:
// the caller's event loop serializes all access.
type Store struct {
	path string
	data *models.AppData
}

// Open loads the persisted document at path. If the file is absent,
// unreadable, or fails to parse, the store starts with the seed dataset
// instead of failing.
func Open(path string) *Store {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read %s, starting with sample data: %v", path, err)
		}
		s.data = SeedData()
		return s
	}

	data := &models.AppData{}
	if err := json.Unmarshal(raw, data); err != nil {
		log.Printf("Failed to parse %s, starting with sample data: %v", path, err)
		s.data = SeedData()
		return s
	}

	s.data = data
	return s
}

// Data exposes the current in-memory state for read-only rendering.
func (s *Store) Data() *models.AppData {
	return s.data
}

// Path returns the location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// Save persists the current in-memory state immediately. Mutations
// already persist themselves; this exists for explicit initialization.
func (s *Store) Save() {
	s.save()
}

// save writes the whole document to disk. Failures are logged and
// swallowed; the in-memory state stays authoritative until the next
// successful write.
func (s *Store) save() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		log.Printf("Failed to serialize data: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Printf("Failed to create data directory: %v", err)
		return
	}

	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		log.Printf("Failed to save data: %v", err)
	}
}

// stamp fills in identifier and timestamps for a freshly added record,
// unless the caller already set them.
func stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

// Contacts

func (s *Store) AddContact(contact *models.Contact) {
	stamp(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	s.data.Contacts = append(s.data.Contacts, *contact)
	s.save()
}

// UpdateContact replaces the stored contact with the same ID, preserving
// its position. Unknown IDs are a silent no-op. The caller is responsible
// for carrying over CreatedAt and stamping a fresh UpdatedAt.
func (s *Store) UpdateContact(contact models.Contact) {
	for i := range s.data.Contacts {
		if s.data.Contacts[i].ID == contact.ID {
			s.data.Contacts[i] = contact
			s.save()
			return
		}
	}
}

func (s *Store) DeleteContact(id string) {
	kept := s.data.Contacts[:0]
	for _, c := range s.data.Contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.data.Contacts) {
		return
	}
	s.data.Contacts = kept
	s.save()
}

// ContactByID returns a copy of the matching contact, or nil. Weak
// references from deals and activities resolve through this lookup, so a
// dangling ID simply yields nil.
func (s *Store) ContactByID(id string) *models.Contact {
	for i := range s.data.Contacts {
		if s.data.Contacts[i].ID == id {
			c := s.data.Contacts[i]
			return &c
		}
	}
	return nil
}

// Deals

func (s *Store) AddDeal(deal *models.Deal) {
	stamp(&deal.ID, &deal.CreatedAt, &deal.UpdatedAt)
	s.data.Deals = append(s.data.Deals, *deal)
	s.save()
}

func (s *Store) UpdateDeal(deal models.Deal) {
	for i := range s.data.Deals {
		if s.data.Deals[i].ID == deal.ID {
			s.data.Deals[i] = deal
			s.save()
			return
		}
	}
}

func (s *Store) DeleteDeal(id string) {
	kept := s.data.Deals[:0]
	for _, d := range s.data.Deals {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(s.data.Deals) {
		return
	}
	s.data.Deals = kept
	s.save()
}

func (s *Store) DealByID(id string) *models.Deal {
	for i := range s.data.Deals {
		if s.data.Deals[i].ID == id {
			d := s.data.Deals[i]
			return &d
		}
	}
	return nil
}

// UpdateDealStage moves a deal to a new stage and resets its probability
// to the stage default, discarding any manually set value. Unknown IDs
// are a no-op.
func (s *Store) UpdateDealStage(id string, stage models.DealStage) {
	for i := range s.data.Deals {
		if s.data.Deals[i].ID == id {
			s.data.Deals[i].Stage = stage
			s.data.Deals[i].Probability = stage.DefaultProbability()
			s.data.Deals[i].UpdatedAt = time.Now()
			s.save()
			return
		}
	}
}

// Activities

func (s *Store) AddActivity(activity *models.Activity) {
	stamp(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)
	s.data.Activities = append(s.data.Activities, *activity)
	s.save()
}

func (s *Store) UpdateActivity(activity models.Activity) {
	for i := range s.data.Activities {
		if s.data.Activities[i].ID == activity.ID {
			s.data.Activities[i] = activity
			s.save()
			return
		}
	}
}

func (s *Store) DeleteActivity(id string) {
	kept := s.data.Activities[:0]
	for _, a := range s.data.Activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(s.data.Activities) {
		return
	}
	s.data.Activities = kept
	s.save()
}

func (s *Store) ActivityByID(id string) *models.Activity {
	for i := range s.data.Activities {
		if s.data.Activities[i].ID == id {
			a := s.data.Activities[i]
			return &a
		}
	}
	return nil
}

// ToggleActivityCompleted flips the completed flag and stamps UpdatedAt.
// Unknown IDs are a no-op.
func (s *Store) ToggleActivityCompleted(id string) {
	for i := range s.data.Activities {
		if s.data.Activities[i].ID == id {
			s.data.Activities[i].Completed = !s.data.Activities[i].Completed
			s.data.Activities[i].UpdatedAt = time.Now()
			s.save()
			return
		}
	}
}
