// ABOUTME: Tests for store CRUD operations and persistence
// ABOUTME: Covers ID assignment, silent no-ops, stage updates, and reload
package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirmacs/dcrm/models"
)

// setupTestStore opens a store over an empty persisted document in a
// temp dir, so tests start without the seed dataset.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	err := os.WriteFile(path, []byte(`{"contacts":[],"deals":[],"activities":[]}`), 0644)
	require.NoError(t, err)

	return Open(path)
}

func TestAddContactAssignsIDAndTimestamps(t *testing.T) {
	s := setupTestStore(t)

	first := &models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	second := &models.Contact{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}

	s.AddContact(first)
	s.AddContact(second)

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.CreatedAt.Equal(first.UpdatedAt), "created and updated should match at creation")
	assert.Len(t, s.Data().Contacts, 2)
}

func TestAddContactKeepsCallerValues(t *testing.T) {
	s := setupTestStore(t)

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	contact := &models.Contact{
		ID:        "contact-1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CreatedAt: created,
		UpdatedAt: created,
	}

	s.AddContact(contact)

	assert.Equal(t, "contact-1", s.Data().Contacts[0].ID)
	assert.True(t, s.Data().Contacts[0].CreatedAt.Equal(created))
}

func TestAddContactFillsUpdatedAtWhenOnlyCreatedAtSet(t *testing.T) {
	s := setupTestStore(t)

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	contact := &models.Contact{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CreatedAt: created,
	}

	s.AddContact(contact)

	stored := s.Data().Contacts[0]
	assert.True(t, stored.CreatedAt.Equal(created))
	require.False(t, stored.UpdatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.Before(stored.CreatedAt),
		"updated_at must not precede created_at")
}

func TestUpdateContactUnknownIDIsNoOp(t *testing.T) {
	s := setupTestStore(t)

	s.AddContact(&models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	before := s.Data().Contacts[0]

	s.UpdateContact(models.Contact{ID: "missing", FirstName: "Nobody"})

	require.Len(t, s.Data().Contacts, 1)
	assert.Equal(t, before.FirstName, s.Data().Contacts[0].FirstName)
}

func TestUpdateContactPreservesPosition(t *testing.T) {
	s := setupTestStore(t)

	a := &models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	b := &models.Contact{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}
	c := &models.Contact{FirstName: "Edsger", LastName: "Dijkstra", Email: "ewd@example.com"}
	s.AddContact(a)
	s.AddContact(b)
	s.AddContact(c)

	updated := *b
	updated.Company = "Navy"
	s.UpdateContact(updated)

	require.Len(t, s.Data().Contacts, 3)
	assert.Equal(t, b.ID, s.Data().Contacts[1].ID)
	assert.Equal(t, "Navy", s.Data().Contacts[1].Company)
}

func TestDeleteContact(t *testing.T) {
	s := setupTestStore(t)

	a := &models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	b := &models.Contact{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}
	c := &models.Contact{FirstName: "Edsger", LastName: "Dijkstra", Email: "ewd@example.com"}
	s.AddContact(a)
	s.AddContact(b)
	s.AddContact(c)

	s.DeleteContact(b.ID)

	require.Len(t, s.Data().Contacts, 2)
	assert.Equal(t, a.ID, s.Data().Contacts[0].ID)
	assert.Equal(t, c.ID, s.Data().Contacts[1].ID)

	// Deleting an unknown ID changes nothing
	s.DeleteContact("missing")
	assert.Len(t, s.Data().Contacts, 2)
}

func TestContactByID(t *testing.T) {
	s := setupTestStore(t)

	contact := &models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	s.AddContact(contact)

	found := s.ContactByID(contact.ID)
	require.NotNil(t, found)
	assert.Equal(t, "Ada", found.FirstName)

	assert.Nil(t, s.ContactByID("missing"))
}

func TestUpdateDealStageResetsProbability(t *testing.T) {
	s := setupTestStore(t)

	deal := &models.Deal{Title: "Big Deal", Company: "Acme", Value: 1000, Stage: models.StageLead, Probability: 85}
	s.AddDeal(deal)

	s.UpdateDealStage(deal.ID, models.StageWon)
	require.NotNil(t, s.DealByID(deal.ID))
	assert.Equal(t, 100, s.DealByID(deal.ID).Probability)
	assert.Equal(t, models.StageWon, s.DealByID(deal.ID).Stage)

	s.UpdateDealStage(deal.ID, models.StageLost)
	assert.Equal(t, 0, s.DealByID(deal.ID).Probability)

	// Any stage may follow any other; probability always comes from the table
	s.UpdateDealStage(deal.ID, models.StageQualified)
	assert.Equal(t, 25, s.DealByID(deal.ID).Probability)

	// Unknown deal is a no-op
	s.UpdateDealStage("missing", models.StageWon)
}

func TestToggleActivityCompleted(t *testing.T) {
	s := setupTestStore(t)

	activity := &models.Activity{ActivityType: models.ActivityTask, Title: "Call back"}
	s.AddActivity(activity)

	s.ToggleActivityCompleted(activity.ID)
	found := s.ActivityByID(activity.ID)
	require.NotNil(t, found)
	assert.True(t, found.Completed)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt) || found.UpdatedAt.Equal(found.CreatedAt))

	s.ToggleActivityCompleted(activity.ID)
	assert.False(t, s.ActivityByID(activity.ID).Completed)

	s.ToggleActivityCompleted("missing")
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	err := os.WriteFile(path, []byte(`{"contacts":[],"deals":[],"activities":[]}`), 0644)
	require.NoError(t, err)

	s := Open(path)

	contact := &models.Contact{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Tags:      []string{"vip", "engineering"},
	}
	s.AddContact(contact)

	due := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	deal := &models.Deal{
		Title:         "Engine Contract",
		ContactID:     contact.ID,
		Company:       "Analytical Engines",
		Value:         42000,
		Stage:         models.StageProposal,
		Probability:   50,
		ExpectedClose: &due,
	}
	s.AddDeal(deal)

	activity := &models.Activity{
		ActivityType: models.ActivityTask,
		Title:        "Send draft contract",
		ContactID:    contact.ID,
		DealID:       deal.ID,
		DueDate:      &due,
	}
	s.AddActivity(activity)

	reloaded := Open(path)

	require.Len(t, reloaded.Data().Contacts, 1)
	require.Len(t, reloaded.Data().Deals, 1)
	require.Len(t, reloaded.Data().Activities, 1)

	gotContact := reloaded.Data().Contacts[0]
	assert.Equal(t, contact.ID, gotContact.ID)
	assert.Equal(t, contact.Email, gotContact.Email)
	assert.Equal(t, contact.Tags, gotContact.Tags)
	assert.True(t, contact.CreatedAt.Equal(gotContact.CreatedAt))
	assert.True(t, contact.UpdatedAt.Equal(gotContact.UpdatedAt))

	gotDeal := reloaded.Data().Deals[0]
	assert.Equal(t, deal.ID, gotDeal.ID)
	assert.Equal(t, deal.ContactID, gotDeal.ContactID)
	assert.Equal(t, deal.Value, gotDeal.Value)
	assert.Equal(t, deal.Stage, gotDeal.Stage)
	assert.Equal(t, deal.Probability, gotDeal.Probability)
	require.NotNil(t, gotDeal.ExpectedClose)
	assert.True(t, due.Equal(*gotDeal.ExpectedClose))

	gotActivity := reloaded.Data().Activities[0]
	assert.Equal(t, activity.ID, gotActivity.ID)
	assert.Equal(t, activity.ActivityType, gotActivity.ActivityType)
	assert.Equal(t, activity.ContactID, gotActivity.ContactID)
	assert.Equal(t, activity.DealID, gotActivity.DealID)
	assert.False(t, gotActivity.Completed)
}

func TestOpenMissingFileSeedsSampleData(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "data.json"))

	assert.Len(t, s.Data().Contacts, 5)
	assert.Len(t, s.Data().Deals, 6)
	assert.Len(t, s.Data().Activities, 6)
}

func TestOpenCorruptFileSeedsSampleData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := Open(path)

	assert.Len(t, s.Data().Contacts, 5)
}

func TestSeedDatasetStats(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "data.json"))

	assert.Equal(t, 5, s.ActiveDealsCount())
	assert.Equal(t, 50000.0, s.WonDealsValue())
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// Data path nested under a regular file: every save fails
	s := Open(filepath.Join(blocker, "nested", "data.json"))

	contact := &models.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	s.AddContact(contact)

	// Mutation still applied in memory
	assert.NotNil(t, s.ContactByID(contact.ID))
}
