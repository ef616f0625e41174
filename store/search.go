// ABOUTME: Cross-entity fuzzy search over contacts, deals, and activities
// ABOUTME: Ranks merged results by match score and caps them at ten
package store

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/dirmacs/dcrm/models"
)

// ResultKind tags which collection a search result came from.
type ResultKind string

const (
	KindContact  ResultKind = "contact"
	KindDeal     ResultKind = "deal"
	KindActivity ResultKind = "activity"
)

// SearchResult carries the matched entity so the presenting layer can
// render a title, subtitle, and badge without re-querying the store.
// Exactly one of Contact, Deal, Activity is non-nil, per Kind.
type SearchResult struct {
	Kind     ResultKind
	Score    int
	Title    string
	Subtitle string

	Contact  *models.Contact
	Deal     *models.Deal
	Activity *models.Activity
}

const maxSearchResults = 10

// Search fuzzy-matches the query against every contact, deal, and
// activity and returns the merged results sorted by score descending,
// capped at ten. An empty query returns no results.
func (s *Store) Search(query string) []SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var results []SearchResult

	haystacks := make([]string, len(s.data.Contacts))
	for i, c := range s.data.Contacts {
		haystacks[i] = c.FirstName + " " + c.LastName + " " + c.Email + " " + c.Company
	}
	for _, m := range fuzzy.Find(query, haystacks) {
		contact := s.data.Contacts[m.Index]
		subtitle := contact.Email
		if contact.Company != "" {
			subtitle = contact.Company
		}
		results = append(results, SearchResult{
			Kind:     KindContact,
			Score:    m.Score,
			Title:    contact.FullName(),
			Subtitle: subtitle,
			Contact:  &contact,
		})
	}

	haystacks = make([]string, len(s.data.Deals))
	for i, d := range s.data.Deals {
		haystacks[i] = d.Title + " " + d.Company
	}
	for _, m := range fuzzy.Find(query, haystacks) {
		deal := s.data.Deals[m.Index]
		results = append(results, SearchResult{
			Kind:     KindDeal,
			Score:    m.Score,
			Title:    deal.Title,
			Subtitle: deal.Company + " · " + deal.FormatValue(),
			Deal:     &deal,
		})
	}

	haystacks = make([]string, len(s.data.Activities))
	for i, a := range s.data.Activities {
		haystacks[i] = a.Title + " " + a.Description
	}
	for _, m := range fuzzy.Find(query, haystacks) {
		activity := s.data.Activities[m.Index]
		results = append(results, SearchResult{
			Kind:     KindActivity,
			Score:    m.Score,
			Title:    activity.Title,
			Subtitle: activity.ActivityType.DisplayName(),
			Activity: &activity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

// SearchContacts fuzzy-matches the query against contacts only, ordered
// by score descending, with no result cap. An empty query returns every
// contact in store order.
func (s *Store) SearchContacts(query string) []models.Contact {
	if strings.TrimSpace(query) == "" {
		contacts := make([]models.Contact, len(s.data.Contacts))
		copy(contacts, s.data.Contacts)
		return contacts
	}

	haystacks := make([]string, len(s.data.Contacts))
	for i, c := range s.data.Contacts {
		haystacks[i] = c.FirstName + " " + c.LastName + " " + c.Email + " " + c.Company
	}

	var contacts []models.Contact
	for _, m := range fuzzy.Find(query, haystacks) {
		contacts = append(contacts, s.data.Contacts[m.Index])
	}
	return contacts
}
