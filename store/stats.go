// ABOUTME: Derived pipeline and activity statistics
// ABOUTME: Pure computations over the in-memory state, recomputed on demand
package store

import (
	"sort"

	"github.com/dirmacs/dcrm/models"
)

// TotalPipelineValue sums the value of all open deals (Won and Lost are
// excluded).
func (s *Store) TotalPipelineValue() float64 {
	total := 0.0
	for _, d := range s.data.Deals {
		if d.Stage.IsOpen() {
			total += d.Value
		}
	}
	return total
}

// WeightedPipelineValue sums the probability-weighted value of all open
// deals.
func (s *Store) WeightedPipelineValue() float64 {
	total := 0.0
	for _, d := range s.data.Deals {
		if d.Stage.IsOpen() {
			total += d.WeightedValue()
		}
	}
	return total
}

// WonDealsValue sums the value of deals in the Won stage.
func (s *Store) WonDealsValue() float64 {
	total := 0.0
	for _, d := range s.data.Deals {
		if d.Stage == models.StageWon {
			total += d.Value
		}
	}
	return total
}

// DealsByStage returns all deals in exactly that stage, in store order.
func (s *Store) DealsByStage(stage models.DealStage) []models.Deal {
	var deals []models.Deal
	for _, d := range s.data.Deals {
		if d.Stage == stage {
			deals = append(deals, d)
		}
	}
	return deals
}

// ActiveDealsCount counts deals in the four open stages.
func (s *Store) ActiveDealsCount() int {
	count := 0
	for _, d := range s.data.Deals {
		if d.Stage.IsOpen() {
			count++
		}
	}
	return count
}

// PendingTasksCount counts incomplete Task activities.
func (s *Store) PendingTasksCount() int {
	count := 0
	for _, a := range s.data.Activities {
		if a.ActivityType == models.ActivityTask && !a.Completed {
			count++
		}
	}
	return count
}

// ActivitiesForContact returns all activities referencing the contact,
// in store order.
func (s *Store) ActivitiesForContact(contactID string) []models.Activity {
	var activities []models.Activity
	for _, a := range s.data.Activities {
		if a.ContactID == contactID {
			activities = append(activities, a)
		}
	}
	return activities
}

// ActivitiesForDeal returns all activities referencing the deal, in
// store order.
func (s *Store) ActivitiesForDeal(dealID string) []models.Activity {
	var activities []models.Activity
	for _, a := range s.data.Activities {
		if a.DealID == dealID {
			activities = append(activities, a)
		}
	}
	return activities
}

// DealsForContact returns all deals referencing the contact, in store
// order.
func (s *Store) DealsForContact(contactID string) []models.Deal {
	var deals []models.Deal
	for _, d := range s.data.Deals {
		if d.ContactID == contactID {
			deals = append(deals, d)
		}
	}
	return deals
}

// RecentActivities returns up to limit activities, newest first. Ties
// keep their original store order.
func (s *Store) RecentActivities(limit int) []models.Activity {
	activities := make([]models.Activity, len(s.data.Activities))
	copy(activities, s.data.Activities)

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	if limit >= 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}
