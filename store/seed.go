// ABOUTME: Fixed sample dataset used when no persisted data exists
// ABOUTME: Five contacts, six deals, and six activities referencing them
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/dirmacs/dcrm/models"
)

// SeedData builds the sample dataset a fresh install starts with.
func SeedData() *models.AppData {
	now := time.Now()
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	contacts := []models.Contact{
		{
			ID:        uuid.New().String(),
			FirstName: "Sarah",
			LastName:  "Chen",
			Email:     "sarah.chen@novatech.io",
			Phone:     "555-0134",
			Company:   "NovaTech",
			Position:  "VP Engineering",
			Tags:      []string{"decision-maker", "technical"},
			CreatedAt: daysAgo(42),
			UpdatedAt: daysAgo(42),
		},
		{
			ID:        uuid.New().String(),
			FirstName: "Marcus",
			LastName:  "Webb",
			Email:     "mwebb@apexlogistics.com",
			Phone:     "555-0178",
			Company:   "Apex Logistics",
			Position:  "Director of Operations",
			Tags:      []string{"warm-lead"},
			CreatedAt: daysAgo(35),
			UpdatedAt: daysAgo(35),
		},
		{
			ID:        uuid.New().String(),
			FirstName: "Priya",
			LastName:  "Patel",
			Email:     "priya@brightside.co",
			Company:   "Brightside Studio",
			Position:  "Founder",
			Tags:      []string{"founder", "referral"},
			Notes:     "Introduced by Marcus at the logistics summit.",
			CreatedAt: daysAgo(28),
			UpdatedAt: daysAgo(28),
		},
		{
			ID:        uuid.New().String(),
			FirstName: "Tom",
			LastName:  "Okafor",
			Email:     "t.okafor@meridianbank.com",
			Phone:     "555-0192",
			Company:   "Meridian Bank",
			Position:  "Procurement Lead",
			Tags:      []string{"enterprise"},
			CreatedAt: daysAgo(21),
			UpdatedAt: daysAgo(21),
		},
		{
			ID:        uuid.New().String(),
			FirstName: "Elena",
			LastName:  "Rodriguez",
			Email:     "elena.r@summitretail.com",
			Company:   "Summit Retail",
			Position:  "CTO",
			Tags:      []string{"technical", "expansion"},
			CreatedAt: daysAgo(14),
			UpdatedAt: daysAgo(14),
		},
	}

	close30 := now.AddDate(0, 0, 30)
	close45 := now.AddDate(0, 0, 45)
	close60 := now.AddDate(0, 0, 60)

	deals := []models.Deal{
		{
			ID:            uuid.New().String(),
			Title:         "NovaTech Platform License",
			ContactID:     contacts[0].ID,
			Company:       "NovaTech",
			Value:         85000,
			Stage:         models.StageNegotiation,
			Probability:   models.StageNegotiation.DefaultProbability(),
			ExpectedClose: &close30,
			CreatedAt:     daysAgo(40),
			UpdatedAt:     daysAgo(5),
		},
		{
			ID:            uuid.New().String(),
			Title:         "Apex Fleet Tracking Rollout",
			ContactID:     contacts[1].ID,
			Company:       "Apex Logistics",
			Value:         120000,
			Stage:         models.StageProposal,
			Probability:   models.StageProposal.DefaultProbability(),
			ExpectedClose: &close45,
			CreatedAt:     daysAgo(32),
			UpdatedAt:     daysAgo(7),
		},
		{
			ID:          uuid.New().String(),
			Title:       "Brightside Design Retainer",
			ContactID:   contacts[2].ID,
			Company:     "Brightside Studio",
			Value:       50000,
			Stage:       models.StageWon,
			Probability: models.StageWon.DefaultProbability(),
			CreatedAt:   daysAgo(26),
			UpdatedAt:   daysAgo(3),
		},
		{
			ID:            uuid.New().String(),
			Title:         "Meridian Compliance Suite",
			ContactID:     contacts[3].ID,
			Company:       "Meridian Bank",
			Value:         200000,
			Stage:         models.StageQualified,
			Probability:   models.StageQualified.DefaultProbability(),
			ExpectedClose: &close60,
			Notes:         "Security review scheduled before proposal.",
			CreatedAt:     daysAgo(18),
			UpdatedAt:     daysAgo(4),
		},
		{
			ID:          uuid.New().String(),
			Title:       "Summit Storefront Upgrade",
			ContactID:   contacts[4].ID,
			Company:     "Summit Retail",
			Value:       65000,
			Stage:       models.StageLead,
			Probability: models.StageLead.DefaultProbability(),
			CreatedAt:   daysAgo(12),
			UpdatedAt:   daysAgo(12),
		},
		{
			ID:          uuid.New().String(),
			Title:       "NovaTech Support Expansion",
			ContactID:   contacts[0].ID,
			Company:     "NovaTech",
			Value:       30000,
			Stage:       models.StageLead,
			Probability: models.StageLead.DefaultProbability(),
			CreatedAt:   daysAgo(9),
			UpdatedAt:   daysAgo(9),
		},
	}

	due2 := now.AddDate(0, 0, 2)
	due7 := now.AddDate(0, 0, 7)

	activities := []models.Activity{
		{
			ID:           uuid.New().String(),
			ActivityType: models.ActivityCall,
			Title:        "Discovery call with Sarah",
			Description:  "Walked through platform requirements and integration points.",
			ContactID:    contacts[0].ID,
			DealID:       deals[0].ID,
			Completed:    true,
			CreatedAt:    daysAgo(38),
			UpdatedAt:    daysAgo(38),
		},
		{
			ID:           uuid.New().String(),
			ActivityType: models.ActivityEmail,
			Title:        "Sent proposal to Apex",
			Description:  "Fleet tracking rollout proposal, v2 pricing.",
			ContactID:    contacts[1].ID,
			DealID:       deals[1].ID,
			Completed:    true,
			CreatedAt:    daysAgo(15),
			UpdatedAt:    daysAgo(15),
		},
		{
			ID:           uuid.New().String(),
			ActivityType: models.ActivityMeeting,
			Title:        "Kickoff with Brightside",
			ContactID:    contacts[2].ID,
			DealID:       deals[2].ID,
			Completed:    true,
			CreatedAt:    daysAgo(10),
			UpdatedAt:    daysAgo(10),
		},
		{
			ID:           uuid.New().String(),
			ActivityType: models.ActivityTask,
			Title:        "Prepare Meridian security docs",
			Description:  "SOC 2 report plus data residency summary.",
			ContactID:    contacts[3].ID,
			DealID:       deals[3].ID,
			DueDate:      &due2,
			CreatedAt:    daysAgo(6),
			UpdatedAt:    daysAgo(6),
		},
		{
			ID:           uuid.New().String(),
			ActivityType: models.ActivityTask,
			Title:        "Follow up with Elena on storefront demo",
			ContactID:    contacts[4].ID,
			DealID:       deals[4].ID,
			DueDate:      &due7,
			CreatedAt:    daysAgo(4),
			UpdatedAt:    daysAgo(4),
		},
		{
			ID:           uuid.New().String(),
			ActivityType: models.ActivityNote,
			Title:        "Negotiation notes",
			Description:  "Sarah pushed back on support tier pricing; legal wants net-60.",
			ContactID:    contacts[0].ID,
			DealID:       deals[0].ID,
			CreatedAt:    daysAgo(2),
			UpdatedAt:    daysAgo(2),
		},
	}

	return &models.AppData{
		Contacts:   contacts,
		Deals:      deals,
		Activities: activities,
	}
}
