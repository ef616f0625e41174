// ABOUTME: Data models for CRM entities
// ABOUTME: Defines Contact, Deal, Activity structs and their enum metadata
package models

import (
	"fmt"
	"strings"
	"time"
)

type Contact struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the display name for a contact.
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Initials returns up to two uppercase initials for avatar rendering.
func (c *Contact) Initials() string {
	initials := ""
	if c.FirstName != "" {
		initials += string([]rune(c.FirstName)[0])
	}
	if c.LastName != "" {
		initials += string([]rune(c.LastName)[0])
	}
	return strings.ToUpper(initials)
}

type Deal struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	ContactID     string     `json:"contact_id,omitempty"` // weak reference, may dangle
	Company       string     `json:"company"`
	Value         float64    `json:"value"`
	Stage         DealStage  `json:"stage"`
	Probability   int        `json:"probability"`
	ExpectedClose *time.Time `json:"expected_close,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// WeightedValue returns the deal value scaled by its probability.
func (d *Deal) WeightedValue() float64 {
	return d.Value * float64(d.Probability) / 100.0
}

// FormatValue renders the deal value as a compact currency string.
func (d *Deal) FormatValue() string {
	return FormatCurrency(d.Value)
}

type DealStage string

const (
	StageLead        DealStage = "Lead"
	StageQualified   DealStage = "Qualified"
	StageProposal    DealStage = "Proposal"
	StageNegotiation DealStage = "Negotiation"
	StageWon         DealStage = "Won"
	StageLost        DealStage = "Lost"
)

// AllStages returns every stage in pipeline order.
func AllStages() []DealStage {
	return []DealStage{StageLead, StageQualified, StageProposal, StageNegotiation, StageWon, StageLost}
}

// ActiveStages returns the open (non-terminal) stages in pipeline order.
func ActiveStages() []DealStage {
	return []DealStage{StageLead, StageQualified, StageProposal, StageNegotiation}
}

// IsOpen reports whether the stage counts toward the active pipeline.
func (s DealStage) IsOpen() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageNegotiation:
		return true
	}
	return false
}

func (s DealStage) DisplayName() string {
	return string(s)
}

// Color returns the ANSI 256 color code used for stage dots and badges.
func (s DealStage) Color() string {
	switch s {
	case StageLead:
		return "33" // blue
	case StageQualified:
		return "135" // violet
	case StageProposal:
		return "214" // amber
	case StageNegotiation:
		return "205" // pink
	case StageWon:
		return "42" // emerald
	case StageLost:
		return "196" // red
	}
	return "250"
}

// DefaultProbability returns the probability percentage assigned when a
// deal is moved into this stage.
func (s DealStage) DefaultProbability() int {
	switch s {
	case StageLead:
		return 10
	case StageQualified:
		return 25
	case StageProposal:
		return 50
	case StageNegotiation:
		return 75
	case StageWon:
		return 100
	case StageLost:
		return 0
	}
	return 0
}

// ParseStage maps a stage name to its DealStage.
func ParseStage(name string) (DealStage, error) {
	for _, s := range AllStages() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", name)
}

type Activity struct {
	ID           string       `json:"id"`
	ActivityType ActivityType `json:"activity_type"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	ContactID    string       `json:"contact_id,omitempty"` // weak reference
	DealID       string       `json:"deal_id,omitempty"`    // weak reference
	Completed    bool         `json:"completed"`
	DueDate      *time.Time   `json:"due_date,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// FormatDate renders the creation date for list views.
func (a *Activity) FormatDate() string {
	return a.CreatedAt.Format("Jan 2, 2006")
}

type ActivityType string

const (
	ActivityNote    ActivityType = "Note"
	ActivityCall    ActivityType = "Call"
	ActivityEmail   ActivityType = "Email"
	ActivityMeeting ActivityType = "Meeting"
	ActivityTask    ActivityType = "Task"
)

// AllActivityTypes returns every activity type in display order.
func AllActivityTypes() []ActivityType {
	return []ActivityType{ActivityNote, ActivityCall, ActivityEmail, ActivityMeeting, ActivityTask}
}

func (t ActivityType) DisplayName() string {
	return string(t)
}

// Icon returns the glyph shown next to an activity in lists.
func (t ActivityType) Icon() string {
	switch t {
	case ActivityNote:
		return "✎"
	case ActivityCall:
		return "✆"
	case ActivityEmail:
		return "✉"
	case ActivityMeeting:
		return "◷"
	case ActivityTask:
		return "☐"
	}
	return "•"
}

// ParseActivityType maps a type name to its ActivityType.
func ParseActivityType(name string) (ActivityType, error) {
	for _, t := range AllActivityTypes() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown activity type %q", name)
}

// AppData is the aggregate root: the three entity collections in
// insertion order. It is the sole unit of persistence.
type AppData struct {
	Contacts   []Contact  `json:"contacts"`
	Deals      []Deal     `json:"deals"`
	Activities []Activity `json:"activities"`
}

// FormatCurrency renders a monetary value compactly ($1.2M, $45K, $500).
func FormatCurrency(value float64) string {
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("$%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("$%.0fK", value/1_000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}
