// ABOUTME: Edit and create forms for contacts, deals, and activities
// ABOUTME: textinput-based forms with tab focus cycling
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirmacs/dcrm/models"
)

func (m Model) renderEditView() string {
	var s strings.Builder

	action := "NEW"
	if m.editingID != "" {
		action = "EDIT"
	}
	s.WriteString(titleStyle.Render(action + " " + m.entityName()))
	s.WriteString("\n\n")

	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(statLabelStyle.Render(fmt.Sprintf("%-12s", m.formLabels[i])))
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("Tab: Next field • Enter: Save • Esc: Cancel"))
	return s.String()
}

func (m Model) entityName() string {
	switch m.view {
	case ViewContacts:
		return "CONTACT"
	case ViewDeals:
		return "DEAL"
	case ViewActivities:
		return "ACTIVITY"
	}
	return ""
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeBrowse
		m.status = ""
		return m, nil
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab":
		m.focusIndex = (m.focusIndex + len(m.formInputs) - 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		if err := m.saveEntity(); err != nil {
			m.status = err.Error()
		} else {
			m.mode = ModeBrowse
			m.status = "Saved"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m *Model) newForm(labels []string, values []string) {
	m.formLabels = labels
	m.formInputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label
		input.CharLimit = 200
		input.SetValue(values[i])
		m.formInputs[i] = input
	}
	m.focusIndex = 0
	m.updateFormFocus()
	m.mode = ModeEdit
	m.status = ""
}

func (m *Model) startContactForm(contact *models.Contact) {
	labels := []string{"First name", "Last name", "Email", "Phone", "Company", "Position", "Tags", "Notes"}
	values := make([]string, len(labels))
	m.editingID = ""
	if contact != nil {
		m.editingID = contact.ID
		values = []string{
			contact.FirstName, contact.LastName, contact.Email, contact.Phone,
			contact.Company, contact.Position, strings.Join(contact.Tags, ", "),
			contact.Notes,
		}
	}
	m.newForm(labels, values)
}

func (m *Model) startDealForm(deal *models.Deal) {
	labels := []string{"Title", "Company", "Value", "Stage", "Probability", "Notes"}
	values := []string{"", "", "", string(models.StageLead), "", ""}
	m.editingID = ""
	if deal != nil {
		m.editingID = deal.ID
		values = []string{
			deal.Title, deal.Company, strconv.FormatFloat(deal.Value, 'f', -1, 64),
			string(deal.Stage), strconv.Itoa(deal.Probability), deal.Notes,
		}
	}
	m.newForm(labels, values)
}

func (m *Model) startActivityForm() {
	labels := []string{"Type", "Title", "Description"}
	values := []string{string(models.ActivityNote), "", ""}
	m.editingID = ""
	m.newForm(labels, values)
}

func (m *Model) saveEntity() error {
	switch m.view {
	case ViewContacts:
		return m.saveContact()
	case ViewDeals:
		return m.saveDeal()
	case ViewActivities:
		return m.saveActivity()
	}
	return nil
}

func (m *Model) saveContact() error {
	get := m.formValue
	if get("First name") == "" || get("Last name") == "" {
		return fmt.Errorf("first and last name are required")
	}
	if get("Email") == "" {
		return fmt.Errorf("email is required")
	}

	contact := models.Contact{
		FirstName: get("First name"),
		LastName:  get("Last name"),
		Email:     get("Email"),
		Phone:     get("Phone"),
		Company:   get("Company"),
		Position:  get("Position"),
		Notes:     get("Notes"),
	}
	for _, tag := range strings.Split(get("Tags"), ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			contact.Tags = append(contact.Tags, trimmed)
		}
	}

	if m.editingID != "" {
		existing := m.store.ContactByID(m.editingID)
		if existing == nil {
			return fmt.Errorf("contact no longer exists")
		}
		contact.ID = existing.ID
		contact.CreatedAt = existing.CreatedAt
		contact.UpdatedAt = time.Now()
		m.store.UpdateContact(contact)
		return nil
	}

	m.store.AddContact(&contact)
	return nil
}

func (m *Model) saveDeal() error {
	get := m.formValue
	if get("Title") == "" {
		return fmt.Errorf("title is required")
	}
	if get("Company") == "" {
		return fmt.Errorf("company is required")
	}

	value := 0.0
	if raw := get("Value"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			return fmt.Errorf("value must be a non-negative number")
		}
		value = parsed
	}

	stage, err := models.ParseStage(get("Stage"))
	if err != nil {
		return err
	}

	probability := stage.DefaultProbability()
	if raw := get("Probability"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 100 {
			return fmt.Errorf("probability must be 0-100")
		}
		probability = parsed
	}

	deal := models.Deal{
		Title:       get("Title"),
		Company:     get("Company"),
		Value:       value,
		Stage:       stage,
		Probability: probability,
		Notes:       get("Notes"),
	}

	if m.editingID != "" {
		existing := m.store.DealByID(m.editingID)
		if existing == nil {
			return fmt.Errorf("deal no longer exists")
		}
		deal.ID = existing.ID
		deal.ContactID = existing.ContactID
		deal.ExpectedClose = existing.ExpectedClose
		deal.CreatedAt = existing.CreatedAt
		deal.UpdatedAt = time.Now()
		m.store.UpdateDeal(deal)
		return nil
	}

	m.store.AddDeal(&deal)
	return nil
}

func (m *Model) saveActivity() error {
	get := m.formValue
	if get("Title") == "" {
		return fmt.Errorf("title is required")
	}

	activityType, err := models.ParseActivityType(get("Type"))
	if err != nil {
		return err
	}

	activity := models.Activity{
		ActivityType: activityType,
		Title:        get("Title"),
		Description:  get("Description"),
	}

	m.store.AddActivity(&activity)
	return nil
}

// formValue reads a field by its label.
func (m *Model) formValue(label string) string {
	for i, l := range m.formLabels {
		if l == label {
			return strings.TrimSpace(m.formInputs[i].Value())
		}
	}
	return ""
}
