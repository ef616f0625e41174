// ABOUTME: Contact MCP tool handlers
// ABOUTME: Implements add_contact, find_contacts, update_contact, and delete_contact tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dirmacs/dcrm/models"
	"github.com/dirmacs/dcrm/store"
)

type ContactHandlers struct {
	store *store.Store
}

func NewContactHandlers(s *store.Store) *ContactHandlers {
	return &ContactHandlers{store: s}
}

type AddContactInput struct {
	FirstName string   `json:"first_name" jsonschema:"First name (required)"`
	LastName  string   `json:"last_name" jsonschema:"Last name (required)"`
	Email     string   `json:"email" jsonschema:"Email address (required)"`
	Phone     string   `json:"phone,omitempty" jsonschema:"Phone number"`
	Company   string   `json:"company,omitempty" jsonschema:"Company name"`
	Position  string   `json:"position,omitempty" jsonschema:"Job title"`
	Tags      []string `json:"tags,omitempty" jsonschema:"Free-text tags"`
	Notes     string   `json:"notes,omitempty" jsonschema:"Additional notes about the contact"`
}

type ContactOutput struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Company   string   `json:"company,omitempty"`
	Position  string   `json:"position,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

func contactToOutput(c *models.Contact) ContactOutput {
	return ContactOutput{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Position:  c.Position,
		Tags:      c.Tags,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *ContactHandlers) AddContact(_ context.Context, request *mcp.CallToolRequest, input AddContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, ContactOutput{}, fmt.Errorf("first_name and last_name are required")
	}
	if input.Email == "" {
		return nil, ContactOutput{}, fmt.Errorf("email is required")
	}

	contact := &models.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		Position:  input.Position,
		Tags:      input.Tags,
		Notes:     input.Notes,
	}

	h.store.AddContact(contact)

	return nil, contactToOutput(contact), nil
}

type FindContactsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Fuzzy search query (matches name, email, and company); empty lists all contacts"`
}

type FindContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
}

func (h *ContactHandlers) FindContacts(_ context.Context, request *mcp.CallToolRequest, input FindContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	contacts := h.store.SearchContacts(input.Query)

	result := make([]ContactOutput, len(contacts))
	for i := range contacts {
		result[i] = contactToOutput(&contacts[i])
	}

	return nil, FindContactsOutput{Contacts: result}, nil
}

type UpdateContactInput struct {
	ID        string   `json:"id" jsonschema:"Contact ID (required)"`
	FirstName string   `json:"first_name,omitempty" jsonschema:"New first name"`
	LastName  string   `json:"last_name,omitempty" jsonschema:"New last name"`
	Email     string   `json:"email,omitempty" jsonschema:"New email address"`
	Phone     string   `json:"phone,omitempty" jsonschema:"New phone number"`
	Company   string   `json:"company,omitempty" jsonschema:"New company name"`
	Position  string   `json:"position,omitempty" jsonschema:"New job title"`
	Tags      []string `json:"tags,omitempty" jsonschema:"Replacement tag list"`
	Notes     string   `json:"notes,omitempty" jsonschema:"New notes"`
}

func (h *ContactHandlers) UpdateContact(_ context.Context, request *mcp.CallToolRequest, input UpdateContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	if input.ID == "" {
		return nil, ContactOutput{}, fmt.Errorf("id is required")
	}

	contact := h.store.ContactByID(input.ID)
	if contact == nil {
		return nil, ContactOutput{}, fmt.Errorf("contact not found: %s", input.ID)
	}

	if input.FirstName != "" {
		contact.FirstName = input.FirstName
	}
	if input.LastName != "" {
		contact.LastName = input.LastName
	}
	if input.Email != "" {
		contact.Email = input.Email
	}
	if input.Phone != "" {
		contact.Phone = input.Phone
	}
	if input.Company != "" {
		contact.Company = input.Company
	}
	if input.Position != "" {
		contact.Position = input.Position
	}
	if input.Tags != nil {
		contact.Tags = input.Tags
	}
	if input.Notes != "" {
		contact.Notes = input.Notes
	}
	contact.UpdatedAt = time.Now()

	h.store.UpdateContact(*contact)

	return nil, contactToOutput(contact), nil
}

type DeleteContactInput struct {
	ID string `json:"id" jsonschema:"Contact ID (required)"`
}

type DeleteContactOutput struct {
	Deleted bool `json:"deleted"`
}

func (h *ContactHandlers) DeleteContact(_ context.Context, request *mcp.CallToolRequest, input DeleteContactInput) (*mcp.CallToolResult, DeleteContactOutput, error) {
	if input.ID == "" {
		return nil, DeleteContactOutput{}, fmt.Errorf("id is required")
	}

	if h.store.ContactByID(input.ID) == nil {
		return nil, DeleteContactOutput{Deleted: false}, nil
	}

	h.store.DeleteContact(input.ID)
	return nil, DeleteContactOutput{Deleted: true}, nil
}
