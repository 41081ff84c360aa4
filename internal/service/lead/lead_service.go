// Package lead manages contacts as sales funnel entries.
package lead

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/respond"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/contact/lead_status_enum"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"
)

// Service implements tenant-scoped lead CRUD.
type Service struct {
	repos *repository.Repositories
}

// NewService creates the lead service.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

func toRespond(c *model.Contact) *respond.LeadRespond {
	return &respond.LeadRespond{
		ID:          c.ID,
		Nome:        c.Nome,
		Telefone:    c.Telefone,
		Email:       c.Email,
		Avatar:      c.Avatar,
		Status:      c.Status,
		Observacoes: c.Observacoes,
		VendedorID:  c.VendedorID,
		CreatedAt:   c.CreatedAt,
	}
}

// List returns every lead of the tenant.
func (s *Service) List(tenantID uint) ([]respond.LeadRespond, error) {
	contacts, err := s.repos.Contact.FindByTenantID(tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]respond.LeadRespond, 0, len(contacts))
	for i := range contacts {
		result = append(result, *toRespond(&contacts[i]))
	}
	return result, nil
}

// GetByID loads one lead within the tenant.
func (s *Service) GetByID(tenantID, id uint) (*respond.LeadRespond, error) {
	contact, err := s.repos.Contact.FindByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	return toRespond(contact), nil
}

// Create registers a new lead owned by the requesting user.
func (s *Service) Create(tenantID, ownerID uint, req *request.CreateLeadRequest) (*respond.LeadRespond, error) {
	contact := &model.Contact{
		TenantID:    tenantID,
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Status:      lead_status_enum.Novo,
		Observacoes: req.Observacoes,
		VendedorID:  ownerID,
	}
	if err := s.repos.Contact.Create(contact); err != nil {
		return nil, err
	}
	return toRespond(contact), nil
}

// Update edits lead fields. Only non-zero fields are written.
func (s *Service) Update(tenantID uint, req *request.UpdateLeadRequest) error {
	if _, err := s.repos.Contact.FindByTenantAndID(tenantID, req.ID); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Nome != "" {
		updates["nome"] = req.Nome
	}
	if req.Telefone != "" {
		updates["telefone"] = req.Telefone
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Observacoes != "" {
		updates["observacoes"] = req.Observacoes
	}
	if req.VendedorID != 0 {
		updates["vendedor_id"] = req.VendedorID
	}
	if len(updates) == 0 {
		return nil
	}
	return s.repos.Contact.UpdateByTenantAndID(tenantID, req.ID, updates)
}

// UpdateStatus moves a lead through the funnel, rejecting unknown statuses.
func (s *Service) UpdateStatus(tenantID, id uint, status string) error {
	if !lead_status_enum.Valid(status) {
		return errorx.Newf(errorx.CodeInvalidParam, "status de lead inválido: %s", status)
	}
	if _, err := s.repos.Contact.FindByTenantAndID(tenantID, id); err != nil {
		return err
	}
	return s.repos.Contact.UpdateByTenantAndID(tenantID, id, map[string]interface{}{
		"status": status,
	})
}

// Delete removes a lead and leaves its messages orphaned on purpose: the
// history stays queryable by id for audit.
func (s *Service) Delete(tenantID, id uint) error {
	if _, err := s.repos.Contact.FindByTenantAndID(tenantID, id); err != nil {
		return err
	}
	return s.repos.Contact.DeleteByTenantAndID(tenantID, id)
}
