// Package whatsapp manages gateway instances: creation, live state
// reconciliation, removal and contact import.
package whatsapp

import (
	"context"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/config"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/respond"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/gateway/evolution"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/creds"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/connection/connection_status_enum"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"go.uber.org/zap"
)

// Service orchestrates gateway instances for one deployment.
type Service struct {
	repos    *repository.Repositories
	gateway  evolution.Gateway
	resolver *creds.Resolver
	// webhookURL is sent on instance creation so the gateway delivers
	// events back to us. Empty when the public URL is not configured.
	webhookURL string
}

// NewService creates the whatsapp service. The webhook URL is derived from
// the configured public app URL.
func NewService(repos *repository.Repositories, gateway evolution.Gateway, resolver *creds.Resolver) *Service {
	webhookURL := ""
	if appURL := config.GetConfig().MainConfig.AppURL; appURL != "" {
		webhookURL = appURL + "/api/webhook"
	}
	return &Service{
		repos:      repos,
		gateway:    gateway,
		resolver:   resolver,
		webhookURL: webhookURL,
	}
}

// ListConnections returns the tenant's stored connections.
func (s *Service) ListConnections(tenantID uint) ([]respond.ConnectionRespond, error) {
	conns, err := s.repos.Connection.FindByTenantID(tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]respond.ConnectionRespond, 0, len(conns))
	for _, c := range conns {
		result = append(result, respond.ConnectionRespond{
			ID:     c.ID,
			Nome:   c.Nome,
			Numero: c.Numero,
			Status: c.Status,
			QrCode: c.QrCode,
		})
	}
	return result, nil
}

// CreateConnection registers the instance at the gateway, fetches the first
// QR code and upserts the local row with status "aguardando". The row is
// persisted even when the QR fetch fails, so a later state check can retry.
func (s *Service) CreateConnection(ctx context.Context, tenantID uint, instanceName string) (*respond.ConnectionRespond, error) {
	credentials, err := s.resolver.Get(tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := s.gateway.CreateInstance(ctx, credentials, instanceName, s.webhookURL); err != nil {
		return nil, err
	}

	qrCode, err := s.gateway.ConnectInstance(ctx, credentials, instanceName)
	if err != nil {
		zap.L().Warn("QR code indisponível na criação, seguindo sem ele",
			zap.String("instance", instanceName), zap.Error(err))
		qrCode = ""
	}

	existing, err := s.repos.Connection.FindByTenantAndNome(tenantID, instanceName)
	if err != nil && !errorx.IsNotFound(err) {
		return nil, err
	}

	if existing == nil {
		conn := &model.WhatsappConnection{
			TenantID: tenantID,
			Nome:     instanceName,
			Numero:   "Carregando...",
			Status:   connection_status_enum.Aguardando,
			QrCode:   qrCode,
		}
		if err := s.repos.Connection.Create(conn); err != nil {
			return nil, err
		}
		existing = conn
	} else {
		updates := map[string]interface{}{
			"status":  connection_status_enum.Aguardando,
			"qr_code": qrCode,
		}
		if err := s.repos.Connection.UpdateFields(tenantID, instanceName, updates); err != nil {
			return nil, err
		}
		existing.Status = connection_status_enum.Aguardando
		existing.QrCode = qrCode
	}

	return &respond.ConnectionRespond{
		ID:     existing.ID,
		Nome:   existing.Nome,
		Numero: existing.Numero,
		Status: existing.Status,
		QrCode: existing.QrCode,
	}, nil
}

// GetConnectionState reconciles the stored status with the gateway's live
// state. The flow:
//  1. resolve credentials; a misconfigured tenant fails here, before any
//     gateway call or database write;
//  2. fetch the live state; a fetch failure is treated as unknown, which
//     maps to disconnected;
//  3. when disconnected, try to refresh the QR code since the stored one
//     has likely expired;
//  4. persist: status always, QR cleared when connected, QR overwritten
//     only when a fresh one arrived.
//
// The response carries the raw gateway state and only a freshly obtained QR.
func (s *Service) GetConnectionState(ctx context.Context, tenantID uint, instanceName string) (*respond.ConnectionStateRespond, error) {
	credentials, err := s.resolver.Get(tenantID)
	if err != nil {
		return nil, err
	}

	rawState, err := s.gateway.FetchConnectionState(ctx, credentials, instanceName)
	if err != nil {
		zap.L().Warn("falha ao consultar estado, tratando como desconectado",
			zap.String("instance", instanceName), zap.Error(err))
		rawState = "close"
	}
	connected := rawState == connection_status_enum.GatewayStateOpen

	newQrCode := ""
	if !connected {
		qr, err := s.gateway.ConnectInstance(ctx, credentials, instanceName)
		if err != nil {
			zap.L().Warn("falha ao renovar QR code",
				zap.String("instance", instanceName), zap.Error(err))
		} else {
			newQrCode = qr
		}
	}

	updates := map[string]interface{}{}
	if connected {
		updates["status"] = connection_status_enum.Conectado
		updates["qr_code"] = ""
	} else {
		updates["status"] = connection_status_enum.Desconectado
		if newQrCode != "" {
			updates["qr_code"] = newQrCode
		}
	}
	if err := s.repos.Connection.UpdateFields(tenantID, instanceName, updates); err != nil {
		// The caller still gets the live state; the next check will retry
		// the persistence.
		zap.L().Error("falha ao persistir estado da conexão",
			zap.String("instance", instanceName), zap.Error(err))
	}

	return &respond.ConnectionStateRespond{
		InstanceName: instanceName,
		State:        rawState,
		Conectado:    connected,
		QrCode:       newQrCode,
	}, nil
}

// SyncStatus probes the live state without touching stored rows.
func (s *Service) SyncStatus(ctx context.Context, tenantID uint, instanceName string) (*respond.ConnectionStateRespond, error) {
	credentials, err := s.resolver.Get(tenantID)
	if err != nil {
		return nil, err
	}
	rawState, err := s.gateway.FetchConnectionState(ctx, credentials, instanceName)
	if err != nil {
		rawState = "close"
	}
	return &respond.ConnectionStateRespond{
		InstanceName: instanceName,
		State:        rawState,
		Conectado:    rawState == connection_status_enum.GatewayStateOpen,
	}, nil
}

// DeleteConnection logs the instance out and deletes it at the gateway,
// best-effort, then always removes the local row.
func (s *Service) DeleteConnection(ctx context.Context, tenantID uint, instanceName string) error {
	credentials, err := s.resolver.Get(tenantID)
	if err != nil {
		return err
	}
	s.gateway.LogoutInstance(ctx, credentials, instanceName)
	s.gateway.DeleteInstance(ctx, credentials, instanceName)
	return s.repos.Connection.DeleteByTenantAndNome(tenantID, instanceName)
}

// SyncContacts imports the instance's contact list into the tenant. Existing
// contacts (matched by phone within the tenant) get name and avatar updated;
// unknown ones are inserted as fresh leads owned by the requesting user.
// Per-contact failures are collected, not fatal.
func (s *Service) SyncContacts(ctx context.Context, tenantID, ownerID uint, instanceName string) (*respond.SyncContactsRespond, error) {
	credentials, err := s.resolver.Get(tenantID)
	if err != nil {
		return nil, err
	}

	gatewayContacts, err := s.gateway.FetchContacts(ctx, credentials, instanceName)
	if err != nil {
		return nil, err
	}

	result := &respond.SyncContactsRespond{Erros: []string{}}
	for _, gc := range gatewayContacts {
		telefone := normalizePhone(gc.ID)
		if telefone == "" {
			telefone = gc.Number
		}
		if telefone == "" {
			continue
		}

		existing, err := s.repos.Contact.FindByTenantAndTelefone(tenantID, telefone)
		switch {
		case err == nil:
			updates := map[string]interface{}{}
			if gc.Name != "" {
				updates["nome"] = gc.Name
			}
			if gc.ProfilePicURL != "" {
				updates["avatar"] = gc.ProfilePicURL
			}
			if len(updates) == 0 {
				continue
			}
			if err := s.repos.Contact.UpdateByTenantAndID(tenantID, existing.ID, updates); err != nil {
				result.Erros = append(result.Erros, "erro ao atualizar contato "+telefone)
				continue
			}
			result.Atualizados++
		case errorx.IsNotFound(err):
			nome := gc.Name
			if nome == "" {
				nome = telefone
			}
			contact := &model.Contact{
				TenantID:   tenantID,
				Nome:       nome,
				Telefone:   telefone,
				Avatar:     gc.ProfilePicURL,
				VendedorID: ownerID,
			}
			if err := s.repos.Contact.Create(contact); err != nil {
				result.Erros = append(result.Erros, "erro ao criar contato "+telefone)
				continue
			}
			result.Sincronizados++
		default:
			result.Erros = append(result.Erros, "erro ao consultar contato "+telefone)
		}
	}

	zap.L().Info("sincronização de contatos concluída",
		zap.Uint("tenantId", tenantID),
		zap.Int("sincronizados", result.Sincronizados),
		zap.Int("atualizados", result.Atualizados),
		zap.Int("erros", len(result.Erros)))
	return result, nil
}
