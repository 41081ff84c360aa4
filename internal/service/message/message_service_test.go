package message

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/gateway/evolution"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/creds"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/inbox"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"
)

type fakeTenantRepo struct{}

func (f *fakeTenantRepo) FindByID(id uint) (*model.Tenant, error) {
	return &model.Tenant{
		Nome:            "Loja",
		EvolutionApiUrl: "http://gateway.local",
		EvolutionApiKey: "chave",
	}, nil
}
func (f *fakeTenantRepo) Create(tenant *model.Tenant) error                       { return nil }
func (f *fakeTenantRepo) UpdateCredentials(id uint, baseURL, apiKey string) error { return nil }

type fakeContactRepo struct {
	contact *model.Contact
}

func (f *fakeContactRepo) FindByTenantAndID(tenantID, id uint) (*model.Contact, error) {
	if f.contact != nil && f.contact.ID == id && f.contact.TenantID == tenantID {
		return f.contact, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "contato não encontrado")
}
func (f *fakeContactRepo) FindByTenantAndTelefone(tenantID uint, telefone string) (*model.Contact, error) {
	return nil, errorx.New(errorx.CodeNotFound, "contato não encontrado")
}
func (f *fakeContactRepo) FindByTenantID(tenantID uint) ([]model.Contact, error) {
	if f.contact == nil {
		return nil, nil
	}
	return []model.Contact{*f.contact}, nil
}
func (f *fakeContactRepo) Create(contact *model.Contact) error { return nil }
func (f *fakeContactRepo) UpdateByTenantAndID(tenantID, id uint, updates map[string]interface{}) error {
	return nil
}
func (f *fakeContactRepo) DeleteByTenantAndID(tenantID, id uint) error { return nil }

type fakeMessageRepo struct {
	created    []*model.Message
	markedRead []uint
	unread     int64
	nextID     uint
}

func (f *fakeMessageRepo) Create(message *model.Message) error {
	f.nextID++
	message.ID = f.nextID
	f.created = append(f.created, message)
	return nil
}
func (f *fakeMessageRepo) FindByContato(tenantID, contatoID uint) ([]model.Message, error) {
	return nil, nil
}
func (f *fakeMessageRepo) MarkAsRead(tenantID, contatoID uint) error {
	f.markedRead = append(f.markedRead, contatoID)
	return nil
}
func (f *fakeMessageRepo) CountUnread(tenantID, contatoID uint) (int64, error) {
	return f.unread, nil
}

type fakeGateway struct {
	sendErr  error
	sent     []string
	sentTo   []string
	instance []string
}

func (f *fakeGateway) CreateInstance(ctx context.Context, c evolution.Credentials, name, webhookURL string) (*evolution.CreateInstanceResult, error) {
	return &evolution.CreateInstanceResult{}, nil
}
func (f *fakeGateway) ConnectInstance(ctx context.Context, c evolution.Credentials, name string) (string, error) {
	return "", nil
}
func (f *fakeGateway) FetchConnectionState(ctx context.Context, c evolution.Credentials, name string) (string, error) {
	return "open", nil
}
func (f *fakeGateway) FetchInstanceInfo(ctx context.Context, c evolution.Credentials, name string) (json.RawMessage, error) {
	return nil, nil
}
func (f *fakeGateway) LogoutInstance(ctx context.Context, c evolution.Credentials, name string) {}
func (f *fakeGateway) DeleteInstance(ctx context.Context, c evolution.Credentials, name string) {}
func (f *fakeGateway) FetchContacts(ctx context.Context, c evolution.Credentials, name string) ([]evolution.Contact, error) {
	return nil, nil
}
func (f *fakeGateway) SendText(ctx context.Context, c evolution.Credentials, name, number, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.instance = append(f.instance, name)
	f.sentTo = append(f.sentTo, number)
	f.sent = append(f.sent, text)
	return nil
}

type fakeBroker struct {
	published []inbox.Event
}

func (f *fakeBroker) Publish(event inbox.Event) error {
	f.published = append(f.published, event)
	return nil
}
func (f *fakeBroker) Close() error { return nil }

func newTestService(gateway *fakeGateway) (*Service, *fakeMessageRepo, *fakeBroker) {
	contact := &model.Contact{TenantID: 1, Nome: "Maria", Telefone: "5511999999999"}
	contact.ID = 5
	messages := &fakeMessageRepo{}
	broker := &fakeBroker{}
	repos := &repository.Repositories{
		Contact: &fakeContactRepo{contact: contact},
		Message: messages,
	}
	resolver := creds.NewResolver(&fakeTenantRepo{})
	return NewService(repos, gateway, resolver, broker), messages, broker
}

func TestSendMessagePersistsOutbound(t *testing.T) {
	gateway := &fakeGateway{}
	service, messages, broker := newTestService(gateway)

	result, err := service.SendMessage(context.Background(), 1, 3, 5, "vendas", "bom dia!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gateway.sent) != 1 || gateway.sentTo[0] != "5511999999999" {
		t.Fatalf("expected delivery to the contact phone, got %v", gateway.sentTo)
	}
	if len(messages.created) != 1 {
		t.Fatalf("expected one persisted message, got %d", len(messages.created))
	}
	msg := messages.created[0]
	if msg.Remetente != "usuario" || !msg.Lida || msg.Tipo != "texto" {
		t.Fatalf("outbound message must be usuario/read/texto, got %+v", msg)
	}
	if msg.VendedorID != 3 {
		t.Fatalf("outbound message must record the sender, got %d", msg.VendedorID)
	}
	if result.Conteudo != "bom dia!" {
		t.Fatalf("unexpected response content %q", result.Conteudo)
	}
	if len(broker.published) != 1 {
		t.Fatalf("expected one inbox event, got %d", len(broker.published))
	}
}

func TestSendMessageFailureDoesNotPersist(t *testing.T) {
	gateway := &fakeGateway{sendErr: errorx.New(errorx.CodeGatewayError, "falha ao enviar mensagem")}
	service, messages, _ := newTestService(gateway)

	_, err := service.SendMessage(context.Background(), 1, 3, 5, "vendas", "bom dia!")
	if errorx.GetCode(err) != errorx.CodeGatewayError {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if len(messages.created) != 0 {
		t.Fatal("failed delivery must not persist a message")
	}
}

func TestSendMessageCrossTenantContact(t *testing.T) {
	gateway := &fakeGateway{}
	service, _, _ := newTestService(gateway)

	_, err := service.SendMessage(context.Background(), 2, 3, 5, "vendas", "oi")
	if !errorx.IsNotFound(err) {
		t.Fatalf("expected not found for another tenant, got %v", err)
	}
	if len(gateway.sent) != 0 {
		t.Fatal("no delivery may happen for a cross-tenant contact")
	}
}

func TestListConversationsCarriesUnreadCount(t *testing.T) {
	gateway := &fakeGateway{}
	service, messages, _ := newTestService(gateway)
	messages.unread = 4

	conversations, err := service.ListConversations(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conversations) != 1 || conversations[0].NaoLidas != 4 {
		t.Fatalf("unexpected conversations: %+v", conversations)
	}
}

func TestMarkAsReadValidatesTenant(t *testing.T) {
	gateway := &fakeGateway{}
	service, messages, _ := newTestService(gateway)

	if err := service.MarkAsRead(2, 5); !errorx.IsNotFound(err) {
		t.Fatalf("expected not found for another tenant, got %v", err)
	}
	if len(messages.markedRead) != 0 {
		t.Fatal("cross-tenant mark-as-read must not reach the repository")
	}

	if err := service.MarkAsRead(1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages.markedRead) != 1 {
		t.Fatal("expected the conversation to be marked as read")
	}
}
