package webhook

import (
	"testing"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/inbox"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"
)

// ==================== fakes ====================

type fakeConnectionRepo struct {
	byNome map[string]*model.WhatsappConnection
}

func (f *fakeConnectionRepo) FindByNome(nome string) (*model.WhatsappConnection, error) {
	if conn, ok := f.byNome[nome]; ok {
		return conn, nil
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "conexão %s não encontrada", nome)
}
func (f *fakeConnectionRepo) FindByTenantAndNome(tenantID uint, nome string) (*model.WhatsappConnection, error) {
	return f.FindByNome(nome)
}
func (f *fakeConnectionRepo) FindByTenantID(tenantID uint) ([]model.WhatsappConnection, error) {
	return nil, nil
}
func (f *fakeConnectionRepo) Create(conn *model.WhatsappConnection) error { return nil }
func (f *fakeConnectionRepo) UpdateFields(tenantID uint, nome string, updates map[string]interface{}) error {
	return nil
}
func (f *fakeConnectionRepo) DeleteByTenantAndNome(tenantID uint, nome string) error { return nil }

type fakeContactRepo struct {
	contacts map[string]*model.Contact // key: telefone
	created  []*model.Contact
	nextID   uint
}

func (f *fakeContactRepo) FindByTenantAndID(tenantID, id uint) (*model.Contact, error) {
	for _, c := range f.contacts {
		if c.ID == id && c.TenantID == tenantID {
			return c, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "contato não encontrado")
}
func (f *fakeContactRepo) FindByTenantAndTelefone(tenantID uint, telefone string) (*model.Contact, error) {
	if c, ok := f.contacts[telefone]; ok && c.TenantID == tenantID {
		return c, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "contato não encontrado")
}
func (f *fakeContactRepo) FindByTenantID(tenantID uint) ([]model.Contact, error) { return nil, nil }
func (f *fakeContactRepo) Create(contact *model.Contact) error {
	f.nextID++
	contact.ID = f.nextID
	if f.contacts == nil {
		f.contacts = make(map[string]*model.Contact)
	}
	f.contacts[contact.Telefone] = contact
	f.created = append(f.created, contact)
	return nil
}
func (f *fakeContactRepo) UpdateByTenantAndID(tenantID, id uint, updates map[string]interface{}) error {
	return nil
}
func (f *fakeContactRepo) DeleteByTenantAndID(tenantID, id uint) error { return nil }

type fakeMessageRepo struct {
	created []*model.Message
	nextID  uint
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
func (f *fakeMessageRepo) MarkAsRead(tenantID, contatoID uint) error { return nil }
func (f *fakeMessageRepo) CountUnread(tenantID, contatoID uint) (int64, error) {
	return 0, nil
}

type fakeBroker struct {
	published []inbox.Event
	fail      bool
}

func (f *fakeBroker) Publish(event inbox.Event) error {
	if f.fail {
		return errorx.New(errorx.CodeServerBusy, "broker indisponível")
	}
	f.published = append(f.published, event)
	return nil
}
func (f *fakeBroker) Close() error { return nil }

func newTestService() (*Service, *fakeContactRepo, *fakeMessageRepo, *fakeBroker) {
	conns := &fakeConnectionRepo{byNome: map[string]*model.WhatsappConnection{
		"vendas": {TenantID: 42, Nome: "vendas"},
	}}
	contacts := &fakeContactRepo{}
	messages := &fakeMessageRepo{}
	broker := &fakeBroker{}
	repos := &repository.Repositories{
		Connection: conns,
		Contact:    contacts,
		Message:    messages,
	}
	return NewService(repos, broker), contacts, messages, broker
}

func textEvent(instance, jid, pushName, text string) *request.WebhookEvent {
	return &request.WebhookEvent{
		Event:    "messages.upsert",
		Instance: instance,
		Data: request.WebhookData{
			Key:      request.WebhookKey{FromMe: false, RemoteJid: jid},
			PushName: pushName,
			Message:  request.WebhookMessage{Conversation: text},
		},
	}
}

// ==================== tests ====================

func TestIgnoresNonMessageEvents(t *testing.T) {
	service, contacts, messages, _ := newTestService()
	err := service.Process(&request.WebhookEvent{Event: "connection.update", Instance: "vendas"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts.created) != 0 || len(messages.created) != 0 {
		t.Fatal("non-message events must not touch the database")
	}
}

func TestIgnoresOwnEcho(t *testing.T) {
	service, _, messages, _ := newTestService()
	event := textEvent("vendas", "5511999999999@s.whatsapp.net", "Maria", "oi")
	event.Data.Key.FromMe = true
	if err := service.Process(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages.created) != 0 {
		t.Fatal("echo of our own send must not be stored")
	}
}

func TestDropsUnknownInstance(t *testing.T) {
	service, contacts, messages, _ := newTestService()
	event := textEvent("inexistente", "5511999999999@s.whatsapp.net", "Maria", "oi")
	if err := service.Process(event); err != nil {
		t.Fatalf("unknown instance must be dropped without error, got %v", err)
	}
	if len(contacts.created) != 0 || len(messages.created) != 0 {
		t.Fatal("unknown instance must not create rows")
	}
}

func TestCreatesContactWithNormalizedPhone(t *testing.T) {
	service, contacts, messages, broker := newTestService()
	event := textEvent("vendas", "5511999999999@s.whatsapp.net", "Maria", "olá, tudo bem?")
	if err := service.Process(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(contacts.created) != 1 {
		t.Fatalf("expected one contact, got %d", len(contacts.created))
	}
	contact := contacts.created[0]
	if contact.Telefone != "5511999999999" {
		t.Fatalf("expected gateway suffix stripped, got %q", contact.Telefone)
	}
	if contact.Nome != "Maria" || contact.TenantID != 42 {
		t.Fatalf("unexpected contact: %+v", contact)
	}
	if contact.Status != "novo" || contact.TicketStatus != "aberto" {
		t.Fatalf("new contact must start novo/aberto, got %s/%s", contact.Status, contact.TicketStatus)
	}

	if len(messages.created) != 1 {
		t.Fatalf("expected one message, got %d", len(messages.created))
	}
	msg := messages.created[0]
	if msg.Remetente != "contato" || msg.Lida {
		t.Fatalf("inbound message must be contato/unread, got %+v", msg)
	}
	if msg.Conteudo != "olá, tudo bem?" || msg.Tipo != "texto" {
		t.Fatalf("unexpected message content: %+v", msg)
	}

	if len(broker.published) != 1 {
		t.Fatalf("expected one inbox event, got %d", len(broker.published))
	}
	if broker.published[0].TenantID != 42 || broker.published[0].ContatoID != contact.ID {
		t.Fatalf("unexpected inbox event: %+v", broker.published[0])
	}
}

func TestContactNameFallsBackToPhone(t *testing.T) {
	service, contacts, _, _ := newTestService()
	event := textEvent("vendas", "5511888888888@s.whatsapp.net", "", "oi")
	if err := service.Process(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contacts.created[0].Nome != "5511888888888" {
		t.Fatalf("expected phone as name fallback, got %q", contacts.created[0].Nome)
	}
}

func TestReusesExistingContact(t *testing.T) {
	service, contacts, messages, _ := newTestService()
	event := textEvent("vendas", "5511999999999@s.whatsapp.net", "Maria", "primeira")
	if err := service.Process(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	event = textEvent("vendas", "5511999999999@s.whatsapp.net", "Maria", "segunda")
	if err := service.Process(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts.created) != 1 {
		t.Fatalf("second message must reuse the contact, got %d creates", len(contacts.created))
	}
	if len(messages.created) != 2 {
		t.Fatalf("expected two messages, got %d", len(messages.created))
	}
}

func TestBrokerFailureDoesNotFailProcessing(t *testing.T) {
	service, _, messages, broker := newTestService()
	broker.fail = true
	event := textEvent("vendas", "5511999999999@s.whatsapp.net", "Maria", "oi")
	if err := service.Process(event); err != nil {
		t.Fatalf("publish failure must not fail processing: %v", err)
	}
	if len(messages.created) != 1 {
		t.Fatal("message must be persisted even when the push fails")
	}
}

func TestClassification(t *testing.T) {
	cases := []struct {
		name         string
		message      request.WebhookMessage
		wantConteudo string
		wantTipo     string
	}{
		{
			name:         "plain text",
			message:      request.WebhookMessage{Conversation: "oi"},
			wantConteudo: "oi",
			wantTipo:     "texto",
		},
		{
			name: "extended text",
			message: request.WebhookMessage{
				ExtendedTextMessage: &request.ExtendedTextMessage{Text: "com link"},
			},
			wantConteudo: "com link",
			wantTipo:     "texto",
		},
		{
			name: "image with caption",
			message: request.WebhookMessage{
				ImageMessage: &request.ImageMessage{Caption: "foto do produto"},
			},
			wantConteudo: "foto do produto",
			wantTipo:     "imagem",
		},
		{
			name: "image without caption",
			message: request.WebhookMessage{
				ImageMessage: &request.ImageMessage{},
			},
			wantConteudo: "[Media]",
			wantTipo:     "imagem",
		},
		{
			name: "audio",
			message: request.WebhookMessage{
				AudioMessage: &request.AudioMessage{Seconds: 12},
			},
			wantConteudo: "[Media]",
			wantTipo:     "audio",
		},
		{
			name: "image wins over audio",
			message: request.WebhookMessage{
				ImageMessage: &request.ImageMessage{},
				AudioMessage: &request.AudioMessage{},
			},
			wantConteudo: "[Media]",
			wantTipo:     "imagem",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conteudo, tipo := classify(&tc.message)
			if conteudo != tc.wantConteudo || tipo != tc.wantTipo {
				t.Fatalf("got (%q, %q), want (%q, %q)", conteudo, tipo, tc.wantConteudo, tc.wantTipo)
			}
		})
	}
}
