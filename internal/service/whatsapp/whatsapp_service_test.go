package whatsapp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/gateway/evolution"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/creds"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"
)

// ==================== fakes ====================

type fakeTenantRepo struct {
	tenant *model.Tenant
}

func (f *fakeTenantRepo) FindByID(id uint) (*model.Tenant, error) {
	if f.tenant == nil {
		return nil, errorx.New(errorx.CodeNotFound, "empresa não encontrada")
	}
	return f.tenant, nil
}
func (f *fakeTenantRepo) Create(tenant *model.Tenant) error { return nil }
func (f *fakeTenantRepo) UpdateCredentials(id uint, baseURL, apiKey string) error {
	return nil
}

type fakeConnectionRepo struct {
	row     *model.WhatsappConnection
	updates []map[string]interface{}
	created []*model.WhatsappConnection
	deleted []string
}

func (f *fakeConnectionRepo) FindByNome(nome string) (*model.WhatsappConnection, error) {
	return f.FindByTenantAndNome(0, nome)
}
func (f *fakeConnectionRepo) FindByTenantAndNome(tenantID uint, nome string) (*model.WhatsappConnection, error) {
	if f.row != nil && f.row.Nome == nome {
		return f.row, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "conexão não encontrada")
}
func (f *fakeConnectionRepo) FindByTenantID(tenantID uint) ([]model.WhatsappConnection, error) {
	if f.row == nil {
		return nil, nil
	}
	return []model.WhatsappConnection{*f.row}, nil
}
func (f *fakeConnectionRepo) Create(conn *model.WhatsappConnection) error {
	f.created = append(f.created, conn)
	f.row = conn
	return nil
}
func (f *fakeConnectionRepo) UpdateFields(tenantID uint, nome string, updates map[string]interface{}) error {
	f.updates = append(f.updates, updates)
	if f.row != nil {
		if status, ok := updates["status"].(string); ok {
			f.row.Status = status
		}
		if qr, ok := updates["qr_code"].(string); ok {
			f.row.QrCode = qr
		}
	}
	return nil
}
func (f *fakeConnectionRepo) DeleteByTenantAndNome(tenantID uint, nome string) error {
	f.deleted = append(f.deleted, nome)
	return nil
}

type fakeContactRepo struct {
	contacts map[string]*model.Contact
	created  []*model.Contact
	updated  []map[string]interface{}
	nextID   uint
}

func (f *fakeContactRepo) FindByTenantAndID(tenantID, id uint) (*model.Contact, error) {
	return nil, errorx.New(errorx.CodeNotFound, "contato não encontrado")
}
func (f *fakeContactRepo) FindByTenantAndTelefone(tenantID uint, telefone string) (*model.Contact, error) {
	if c, ok := f.contacts[telefone]; ok {
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
	f.updated = append(f.updated, updates)
	return nil
}
func (f *fakeContactRepo) DeleteByTenantAndID(tenantID, id uint) error { return nil }

type fakeGateway struct {
	state    string
	stateErr error
	qr       string
	qrErr    error
	contacts []evolution.Contact
	calls    []string
}

func (f *fakeGateway) CreateInstance(ctx context.Context, c evolution.Credentials, name, webhookURL string) (*evolution.CreateInstanceResult, error) {
	f.calls = append(f.calls, "create")
	return &evolution.CreateInstanceResult{}, nil
}
func (f *fakeGateway) ConnectInstance(ctx context.Context, c evolution.Credentials, name string) (string, error) {
	f.calls = append(f.calls, "connect")
	return f.qr, f.qrErr
}
func (f *fakeGateway) FetchConnectionState(ctx context.Context, c evolution.Credentials, name string) (string, error) {
	f.calls = append(f.calls, "state")
	return f.state, f.stateErr
}
func (f *fakeGateway) FetchInstanceInfo(ctx context.Context, c evolution.Credentials, name string) (json.RawMessage, error) {
	f.calls = append(f.calls, "info")
	return nil, nil
}
func (f *fakeGateway) LogoutInstance(ctx context.Context, c evolution.Credentials, name string) {
	f.calls = append(f.calls, "logout")
}
func (f *fakeGateway) DeleteInstance(ctx context.Context, c evolution.Credentials, name string) {
	f.calls = append(f.calls, "delete")
}
func (f *fakeGateway) FetchContacts(ctx context.Context, c evolution.Credentials, name string) ([]evolution.Contact, error) {
	f.calls = append(f.calls, "contacts")
	return f.contacts, nil
}
func (f *fakeGateway) SendText(ctx context.Context, c evolution.Credentials, name, number, text string) error {
	f.calls = append(f.calls, "send")
	return nil
}

func newTestService(tenant *model.Tenant, gateway *fakeGateway) (*Service, *fakeConnectionRepo) {
	service, conns, _ := newTestServiceWithContacts(tenant, gateway)
	return service, conns
}

func newTestServiceWithContacts(tenant *model.Tenant, gateway *fakeGateway) (*Service, *fakeConnectionRepo, *fakeContactRepo) {
	conns := &fakeConnectionRepo{}
	contacts := &fakeContactRepo{}
	repos := &repository.Repositories{
		Connection: conns,
		Contact:    contacts,
	}
	resolver := creds.NewResolver(&fakeTenantRepo{tenant: tenant})
	return NewService(repos, gateway, resolver), conns, contacts
}

func configuredTenant() *model.Tenant {
	return &model.Tenant{
		Nome:            "Loja Teste",
		EvolutionApiUrl: "http://gateway.local",
		EvolutionApiKey: "chave",
	}
}

// ==================== reconciler tests ====================

func TestStateCheckFailsFastWithoutCredentials(t *testing.T) {
	gateway := &fakeGateway{}
	service, conns := newTestService(&model.Tenant{Nome: "Sem API"}, gateway)

	_, err := service.GetConnectionState(context.Background(), 1, "vendas")
	if !errorx.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	if len(gateway.calls) != 0 {
		t.Fatalf("no gateway call may happen without credentials, got %v", gateway.calls)
	}
	if len(conns.updates) != 0 {
		t.Fatal("no database write may happen without credentials")
	}
}

func TestStateFetchFailureMapsToDisconnected(t *testing.T) {
	gateway := &fakeGateway{
		stateErr: errorx.New(errorx.CodeGatewayError, "timeout"),
		qrErr:    errorx.New(errorx.CodeGatewayError, "timeout"),
	}
	service, conns := newTestService(configuredTenant(), gateway)
	conns.row = &model.WhatsappConnection{TenantID: 1, Nome: "vendas", Status: "conectado"}

	state, err := service.GetConnectionState(context.Background(), 1, "vendas")
	if err != nil {
		t.Fatalf("fetch failure must degrade, not fail: %v", err)
	}
	if state.Conectado {
		t.Fatal("unknown state must map to disconnected")
	}
	if conns.row.Status != "desconectado" {
		t.Fatalf("expected persisted status desconectado, got %s", conns.row.Status)
	}
}

func TestConnectedClearsQrCode(t *testing.T) {
	gateway := &fakeGateway{state: "open"}
	service, conns := newTestService(configuredTenant(), gateway)
	conns.row = &model.WhatsappConnection{TenantID: 1, Nome: "vendas", Status: "aguardando", QrCode: "A"}

	state, err := service.GetConnectionState(context.Background(), 1, "vendas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.Conectado || state.State != "open" {
		t.Fatalf("expected connected open state, got %+v", state)
	}
	if state.QrCode != "" {
		t.Fatal("connected response must not carry a QR code")
	}
	if conns.row.Status != "conectado" || conns.row.QrCode != "" {
		t.Fatalf("expected conectado with cleared QR, got %s/%q", conns.row.Status, conns.row.QrCode)
	}
	for _, call := range gateway.calls {
		if call == "connect" {
			t.Fatal("connected instance must not request a new QR code")
		}
	}
}

func TestDisconnectedRefreshesQrCode(t *testing.T) {
	gateway := &fakeGateway{state: "close", qr: "B"}
	service, conns := newTestService(configuredTenant(), gateway)
	conns.row = &model.WhatsappConnection{TenantID: 1, Nome: "vendas", Status: "conectado", QrCode: "A"}

	state, err := service.GetConnectionState(context.Background(), 1, "vendas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.QrCode != "B" {
		t.Fatalf("response must carry the fresh QR code, got %q", state.QrCode)
	}
	if conns.row.QrCode != "B" {
		t.Fatalf("stored QR must be overwritten with the fresh one, got %q", conns.row.QrCode)
	}
	if conns.row.Status != "desconectado" {
		t.Fatalf("expected desconectado, got %s", conns.row.Status)
	}
}

func TestDisconnectedKeepsOldQrWhenRefreshFails(t *testing.T) {
	gateway := &fakeGateway{state: "close", qrErr: errorx.New(errorx.CodeGatewayError, "indisponível")}
	service, conns := newTestService(configuredTenant(), gateway)
	conns.row = &model.WhatsappConnection{TenantID: 1, Nome: "vendas", Status: "conectado", QrCode: "A"}

	state, err := service.GetConnectionState(context.Background(), 1, "vendas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.QrCode != "" {
		t.Fatalf("response must not carry a stale QR, got %q", state.QrCode)
	}
	if conns.row.QrCode != "A" {
		t.Fatalf("stored QR must be preserved when no fresh one arrived, got %q", conns.row.QrCode)
	}
	if len(conns.updates) != 1 {
		t.Fatalf("expected one persistence call, got %d", len(conns.updates))
	}
	if _, hasQr := conns.updates[0]["qr_code"]; hasQr {
		t.Fatal("qr_code must be absent from the update when no fresh QR arrived")
	}
}

// ==================== connection lifecycle tests ====================

func TestCreateConnectionPersistsEvenWithoutQr(t *testing.T) {
	gateway := &fakeGateway{qrErr: errorx.New(errorx.CodeGatewayError, "sem QR ainda")}
	service, conns := newTestService(configuredTenant(), gateway)

	conn, err := service.CreateConnection(context.Background(), 1, "vendas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conns.created) != 1 {
		t.Fatal("row must be created even when the QR fetch fails")
	}
	if conn.Status != "aguardando" {
		t.Fatalf("expected aguardando, got %s", conn.Status)
	}
}

func TestCreateConnectionUpdatesExistingRow(t *testing.T) {
	gateway := &fakeGateway{qr: "QR1"}
	service, conns := newTestService(configuredTenant(), gateway)
	conns.row = &model.WhatsappConnection{TenantID: 1, Nome: "vendas", Status: "desconectado", QrCode: "old"}

	conn, err := service.CreateConnection(context.Background(), 1, "vendas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conns.created) != 0 {
		t.Fatal("existing row must be updated, not duplicated")
	}
	if conn.Status != "aguardando" || conn.QrCode != "QR1" {
		t.Fatalf("unexpected result: %+v", conn)
	}
}

func TestDeleteConnectionAlwaysRemovesLocalRow(t *testing.T) {
	gateway := &fakeGateway{}
	service, conns := newTestService(configuredTenant(), gateway)
	conns.row = &model.WhatsappConnection{TenantID: 1, Nome: "vendas"}

	if err := service.DeleteConnection(context.Background(), 1, "vendas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conns.deleted) != 1 || conns.deleted[0] != "vendas" {
		t.Fatalf("expected local delete, got %v", conns.deleted)
	}
	// Logout and delete were attempted at the gateway first.
	wantOrder := []string{"logout", "delete"}
	if len(gateway.calls) != 2 || gateway.calls[0] != wantOrder[0] || gateway.calls[1] != wantOrder[1] {
		t.Fatalf("expected gateway logout+delete, got %v", gateway.calls)
	}
}

// ==================== contact sync tests ====================

func TestSyncContactsUpsertsByPhone(t *testing.T) {
	gateway := &fakeGateway{contacts: []evolution.Contact{
		{ID: "5511999999999@s.whatsapp.net", Name: "Maria", ProfilePicURL: "http://pic/1"},
		{ID: "5511888888888@s.whatsapp.net", Name: "José"},
		{ID: "", Number: ""}, // no phone at all, skipped
	}}
	service, _, contacts := newTestServiceWithContacts(configuredTenant(), gateway)
	contacts.contacts = map[string]*model.Contact{
		"5511999999999": {TenantID: 1, Nome: "Maria antiga", Telefone: "5511999999999"},
	}
	contacts.contacts["5511999999999"].ID = 7

	result, err := service.SyncContacts(context.Background(), 1, 3, "vendas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Atualizados != 1 || result.Sincronizados != 1 {
		t.Fatalf("expected 1 updated and 1 created, got %+v", result)
	}
	if len(result.Erros) != 0 {
		t.Fatalf("expected no errors, got %v", result.Erros)
	}
	if len(contacts.created) != 1 || contacts.created[0].Telefone != "5511888888888" {
		t.Fatalf("unexpected creates: %+v", contacts.created)
	}
	if contacts.created[0].VendedorID != 3 {
		t.Fatalf("new lead must belong to the requesting user, got %d", contacts.created[0].VendedorID)
	}
	if len(contacts.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(contacts.updated))
	}
	if contacts.updated[0]["nome"] != "Maria" || contacts.updated[0]["avatar"] != "http://pic/1" {
		t.Fatalf("unexpected update payload: %v", contacts.updated[0])
	}
}

func TestSyncContactsFailsFastWithoutCredentials(t *testing.T) {
	gateway := &fakeGateway{}
	service, _, _ := newTestServiceWithContacts(&model.Tenant{Nome: "Sem API"}, gateway)
	_, err := service.SyncContacts(context.Background(), 1, 3, "vendas")
	if !errorx.IsConfigError(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	if len(gateway.calls) != 0 {
		t.Fatalf("no gateway call may happen without credentials, got %v", gateway.calls)
	}
}
