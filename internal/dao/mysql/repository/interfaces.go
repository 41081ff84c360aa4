// Package repository implements the data access layer.
// All interfaces are defined in this file; implementations live in the
// per-entity files. Every query that touches tenant-owned data takes the
// tenant id explicitly; there is no unscoped lookup helper.
package repository

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository interfaces ====================

// TenantRepository reads and writes business accounts.
type TenantRepository interface {
	// FindByID looks a tenant up by primary key.
	FindByID(id uint) (*model.Tenant, error)
	// Create inserts a new tenant.
	Create(tenant *model.Tenant) error
	// UpdateCredentials sets the Evolution API base URL and key.
	UpdateCredentials(id uint, baseURL, apiKey string) error
}

// UserRepository manages staff accounts.
type UserRepository interface {
	// FindByID looks a user up by primary key.
	FindByID(id uint) (*model.User, error)
	// FindByEmail looks a user up by login email.
	FindByEmail(email string) (*model.User, error)
	// Create inserts a new user.
	Create(user *model.User) error
	// TouchLastSignedIn records a successful login.
	TouchLastSignedIn(id uint) error
}

// ConnectionRepository manages registered WhatsApp numbers.
type ConnectionRepository interface {
	// FindByNome resolves a connection by its gateway instance name.
	// Instance names are globally unique at the gateway, so this is the
	// webhook's tenant resolution entry point.
	FindByNome(nome string) (*model.WhatsappConnection, error)
	// FindByTenantAndNome looks a connection up within a tenant.
	FindByTenantAndNome(tenantID uint, nome string) (*model.WhatsappConnection, error)
	// FindByTenantID lists a tenant's connections.
	FindByTenantID(tenantID uint) ([]model.WhatsappConnection, error)
	// Create inserts a new connection.
	Create(conn *model.WhatsappConnection) error
	// UpdateFields applies a partial update to one tenant's connection.
	UpdateFields(tenantID uint, nome string, updates map[string]interface{}) error
	// DeleteByTenantAndNome removes a connection locally.
	DeleteByTenantAndNome(tenantID uint, nome string) error
}

// ContactRepository manages customers/leads, always tenant scoped.
type ContactRepository interface {
	// FindByTenantAndID looks a contact up within a tenant.
	FindByTenantAndID(tenantID, id uint) (*model.Contact, error)
	// FindByTenantAndTelefone looks a contact up by bare phone number
	// within a tenant.
	FindByTenantAndTelefone(tenantID uint, telefone string) (*model.Contact, error)
	// FindByTenantID lists a tenant's contacts.
	FindByTenantID(tenantID uint) ([]model.Contact, error)
	// Create inserts a new contact.
	Create(contact *model.Contact) error
	// UpdateByTenantAndID applies a partial update to one contact.
	UpdateByTenantAndID(tenantID, id uint, updates map[string]interface{}) error
	// DeleteByTenantAndID removes a contact.
	DeleteByTenantAndID(tenantID, id uint) error
}

// MessageRepository manages conversation history.
type MessageRepository interface {
	// Create inserts a new message row.
	Create(message *model.Message) error
	// FindByContato returns a contact's messages ordered by creation time.
	FindByContato(tenantID, contatoID uint) ([]model.Message, error)
	// MarkAsRead clears the unread flag of a whole conversation.
	MarkAsRead(tenantID, contatoID uint) error
	// CountUnread returns the number of unread inbound messages of a contact.
	CountUnread(tenantID, contatoID uint) (int64, error)
}

// ProductRepository manages sellable items.
type ProductRepository interface {
	// FindByTenantAndID looks a product up within a tenant.
	FindByTenantAndID(tenantID, id uint) (*model.Product, error)
	// FindByTenantID lists a tenant's products.
	FindByTenantID(tenantID uint) ([]model.Product, error)
	// Create inserts a new product.
	Create(product *model.Product) error
}

// OrderRepository manages orders and their items.
type OrderRepository interface {
	// FindByTenantAndID loads one order with its items.
	FindByTenantAndID(tenantID, id uint) (*model.Order, error)
	// FindByTenantID lists a tenant's orders.
	FindByTenantID(tenantID uint) ([]model.Order, error)
	// Create inserts an order row.
	Create(order *model.Order) error
	// CreateItem inserts one order item row.
	CreateItem(item *model.OrderItem) error
	// DeleteByTenantAndID removes an order and its items.
	DeleteByTenantAndID(tenantID, id uint) error
}

// ==================== Aggregate ====================

// Repositories aggregates all repository instances. It is the dependency
// injection entry point: the service layer receives this struct instead of
// touching a global database handle.
type Repositories struct {
	db         *gorm.DB
	Tenant     TenantRepository
	User       UserRepository
	Connection ConnectionRepository
	Contact    ContactRepository
	Message    MessageRepository
	Product    ProductRepository
	Order      OrderRepository
}

// NewRepositories wires every repository to the given gorm handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		Tenant:     NewTenantRepository(db),
		User:       NewUserRepository(db),
		Connection: NewConnectionRepository(db),
		Contact:    NewContactRepository(db),
		Message:    NewMessageRepository(db),
		Product:    NewProductRepository(db),
		Order:      NewOrderRepository(db),
	}
}

// Transaction runs fn inside one database transaction; fn receives a
// Repositories bound to the transaction handle. Aggregates assembled by hand
// without a database handle run fn directly.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
