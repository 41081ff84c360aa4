package repository

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/message/message_sender_enum"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates the message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new message row.
func (r *messageRepository) Create(message *model.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "criação de mensagem")
	}
	return nil
}

// FindByContato returns a contact's messages ordered by creation time.
func (r *messageRepository) FindByContato(tenantID, contatoID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.Where("tenant_id = ? AND contato_id = ?", tenantID, contatoID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "listagem de mensagens tenant=%d contato=%d", tenantID, contatoID)
	}
	return messages, nil
}

// MarkAsRead clears the unread flag of a whole conversation.
func (r *messageRepository) MarkAsRead(tenantID, contatoID uint) error {
	err := r.db.Model(&model.Message{}).
		Where("tenant_id = ? AND contato_id = ? AND lida = ?", tenantID, contatoID, false).
		Update("lida", true).Error
	if err != nil {
		return wrapDBErrorf(err, "marcação de leitura tenant=%d contato=%d", tenantID, contatoID)
	}
	return nil
}

// CountUnread returns the number of unread inbound messages of a contact.
func (r *messageRepository) CountUnread(tenantID, contatoID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Message{}).
		Where("tenant_id = ? AND contato_id = ? AND lida = ? AND remetente = ?",
			tenantID, contatoID, false, message_sender_enum.Contato).
		Count(&count).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "contagem de não lidas tenant=%d contato=%d", tenantID, contatoID)
	}
	return count, nil
}
