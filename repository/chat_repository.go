package repository

import (
	"errors"

	"bufood/entity"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

// GetOrCreateForOrder returns the order's conversation, creating it lazily.
func (r *ChatRepository) GetOrCreateForOrder(o *entity.Order) (*entity.Conversation, error) {
	var conv entity.Conversation
	err := r.DB.First(&conv, "order_id = ?", o.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conv = entity.Conversation{
			OrderID:    o.ID,
			CustomerID: o.CustomerID,
			SellerID:   o.SellerID,
		}
		if err := r.DB.Create(&conv).Error; err != nil {
			return nil, err
		}
		return &conv, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ChatRepository) GetConversation(id string) (*entity.Conversation, error) {
	var conv entity.Conversation
	if err := r.DB.First(&conv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ChatRepository) CreateMessage(m *entity.Message) error {
	return r.DB.Create(m).Error
}

func (r *ChatRepository) ListMessages(conversationID string, limit int) ([]entity.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var msgs []entity.Message
	err := r.DB.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
