package services

import (
	"fmt"
	"strings"

	"bufood/entity"
	"bufood/repository"
)

// ChatService persists per-order conversations. Fanout to connected sockets
// happens in the ws package and is best-effort only.
type ChatService struct {
	Repo      *repository.ChatRepository
	OrderRepo *repository.OrderRepository
}

func NewChatService(repo *repository.ChatRepository, orderRepo *repository.OrderRepository) *ChatService {
	return &ChatService{Repo: repo, OrderRepo: orderRepo}
}

// ConversationForOrder returns (creating if needed) the order's conversation.
// Only the order's customer or seller may open it.
func (s *ChatService) ConversationForOrder(orderID, requesterID string) (*entity.Conversation, error) {
	o, err := s.OrderRepo.GetOrderWithHistory(orderID)
	if err != nil {
		if s.OrderRepo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, err
	}
	if !o.IsParticipant(requesterID) {
		return nil, ErrForbidden
	}
	return s.Repo.GetOrCreateForOrder(o)
}

func (s *ChatService) SendMessage(conversationID, senderID, content string) (*entity.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content is empty", ErrInvalidPayload)
	}

	conv, err := s.Repo.GetConversation(conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: conversation %s", ErrNotFound, conversationID)
	}
	if !conv.HasParticipant(senderID) {
		return nil, ErrForbidden
	}

	m := &entity.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.Repo.CreateMessage(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ChatService) ListMessages(conversationID, requesterID string, limit int) ([]entity.Message, error) {
	conv, err := s.Repo.GetConversation(conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: conversation %s", ErrNotFound, conversationID)
	}
	if !conv.HasParticipant(requesterID) {
		return nil, ErrForbidden
	}
	return s.Repo.ListMessages(conv.ID, limit)
}
