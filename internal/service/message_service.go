package service

import (
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type MessageService struct {
	MessageRepo *repository.MessageRepository
	UserRepo    *repository.UserRepository
}

func NewMessageService(messageRepo *repository.MessageRepository, userRepo *repository.UserRepository) *MessageService {
	return &MessageService{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
	}
}

// ConversationSummary là một dòng trong danh sách hội thoại,
// kèm tin nhắn mới nhất để hiển thị preview.
type ConversationSummary struct {
	Conversation model.Conversation `json:"conversation"`
	LastMessage  *model.Message     `json:"lastMessage,omitempty"`
}

func (s *MessageService) GetConversations(userID uint) ([]ConversationSummary, error) {
	conversations, err := s.MessageRepo.FindConversationsByUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		summary := ConversationSummary{Conversation: conversation}
		last, err := s.MessageRepo.LatestMessage(conversation.ID)
		if err == nil {
			summary.LastMessage = last
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// GetMessages chỉ cho thành viên của cuộc trò chuyện đọc tin nhắn
func (s *MessageService) GetMessages(conversationID, userID uint) ([]model.Message, error) {
	ok, err := s.MessageRepo.IsParticipant(conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotParticipant
	}

	return s.MessageRepo.FindMessages(conversationID)
}

func (s *MessageService) SendMessage(conversationID, senderID uint, content string) (*model.Message, error) {
	if content == "" {
		return nil, util.NewValidationError("content", "không được để trống")
	}

	ok, err := s.MessageRepo.IsParticipant(conversationID, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotParticipant
	}

	message := model.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.MessageRepo.CreateMessage(&message); err != nil {
		return nil, err
	}

	return &message, nil
}

// CreateConversation tạo hội thoại mới; người tạo luôn là thành viên
func (s *MessageService) CreateConversation(creatorID uint, participantIDs []uint) (*model.Conversation, error) {
	seen := map[uint]bool{creatorID: true}
	all := []uint{creatorID}
	for _, id := range participantIDs {
		if seen[id] {
			continue
		}
		if _, err := s.UserRepo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrUserNotFound
			}
			return nil, err
		}
		seen[id] = true
		all = append(all, id)
	}

	if len(all) < 2 {
		return nil, util.NewValidationError("participantIds", "cần ít nhất một người nhận")
	}

	return s.MessageRepo.CreateConversation(all)
}
