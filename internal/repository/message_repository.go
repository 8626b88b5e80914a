package repository

import (
	"cs_hub_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

// FindConversationsByUser trả về các cuộc trò chuyện user tham gia,
// cập nhật gần nhất trước, kèm danh sách thành viên.
func (r *MessageRepository) FindConversationsByUser(userID uint) ([]model.Conversation, error) {
	var conversations []model.Conversation
	err := r.DB.
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ?", userID).
		Preload("Participants.User").
		Order("conversations.updated_at desc").
		Find(&conversations).Error
	return conversations, err
}

func (r *MessageRepository) IsParticipant(conversationID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *MessageRepository) FindMessages(conversationID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.DB.
		Where("conversation_id = ?", conversationID).
		Preload("Sender").
		Order("created_at asc").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) LatestMessage(conversationID uint) (*model.Message, error) {
	var message model.Message
	err := r.DB.
		Where("conversation_id = ?", conversationID).
		Order("created_at desc").
		Order("id desc").
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// CreateMessage ghi tin nhắn và đẩy updated_at của cuộc trò chuyện
// lên để sắp xếp danh sách hội thoại.
func (r *MessageRepository) CreateMessage(message *model.Message) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&model.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *MessageRepository) CreateConversation(participantIDs []uint) (*model.Conversation, error) {
	conversation := model.Conversation{}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conversation).Error; err != nil {
			return err
		}
		for _, userID := range participantIDs {
			participant := model.ConversationParticipant{
				ConversationID: conversation.ID,
				UserID:         userID,
			}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.DB.Preload("Participants.User").First(&conversation, conversation.ID).Error
	return &conversation, err
}
