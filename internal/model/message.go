package model

// Conversation là một cuộc trò chuyện trực tiếp giữa các thành viên
// swagger:model Conversation
type Conversation struct {
	BaseModel
	Participants []ConversationParticipant `gorm:"foreignKey:ConversationID" json:"participants"`
	Messages     []Message                 `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// swagger:model ConversationParticipant
type ConversationParticipant struct {
	BaseModel
	ConversationID uint `gorm:"uniqueIndex:idx_conversation_user;not null" json:"conversationId"`
	UserID         uint `gorm:"uniqueIndex:idx_conversation_user;not null" json:"userId"`
	User           User `gorm:"foreignKey:UserID" json:"user"`
}

func (ConversationParticipant) TableName() string {
	return "conversation_participants"
}

// swagger:model Message
type Message struct {
	BaseModel
	ConversationID uint   `gorm:"index;not null" json:"conversationId"`
	SenderID       uint   `gorm:"index;not null" json:"senderId"`
	Sender         User   `gorm:"foreignKey:SenderID" json:"sender"`
	Content        string `gorm:"type:text;not null" json:"content"`
}

func (Message) TableName() string {
	return "messages"
}
