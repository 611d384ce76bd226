package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Interaction struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType   string    `gorm:"type:varchar(50);not null;index"`
	ProductName *string   `gorm:"type:varchar(255)"`
	ContextData datatypes.JSONMap
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (Interaction) TableName() string {
	return "user_interactions"
}
