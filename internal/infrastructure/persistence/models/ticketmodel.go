package models

type TicketModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	AgentID     string `gorm:"size:64;index"`
	Tags        string `gorm:"type:json"`
	CreatedAt   int64  `gorm:"not null;index"`
	UpdatedAt   int64  `gorm:"not null"`

	// No foreign key constraints or associations. Relationships are
	// managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketLogModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	TicketID  string `gorm:"size:64;not null;index"`
	Action    string `gorm:"size:50;not null"`
	From      string `gorm:"column:from_status;size:20;not null"`
	To        string `gorm:"column:to_status;size:20;not null"`
	Comment   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null;index"`
}

func (TicketLogModel) TableName() string {
	return "ticket_logs"
}

type AgentModel struct {
	ID    string `gorm:"primaryKey;size:64"`
	Name  string `gorm:"size:120;not null;index"`
	Email string `gorm:"size:255"`
}

func (AgentModel) TableName() string {
	return "agents"
}
