package dbmodels

// InterviewSession хранит сериализованное состояние интервью одного кандидата
type InterviewSession struct {
	BaseModel
	State string `gorm:"type:varchar(64);index"`
	Data  string `gorm:"type:jsonb;not null"` // снимок interviewmanager.Snapshot
}
