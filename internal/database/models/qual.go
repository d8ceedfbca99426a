package models

// Qual is a watch qualification category, e.g. a watch station.
type Qual struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`
}

// TableName returns the table name for Qual
func (Qual) TableName() string {
	return "quals"
}

func (q Qual) String() string {
	return q.Name
}
