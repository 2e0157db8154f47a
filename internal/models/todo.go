package models

// TodoModel is a to-do item. Completed is the only mutable field and is
// toggled, never set directly.
type TodoModel struct {
	Base
	Text      string `json:"text"      gorm:"type:text;not null"`
	Completed bool   `json:"completed" gorm:"default:false"`
}

func (TodoModel) TableName() string { return "todos" }
