package models

// ResumeModel stores a resume entry rendered as an image.
type ResumeModel struct {
	Base
	Heading string `json:"heading" gorm:"not null"`
	Image   string `json:"image"   gorm:"not null"`
}

func (ResumeModel) TableName() string { return "resumes" }
