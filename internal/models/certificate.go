package models

// CertificateModel stores a certificate scan.
type CertificateModel struct {
	Base
	Title string `json:"title" gorm:"not null"`
	Image string `json:"image" gorm:"not null"`
}

func (CertificateModel) TableName() string { return "certificates" }
