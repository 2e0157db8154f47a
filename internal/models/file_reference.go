package models

// File reference status values.
const (
	FileRefPending   = "pending"
	FileRefCommitted = "committed"
)

// FileReferenceModel tracks stored attachments through the two-step create
// sequence. A reference stays pending between the file write and the owning
// record insert; the reconciliation sweep reaps pending references (and their
// files) past the configured age.
type FileReferenceModel struct {
	Base
	Category string `json:"category"  gorm:"index;not null"`
	FileName string `json:"file_name" gorm:"index;not null"`
	Status   string `json:"status"    gorm:"index;default:'pending'"` // pending | committed
}

func (FileReferenceModel) TableName() string { return "file_references" }
