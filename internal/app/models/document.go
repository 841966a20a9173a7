package models

import "time"

// ContentStatus is the moderation state of a document or memory.
// There is no rejected state: rejection deletes the item.
type ContentStatus string

const (
	StatusPending  ContentStatus = "chờ duyệt"
	StatusApproved ContentStatus = "đã duyệt"
)

// DocumentType is the closed set of shared document kinds
type DocumentType string

const (
	DocTypeBaiGiang DocumentType = "Bài giảng"
	DocTypeDe       DocumentType = "Đề"
	DocTypeGhiChu   DocumentType = "Ghi chú"
	DocTypeKhac     DocumentType = "Khác"
)

// IsValid reports whether t is a known document type
func (t DocumentType) IsValid() bool {
	switch t {
	case DocTypeBaiGiang, DocTypeDe, DocTypeGhiChu, DocTypeKhac:
		return true
	}
	return false
}

// Document is a shared study resource linked by URL
type Document struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	UploaderID int64         `json:"uploaderId"`
	Subject    string        `json:"subject"`
	Type       DocumentType  `json:"type"`
	Link       string        `json:"link"`
	Timestamp  time.Time     `json:"timestamp"`
	Status     ContentStatus `json:"status"`
}

// Clone returns a copy of the document
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
