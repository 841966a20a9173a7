package models

import "time"

// ReportContentType is what kind of content a report targets
type ReportContentType string

const (
	ReportContentPost     ReportContentType = "post"
	ReportContentComment  ReportContentType = "comment"
	ReportContentDocument ReportContentType = "document"
)

// IsValid reports whether t is a known report content type
func (t ReportContentType) IsValid() bool {
	switch t {
	case ReportContentPost, ReportContentComment, ReportContentDocument:
		return true
	}
	return false
}

// ReportReason is the closed set of report reasons. ReasonKhac requires
// free-text details.
type ReportReason string

const (
	ReasonSpam      ReportReason = "Spam"
	ReasonKhongPhuHop ReportReason = "Nội dung không phù hợp"
	ReasonQuayRoi   ReportReason = "Quấy rối"
	ReasonSaiLech   ReportReason = "Thông tin sai lệch"
	ReasonKhac      ReportReason = "Khác"
)

// IsValid reports whether r is a known reason
func (r ReportReason) IsValid() bool {
	switch r {
	case ReasonSpam, ReasonKhongPhuHop, ReasonQuayRoi, ReasonSaiLech, ReasonKhac:
		return true
	}
	return false
}

// ReportStatus is the report lifecycle state
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
)

// Report flags content for moderator review. ContentID is a weak
// reference: the target may have been deleted independently, in which
// case resolution still succeeds.
type Report struct {
	ID          int64             `json:"id"`
	ContentType ReportContentType `json:"contentType"`
	ContentID   int64             `json:"contentId"`
	ReporterID  int64             `json:"reporterId"`
	Reason      ReportReason      `json:"reason"`
	Details     string            `json:"details,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	Status      ReportStatus      `json:"status"`
}

// Clone returns a copy of the report
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
