package dto

type AuditTotalsDTO struct {
	TotalPaid          float64 `json:"total_paid" example:"35"`
	PendingCommissions float64 `json:"pending_commissions" example:"0"`
}

type AuditReportResponseDTO struct {
	AffiliateEmail string         `json:"affiliate_email" example:"a@x.com"`
	IsConsistent   bool           `json:"is_consistent" example:"true"`
	Stored         AuditTotalsDTO `json:"stored"`
	Calculated     AuditTotalsDTO `json:"calculated"`
	Discrepancy    AuditTotalsDTO `json:"discrepancy"`
}

type RecalculateResponseDTO struct {
	Updated bool           `json:"updated" example:"true"`
	Before  AuditTotalsDTO `json:"before"`
	After   AuditTotalsDTO `json:"after"`
}
