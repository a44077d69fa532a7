package response

import (
	"authentithief/internal/domain/scan"
)

// VerificationResponse flattens the result variants. Fields that do not
// belong to the reported status are omitted.
type VerificationResponse struct {
	Status        scan.Status `json:"status"`
	Owner         string      `json:"owner,omitempty"`
	ProductName   string      `json:"product_name,omitempty"`
	RegisteredAt  *int64      `json:"registered_at,omitempty"`
	ExpiresAt     *int64      `json:"expires_at,omitempty"`
	ExpiredAt     *int64      `json:"expired_at,omitempty"`
	DaysRemaining *int64      `json:"days_remaining,omitempty"`
	StatusBand    *scan.Band  `json:"status_band,omitempty"`
	IsFirstScan   *bool       `json:"is_first_scan,omitempty"`
	TotalScans    *int64      `json:"total_scans,omitempty"`
	Reason        string      `json:"reason,omitempty"`
	Degraded      bool        `json:"degraded,omitempty"`
}

func FromResult(r scan.Result) *VerificationResponse {
	resp := &VerificationResponse{Status: r.Status()}
	switch v := r.(type) {
	case scan.Authentic:
		resp.Owner = v.Owner
		resp.ProductName = v.ProductName
		resp.RegisteredAt = &v.RegisteredAt
		resp.ExpiresAt = v.ExpiresAt
		resp.DaysRemaining = v.DaysRemaining
		resp.StatusBand = v.Band()
		resp.IsFirstScan = &v.IsFirstScan
		resp.TotalScans = &v.TotalScans
	case scan.Expired:
		resp.ProductName = v.ProductName
		resp.ExpiredAt = &v.ExpiredAt
		resp.TotalScans = &v.TotalScans
	case scan.NotFound:
		resp.Reason = v.Reason
		resp.Degraded = v.Degraded
	case scan.Malformed:
		resp.Reason = v.Reason
	}
	return resp
}
