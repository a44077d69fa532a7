package response

import (
	"encoding/base64"

	"authentithief/internal/domain/qrpayload"
	"authentithief/internal/usecase/commands"
	"authentithief/internal/usecase/queries"
)

type ReceiptResponse struct {
	Owner                 string `json:"owner"`
	RegistrationTimestamp int64  `json:"registration_timestamp"`
	TransactionRef        string `json:"transaction_ref"`
}

type RegisterProductResponse struct {
	Receipt ReceiptResponse   `json:"receipt"`
	Payload qrpayload.Payload `json:"payload"`
	// QRCode is the base64 encoded PNG of the serialized payload.
	QRCode string `json:"qr_code"`
}

func FromRegisterResult(r *commands.RegisterProductResult) *RegisterProductResponse {
	return &RegisterProductResponse{
		Receipt: ReceiptResponse{
			Owner:                 r.Receipt.Owner,
			RegistrationTimestamp: r.Receipt.RegistrationTimestamp,
			TransactionRef:        r.Receipt.TransactionRef,
		},
		Payload: r.Payload,
		QRCode:  base64.StdEncoding.EncodeToString(r.QRCodePNG),
	}
}

type ProductListResponse struct {
	Items []queries.ProductView `json:"items"`
	Start int                   `json:"start"`
	Count int                   `json:"count"`
	Total int                   `json:"total"`
	Next  *int                  `json:"next,omitempty"`
}

func FromProductPage(p *queries.ProductPage) *ProductListResponse {
	items := p.Items
	if items == nil {
		items = []queries.ProductView{}
	}
	return &ProductListResponse{
		Items: items,
		Start: p.Start,
		Count: p.Count,
		Total: p.Total,
		Next:  p.Next,
	}
}
