package commands

import (
	"context"
	"log/slog"
	"strings"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/qrpayload"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"
)

//go:generate mockgen -source=register.go -destination=../../../tests/mock/commands/register_mock.go -package=commandsmock

var ErrExpirationRequired = errs.Mark(errs.New("expiration timestamp is required"), errs.ErrValidation)

type ProductCommands interface {
	RegisterProduct(ctx context.Context, req RegisterProductRequest) (*RegisterProductResult, error)
}

type productUseCaseImpl struct {
	ledger   shared.Ledger
	encoder  *qrpayload.Encoder
	codec    shared.QRCodec
	settings RegistrationSettings
	logger   *slog.Logger
}

func NewProductUseCase(ledger shared.Ledger, encoder *qrpayload.Encoder, codec shared.QRCodec, settings RegistrationSettings, logger *slog.Logger) ProductCommands {
	return &productUseCaseImpl{
		ledger:   ledger,
		encoder:  encoder,
		codec:    codec,
		settings: settings,
		logger:   logger,
	}
}

// RegisterProduct validates the record against the encoder first, so nothing
// reaches the ledger that could not be turned into a QR code. The ledger write
// is never retried.
func (uc *productUseCaseImpl) RegisterProduct(ctx context.Context, req RegisterProductRequest) (*RegisterProductResult, error) {
	rec := product.NewRecord(req.Name, req.Brand, req.Description, req.ExpirationTimestamp)
	if uc.settings.RequireExpiration && !rec.Expires() {
		return nil, ErrExpirationRequired
	}
	if err := uc.encoder.Validate(rec); err != nil {
		return nil, err
	}

	owner := strings.TrimSpace(req.Owner)
	if owner == "" {
		owner = uc.settings.DefaultOwner
	}

	receipt, err := uc.ledger.Register(ctx, shared.RegisterRequest{
		Record: rec,
		Owner:  owner,
		Fee:    uc.settings.Fee,
	})
	if err != nil {
		return nil, err
	}
	uc.logger.InfoContext(ctx, "product registered",
		"name", rec.Name,
		"owner", receipt.Owner,
		"tx", receipt.TransactionRef)

	payload, err := uc.encoder.Encode(rec, receipt)
	if err != nil {
		return nil, uc.afterRegistration(ctx, receipt, errs.Wrap(err, "encode payload"))
	}
	data, err := payload.Marshal()
	if err != nil {
		return nil, uc.afterRegistration(ctx, receipt, errs.Wrap(err, "marshal payload"))
	}
	png, err := uc.codec.Encode(data, uc.settings.QRImageSize)
	if err != nil {
		return nil, uc.afterRegistration(ctx, receipt, errs.Wrap(err, "render qr code"))
	}

	return &RegisterProductResult{
		Receipt:     receipt,
		Payload:     payload,
		PayloadJSON: data,
		QRCodePNG:   png,
	}, nil
}

// afterRegistration logs a failure that happened once the product was already
// on the ledger. The record stays; the caller can re-render from the receipt.
func (uc *productUseCaseImpl) afterRegistration(ctx context.Context, receipt product.Receipt, err error) error {
	uc.logger.ErrorContext(ctx, "product registered but qr generation failed",
		"tx", receipt.TransactionRef,
		"error", err)
	return err
}
