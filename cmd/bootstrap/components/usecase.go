package components

import (
	"log/slog"

	"authentithief/internal/domain/qrpayload"
	"authentithief/internal/infra/qrcodec"
	"authentithief/internal/pkg/clock"
	"authentithief/internal/pkg/config"
	"authentithief/internal/usecase/commands"
	"authentithief/internal/usecase/queries"
	"authentithief/internal/usecase/scanner"
	"authentithief/internal/usecase/shared"
	"authentithief/internal/usecase/verification"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseVerificationModule,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		qrcodec.New,
		fx.As(fx.Self()),
		fx.As(new(shared.QRCodec)),
	),
	NewEncoder,
)

var usecaseVerificationModule = fx.Module("usecase/verification",
	fx.Provide(
		fx.Annotate(
			NewEngine,
			fx.As(fx.Self()),
			fx.As(new(verification.Verifier)),
		),
		NewUploadScanner,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewRegistrationSettings,
		commands.NewProductUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewScanQueries,
	),
)

func NewEncoder(cfg config.Config) *qrpayload.Encoder {
	return qrpayload.NewEncoder(qrpayload.EncoderOptions{RequireBrand: cfg.Verification.UseBrand})
}

func NewEngine(ledger shared.Ledger, scans shared.ScanStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) (*verification.Engine, error) {
	opts, err := verification.OptionsFromConfig(cfg.Verification)
	if err != nil {
		return nil, err
	}
	return verification.NewEngine(ledger, scans, clk, opts, logger)
}

func NewUploadScanner(codec *qrcodec.Codec, engine *verification.Engine, logger *slog.Logger) scanner.UploadScanner {
	return scanner.NewUploadScanner(codec, engine, qrcodec.DecodeImage, logger)
}

func NewRegistrationSettings(cfg config.Config) commands.RegistrationSettings {
	return commands.RegistrationSettings{
		Fee:               cfg.Ledger.RegistrationFee,
		DefaultOwner:      cfg.Ledger.DefaultOwner,
		QRImageSize:       cfg.Scanner.QRImageSize,
		RequireExpiration: cfg.Verification.RequireExpiration,
	}
}
