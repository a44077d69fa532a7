package scanner

import (
	"context"
	"image"
	"io"
	"log/slog"

	"authentithief/internal/domain/scan"
)

//go:generate mockgen -source=upload.go -destination=../../../tests/mock/scanner/upload_mock.go -package=scannermock

type UploadScanner interface {
	ScanUpload(ctx context.Context, r io.Reader) (scan.Result, error)
}

// ImageReader turns an uploaded file into an image. Failures should carry
// errs.ErrNoCode so the caller reports them as a missing code.
type ImageReader func(r io.Reader) (image.Image, error)

type uploadScanner struct {
	decoder   Decoder
	verifier  Verifier
	readImage ImageReader
	logger    *slog.Logger
}

func NewUploadScanner(decoder Decoder, verifier Verifier, readImage ImageReader, logger *slog.Logger) UploadScanner {
	return &uploadScanner{decoder: decoder, verifier: verifier, readImage: readImage, logger: logger}
}

// ScanUpload runs one upload session on a fresh controller.
func (u *uploadScanner) ScanUpload(ctx context.Context, r io.Reader) (scan.Result, error) {
	img, err := u.readImage(r)
	if err != nil {
		return nil, err
	}
	return New(nil, u.decoder, u.verifier, Options{Logger: u.logger}).ScanImage(ctx, img)
}
