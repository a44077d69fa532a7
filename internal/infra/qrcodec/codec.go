// Package qrcodec renders payload bytes as QR PNGs and reads them back from
// camera frames or uploaded images.
package qrcodec

import (
	"image"
	_ "image/gif" // register decoders for uploads
	_ "image/jpeg"
	_ "image/png"
	"io"

	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"

	"github.com/makiuchi-d/gozxing"
	gzqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/skip2/go-qrcode"
)

const (
	MinImageSize = 64
	MaxImageSize = 2048
)

var ErrUnreadableImage = errs.Mark(errs.New("unreadable image"), errs.ErrNoCode)

type Codec struct {
	level qrcode.RecoveryLevel
}

var _ shared.QRCodec = (*Codec)(nil)

// New returns a codec that encodes at medium error correction and falls back
// to low for payloads that would not fit otherwise.
func New() *Codec {
	return &Codec{level: qrcode.Medium}
}

func (c *Codec) Encode(content []byte, size int) ([]byte, error) {
	if len(content) == 0 {
		return nil, errs.Mark(errs.New("empty qr content"), errs.ErrValidation)
	}
	if size < MinImageSize || size > MaxImageSize {
		return nil, errs.Mark(errs.Newf("qr image size %d outside [%d, %d]", size, MinImageSize, MaxImageSize), errs.ErrValidation)
	}

	png, err := qrcode.Encode(string(content), c.level, size)
	if err != nil && c.level != qrcode.Low {
		png, err = qrcode.Encode(string(content), qrcode.Low, size)
	}
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "encode qr code"), errs.ErrValidation)
	}
	return png, nil
}

// Decode reads the first QR symbol in img. Anything that is not a readable
// symbol is errs.ErrNoCode.
func (c *Codec) Decode(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errs.Wrap(errs.ErrNoCode, "nil image")
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "binarize image"), errs.ErrNoCode)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER:    true,
		gozxing.DecodeHintType_CHARACTER_SET: "UTF-8",
	}
	result, err := gzqrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode qr code"), errs.ErrNoCode)
	}
	return []byte(result.GetText()), nil
}

// DecodeImage reads a PNG, JPEG or GIF upload.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errs.Wrap(ErrUnreadableImage, err.Error())
	}
	return img, nil
}
