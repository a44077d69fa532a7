//go:build unit

package qrcodec_test

import (
	"bytes"
	"image"
	"image/gif"
	"strings"
	"testing"

	"authentithief/internal/domain/qrpayload"
	"authentithief/internal/infra/qrcodec"
	"authentithief/internal/pkg/errs"
	"authentithief/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := qrcodec.New()

	content, err := builder.NewProductBuilder().WithDescription("Sirop ☃ pour enfants").BuildPayload().Marshal()
	require.NoError(t, err)

	png, err := codec.Encode(content, 512)
	require.NoError(t, err)

	img, err := qrcodec.DecodeImage(bytes.NewReader(png))
	require.NoError(t, err)

	got, err := codec.Decode(img)
	require.NoError(t, err)
	assert.Equal(t, string(content), string(got))

	p, err := qrpayload.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Sirop ☃ pour enfants", p.Description)
}

func TestCodec_Encode(t *testing.T) {
	codec := qrcodec.New()

	tests := []struct {
		name    string
		content []byte
		size    int
	}{
		{name: "empty content", content: nil, size: 256},
		{name: "size too small", content: []byte("x"), size: 8},
		{name: "size too large", content: []byte("x"), size: 100_000},
		{name: "over capacity", content: []byte(strings.Repeat("a", qrpayload.MaxEncodedBytes+1)), size: 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Encode(tt.content, tt.size)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestCodec_DecodeBlankImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	_, err := qrcodec.New().Decode(img)
	assert.True(t, errs.Is(err, errs.ErrNoCode))
}

func TestDecodeImage_GIFUpload(t *testing.T) {
	codec := qrcodec.New()
	content := []byte(`{"schemaVersion":1}`)

	png, err := codec.Encode(content, 256)
	require.NoError(t, err)
	src, err := qrcodec.DecodeImage(bytes.NewReader(png))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, src, nil))

	img, err := qrcodec.DecodeImage(&buf)
	require.NoError(t, err)
	got, err := codec.Decode(img)
	require.NoError(t, err)
	assert.Equal(t, string(content), string(got))
}

func TestDecodeImage_NotAnImage(t *testing.T) {
	_, err := qrcodec.DecodeImage(strings.NewReader("definitely not a png"))
	assert.True(t, errs.Is(err, errs.ErrNoCode))
}
