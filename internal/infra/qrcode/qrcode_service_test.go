package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngMagic is the fixed 8-byte PNG file signature.
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestQRCodeService_GenerateHouseQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://karta.example/")

	png, err := svc.GenerateHouseQR("house-1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG")
}

func TestQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X", "https://karta.example")

	png, err := svc.GenerateHouseQR("house-2")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
