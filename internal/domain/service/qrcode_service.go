package service

// QRCodeService generates share QR codes that deep-link the map viewer to a
// specific house.
type QRCodeService interface {
	// GenerateHouseQR renders a PNG QR code pointing at the given house.
	GenerateHouseQR(houseID string) ([]byte, error)
}
