package service

// QRCodeService renders shareable QR codes for product pages.
type QRCodeService interface {
	// ProductShareQR returns a PNG QR code encoding the public product URL.
	ProductShareQR(productID string) ([]byte, error)
}
