package payment

import (
	"encoding/base64"
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// UPIGenerator renders UPI payment QR codes for a fixed merchant.
type UPIGenerator struct {
	payeeID   string
	payeeName string
}

func NewUPIGenerator(payeeID, payeeName string) *UPIGenerator {
	return &UPIGenerator{payeeID: payeeID, payeeName: payeeName}
}

// RenderPaymentCode encodes a upi://pay URI for the amount into a PNG and
// returns it base64-encoded, ready for a data URI.
func (g *UPIGenerator) RenderPaymentCode(amount int) (string, error) {
	payURL := fmt.Sprintf(
		"upi://pay?pa=%s&pn=%s&am=%s&cu=INR",
		g.payeeID,
		url.QueryEscape(g.payeeName),
		url.QueryEscape(fmt.Sprintf("%.2f", float64(amount))),
	)

	png, err := qrcode.Encode(payURL, qrcode.Low, qrSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
