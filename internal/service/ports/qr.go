package ports

type PaymentQR interface {
	// RenderPaymentCode returns a scannable payment code for the given amount
	// as a base64-encoded PNG.
	RenderPaymentCode(amount int) (string, error)
}
