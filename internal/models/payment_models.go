package models

// PaymentInitiation is the response of the simulated payment initiation step.
// Nothing is persisted for it; the transaction id and QR URL are generated per request.
type PaymentInitiation struct {
	Message       string `json:"message"`
	QRCodeURL     string `json:"qrCodeUrl"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}
