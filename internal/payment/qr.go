package payment

import (
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// RenderError wraps a failure from the QR encoder. It is non-fatal to the
// payment itself: the bill is persisted before rendering is attempted, so a
// failed render never undoes a bill.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("qr render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer turns a text payload into an image. The core never depends on a
// particular surface; swap in anything that can draw the payload.
type Renderer interface {
	Render(payload string) ([]byte, error)
}

// QRRenderer encodes the payload as a QR code PNG.
type QRRenderer struct {
	Size int // pixels per side
}

func NewQRRenderer() QRRenderer {
	return QRRenderer{Size: 300}
}

func (r QRRenderer) Render(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, r.Size)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	return png, nil
}

// Payload builds the text the customer scans: amount, bill id and timestamp.
func Payload(currency string, amount float64, billID string, at time.Time) string {
	return fmt.Sprintf("Payment Amount: %s%.2f\nBill ID: %s\nDate: %s",
		currency, amount, billID, at.Format("2006-01-02 15:04:05"))
}
