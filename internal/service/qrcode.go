package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"foodcourt/internal/domain"
)

// QRReceipt renders a confirmed order into a scannable PNG receipt.
type QRReceipt struct{}

func (QRReceipt) Generate(order *domain.Order) ([]byte, error) {
	data := fmt.Sprintf("http://localhost/receipt.html?order_id=%d&total=%.2f", order.ID, order.TotalAmount)
	return qrcode.Encode(data, qrcode.Medium, 256)
}

var _ ReceiptGenerator = (*QRReceipt)(nil)
