package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID, tableID int) ([]byte, error)
}

type MenuQRGenerator struct {
	BaseURL string
}

func (g MenuQRGenerator) Generate(restaurantID, tableID int) ([]byte, error) {
	link := fmt.Sprintf("%s/menu?restaurant_id=%d&table_id=%d", g.BaseURL, restaurantID, tableID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
