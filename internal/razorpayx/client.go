package razorpayx

import (
	razorpay "github.com/razorpay/razorpay-go"
)

type Client struct {
	rz *razorpay.Client
}

func New(keyID, keySecret string) *Client {
	return &Client{rz: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder asks the payment host for a new order and returns its
// response untouched. The SDK carries no context, so an in-flight call
// runs to completion even if the HTTP client goes away.
func (c *Client) CreateOrder(amountMinor int64, currency, receipt string) (map[string]any, error) {
	return c.rz.Order.Create(map[string]any{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
}
