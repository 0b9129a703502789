package billing

import (
	"context"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

// Client wraps the Mercado Pago SDK for the single thing this product
// sells: the monthly barber plan.
type Client struct {
	pref      preference.Client
	pay       payment.Client
	planPrice float64
}

type Checkout struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

type PaymentInfo struct {
	Status string
	ShopID uint
}

func New(accessToken string, planPrice float64) (*Client, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Client{
		pref:      preference.NewClient(cfg),
		pay:       payment.NewClient(cfg),
		planPrice: planPrice,
	}, nil
}

// CreateSubscriptionCheckout creates a checkout preference for one
// month of the plan, tagged with the shop id for the webhook.
func (c *Client) CreateSubscriptionCheckout(ctx context.Context, shop *models.Shop) (*Checkout, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      "Sharpcut monthly plan - " + shop.Name,
				Quantity:   1,
				UnitPrice:  c.planPrice,
				CurrencyID: "BRL",
			},
		},
		ExternalReference: strconv.FormatUint(uint64(shop.ID), 10),
	}

	res, err := c.pref.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Checkout{
		PreferenceID: res.ID,
		InitPoint:    res.InitPoint,
	}, nil
}

// Payment fetches a payment notified by the webhook and resolves the
// shop it pays for.
func (c *Client) Payment(ctx context.Context, id int) (*PaymentInfo, error) {
	res, err := c.pay.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shopID, err := strconv.ParseUint(res.ExternalReference, 10, 64)
	if err != nil {
		return nil, err
	}

	return &PaymentInfo{
		Status: res.Status,
		ShopID: uint(shopID),
	}, nil
}
