package notify

import (
	"context"

	"github.com/craftroots/craftroots-backend/pkg/db/models"
	"github.com/craftroots/craftroots-backend/pkg/logger"
)

// sender is the delivery half of the dispatcher, swapped out in tests.
type sender interface {
	SendInquiryThankYou(ctx context.Context, msg ThankYouMessage) error
}

// Dispatcher sends inquiry confirmations in the background. Delivery is
// best-effort: a failed send is logged and dropped, never retried and never
// surfaced to the caller.
type Dispatcher struct {
	sender sender
	logg   *logger.Logger
}

// NewDispatcher wires a dispatcher around the WhatsApp client. A nil client
// disables delivery.
func NewDispatcher(client *WhatsAppClient, logg *logger.Logger) *Dispatcher {
	var s sender
	if client != nil {
		s = client
	}
	return &Dispatcher{sender: s, logg: logg}
}

// InquiryCreated sends the thank-you template for a fresh inquiry.
func (d *Dispatcher) InquiryCreated(ctx context.Context, inquiry *models.Inquiry, product *models.Product) {
	if d == nil || d.sender == nil || inquiry == nil || product == nil {
		return
	}

	msg := ThankYouMessage{
		PhoneNumber:  inquiry.PhoneNumber,
		CustomerName: inquiry.FullName,
		ProductName:  product.Name,
		ProductImage: product.ImageURL,
		Price:        displayPrice(inquiry, product),
	}

	go func() {
		if err := d.sender.SendInquiryThankYou(ctx, msg); err != nil {
			if d.logg != nil {
				logCtx := d.logg.WithInquiryID(ctx, inquiry.ID.String())
				d.logg.Warn(d.logg.WithFields(logCtx, map[string]any{"error": err.Error()}), "whatsapp.send_failed")
			}
			return
		}
		if d.logg != nil {
			d.logg.Info(d.logg.WithInquiryID(ctx, inquiry.ID.String()), "whatsapp.sent")
		}
	}()
}

// displayPrice prefers the variant's price override when the inquiry names a
// variant that carries one.
func displayPrice(inquiry *models.Inquiry, product *models.Product) string {
	price := product.Price
	if inquiry.Variant != "" {
		for _, opt := range product.Options {
			if opt.Color == inquiry.Variant && opt.Price != nil {
				price = *opt.Price
				break
			}
		}
	}
	return "₹" + price.StringFixed(2)
}
