package sprouts

import "fmt"

// Offer is a single coupon offer. IsClipped is the only field that
// ever changes after parsing, and only ClipCoupon writes it.
type Offer struct {
	Id              string
	OfferId         string
	CouponId        string
	OfferRequestKey string
	Name            string
	Description     string
	ExpiresOn       string
	IsClipped       bool
	// empty when the offer has no image asset
	ImageUrl string
}

// Reference is the composite id the clip mutation expects.
func (o Offer) Reference() string {
	return fmt.Sprintf("%s/%s", o.OfferRequestKey, o.OfferId)
}

func (o Offer) Status() string {
	if o.IsClipped {
		return "CLIPPED"
	}
	return "AVAILABLE"
}

func (o Offer) String() string {
	return fmt.Sprintf(
		"[%s] %s - %s (expires: %s)",
		o.Status(), o.Name, o.Description, o.ExpiresOn,
	)
}
