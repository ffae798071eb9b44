package sprouts

import (
	"log/slog"
	"strings"

	"github.com/kingb12/sprouts-coupons/lib/jsontree"
)

// parseOffer converts one raw offer record into an Offer. every
// field defaults rather than fails: the API routinely omits parts of
// the view section. the only unparseable input is one that is not an
// object at all.
func parseOffer(raw jsontree.Node) (Offer, bool) {
	if !raw.IsObject() {
		slog.Warn("skipping offer record that is not an object")
		return Offer{}, false
	}

	view := raw.Get("viewSection")

	description := ""
	sections := view.Get("detailsFormattedAttributesString", "sections").List()
	if len(sections) > 0 {
		// later sections repeat terms and conditions, only the
		// first one carries the description
		description = strings.TrimSpace(sections[0].Get("text").String(""))
	}

	// clippedVariant is a string-typed flag upstream. an actual
	// boolean true is NOT treated as clipped, only the literal
	// string "true" is.
	isClipped := view.Get("clippedVariant").String("") == "true"

	return Offer{
		Id:              raw.Get("id").String(""),
		OfferId:         raw.Get("offerId").String(""),
		CouponId:        raw.Get("couponId").String(""),
		OfferRequestKey: raw.Get("offerRequestKey").String(""),
		Name:            view.Get("nameString").String(""),
		Description:     description,
		ExpiresOn:       view.Get("endsOnString").String(""),
		IsClipped:       isClipped,
		ImageUrl:        view.Get("offerImage", "url").String(""),
	}, true
}

// parseOffers extracts the offer list from a FindOffersForUserV2
// response envelope. a missing list yields no offers, and one
// malformed record never drops the rest of the batch.
func parseOffers(envelope jsontree.Node) []Offer {
	raw := envelope.Get("data", "userOffersV2", "offers").List()

	var offers []Offer
	for _, record := range raw {
		offer, ok := parseOffer(record)
		if ok {
			offers = append(offers, offer)
		}
	}
	return offers
}
