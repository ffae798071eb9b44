package sprouts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleOffer() *Offer {
	return &Offer{
		Id:              "offer_123",
		OfferId:         "off_456",
		CouponId:        "cpn_789",
		OfferRequestKey: "req_key_abc",
		Name:            "Save $1 on Bananas",
		Description:     "Get $1 off organic bananas",
		ExpiresOn:       "2026-02-15",
		IsClipped:       false,
	}
}

func TestGetOffersVariables(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("FindOffersForUserV2", 200, `{"data": {"userOffersV2": {"offers": []}}}`)
	client := newTestClient(t, f)

	offers, err := client.GetOffers(context.Background(), 100)
	require.NoError(t, err)
	require.Empty(t, offers)

	require.Len(t, f.calls, 1)
	call := f.calls[0]
	require.Equal(t, findOffersQueryHash, call.Hash)
	require.Equal(t, "test_shop_123", call.Variables["shopId"])
	require.Equal(t, float64(100), call.Variables["limit"])
	require.Equal(t, []any{"ic_inmar"}, call.Variables["offerSources"])
	require.Equal(t, map[string]any{"key": "BEST_MATCH"}, call.Variables["sorting"])
}

func TestGetOffersDefaultLimit(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("FindOffersForUserV2", 200, `{"data": {"userOffersV2": {"offers": []}}}`)
	client := newTestClient(t, f)

	_, err := client.GetOffers(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, float64(500), f.calls[0].Variables["limit"])
}

func TestGetOffersPropagatesErrors(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("FindOffersForUserV2", 500, `{}`)
	client := newTestClient(t, f)

	_, err := client.GetOffers(context.Background(), 10)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
}

func TestClipCouponAlreadyClipped(t *testing.T) {
	f := newFakeStorefront(t)
	client := newTestClient(t, f)

	offer := sampleOffer()
	offer.IsClipped = true

	require.True(t, client.ClipCoupon(context.Background(), offer))
	require.Empty(t, f.calls)
}

func TestClipCouponDetailFetchFails(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("GetAvailableOffer", 200, `{"data": {"getAvailableOffer": null}}`)
	client := newTestClient(t, f)

	offer := sampleOffer()
	require.False(t, client.ClipCoupon(context.Background(), offer))
	require.False(t, offer.IsClipped)
	require.Empty(t, f.callsFor("ClipCoupon"))
}

func TestClipCouponDetailFetchError(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("GetAvailableOffer", 500, `{}`)
	client := newTestClient(t, f)

	offer := sampleOffer()
	require.False(t, client.ClipCoupon(context.Background(), offer))
	require.False(t, offer.IsClipped)
}

func TestClipCouponEmptyItemsFallsBack(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("GetAvailableOffer", 200, `{"data": {"getAvailableOffer": {"items": []}}}`)
	f.on("ClipCoupon", 200, `{"data": {"clipCouponV2": {"success": true}}}`)
	client := newTestClient(t, f)

	offer := sampleOffer()
	require.True(t, client.ClipCoupon(context.Background(), offer))
	require.True(t, offer.IsClipped)

	clips := f.callsFor("ClipCoupon")
	require.Len(t, clips, 1)
	require.Equal(t, fallbackItemId, clips[0].Variables["itemId"])
}

func TestClipCouponMissingLegacyId(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("GetAvailableOffer", 200, `{"data": {"getAvailableOffer": {"items": [{"otherField": "value"}]}}}`)
	client := newTestClient(t, f)

	offer := sampleOffer()
	require.False(t, client.ClipCoupon(context.Background(), offer))
	require.False(t, offer.IsClipped)
	require.Empty(t, f.callsFor("ClipCoupon"))
}

func TestClipCouponMutationVariables(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("GetAvailableOffer", 200, `{"data": {"getAvailableOffer": {"items": [{"legacyId": "item_123"}]}}}`)
	f.on("ClipCoupon", 200, `{"data": {"clipCouponV2": {"success": true}}}`)
	client := newTestClient(t, f)

	offer := sampleOffer()
	require.True(t, client.ClipCoupon(context.Background(), offer))

	details := f.callsFor("GetAvailableOffer")
	require.Len(t, details, 1)
	require.Equal(t, availableOfferQueryHash, details[0].Hash)
	require.Equal(t, "off_456", details[0].Variables["legacyOfferId"])
	require.Equal(t, DefaultZoneId, details[0].Variables["zoneId"])
	require.Equal(t, DefaultPostalCode, details[0].Variables["postalCode"])

	clips := f.callsFor("ClipCoupon")
	require.Len(t, clips, 1)
	call := clips[0]
	require.Equal(t, clipCouponQueryHash, call.Hash)
	require.Equal(t, "item_123", call.Variables["itemId"])
	require.Equal(t, "test_shop_123", call.Variables["shopId"])
	require.Equal(t, true, call.Variables["fetchRelatedItems"])
	require.Equal(t, "req_key_abc/off_456", call.Variables["offerReference"])

	tracking, ok := call.Variables["trackingParams"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "shop_content_page", tracking["sourceType"])
	require.Equal(t, "loyalty_offer_items", tracking["sourceValue"])
	require.Equal(t, tracking["pageViewId"], tracking["pageViewIdV2"])

	pageViewId, ok := tracking["pageViewId"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(pageViewId)
	require.NoError(t, err)
}

func TestClipCouponMutationRejected(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("GetAvailableOffer", 200, `{"data": {"getAvailableOffer": {"items": [{"legacyId": "item_123"}]}}}`)
	f.on("ClipCoupon", 200, `{"data": {"clipCouponV2": null}}`)
	client := newTestClient(t, f)

	offer := sampleOffer()
	require.False(t, client.ClipCoupon(context.Background(), offer))
	require.False(t, offer.IsClipped)
}

func TestClipCouponMutationError(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("GetAvailableOffer", 200, `{"data": {"getAvailableOffer": {"items": [{"legacyId": "item_123"}]}}}`)
	f.on("ClipCoupon", 200, `{"errors": [{"message": "mutation failed"}]}`)
	client := newTestClient(t, f)

	offer := sampleOffer()
	require.False(t, client.ClipCoupon(context.Background(), offer))
	require.False(t, offer.IsClipped)
}

func TestListThenClipScenario(t *testing.T) {
	f := newFakeStorefront(t)
	f.on("FindOffersForUserV2", 200, `{
		"data": {"userOffersV2": {"offers": [{
			"id": "1",
			"offerId": "off_1",
			"couponId": "cpn_1",
			"offerRequestKey": "key_1",
			"viewSection": {
				"nameString": "Save $1 on Bananas",
				"clippedVariant": "false",
				"endsOnString": "2026-03-01",
				"detailsFormattedAttributesString": {"sections": [{"text": "desc"}]}
			}
		}]}}
	}`)
	f.on("GetAvailableOffer", 200, `{"data": {"getAvailableOffer": {"items": [{"legacyId": "999"}]}}}`)
	f.on("ClipCoupon", 200, `{"data": {"clipCouponV2": {"success": true}}}`)
	client := newTestClient(t, f)

	offers, err := client.GetOffers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.Equal(t, "Save $1 on Bananas", offers[0].Name)
	require.False(t, offers[0].IsClipped)

	require.True(t, client.ClipCoupon(context.Background(), &offers[0]))
	require.True(t, offers[0].IsClipped)

	clips := f.callsFor("ClipCoupon")
	require.Len(t, clips, 1)
	require.Equal(t, "999", clips[0].Variables["itemId"])
	require.Equal(t, "key_1/off_1", clips[0].Variables["offerReference"])
}
