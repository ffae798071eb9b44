package sprouts

import (
	"context"
	"log/slog"

	"github.com/kingb12/sprouts-coupons/lib/jsontree"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
)

// item-agnostic (manufacturer) coupons have no item list, the clip
// mutation still wants an item id so the web client sends this
// placeholder. deployment constant, not meaningful.
const fallbackItemId = "000000000001"

// getAvailableOffer fetches the clip-time detail record for an
// offer. any failure here is recoverable as far as the clip loop is
// concerned, so errors collapse to !ok.
func (c *Client) getAvailableOffer(ctx context.Context, offer *Offer) (jsontree.Node, bool) {
	ctx, span := tracer.Start(ctx, "getAvailableOffer")
	defer span.End()

	variables := map[string]any{
		"shopId":        c.session.ShopId,
		"zoneId":        c.zoneId,
		"postalCode":    c.postalCode,
		"legacyOfferId": offer.OfferId,
	}

	root, err := c.graphqlGet(ctx, "GetAvailableOffer", variables, availableOfferQueryHash)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch offer details",
			"offer", offer.Name, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "detail fetch failed")
		return jsontree.Node{}, false
	}

	detail := root.Get("data", "getAvailableOffer")
	if detail.IsNull() {
		slog.WarnContext(ctx, "offer has no detail record", "offer", offer.Name)
		return jsontree.Node{}, false
	}
	return detail, true
}

// ClipCoupon clips a single offer. clipping is best effort across a
// batch of potentially hundreds of offers, so every failure mode
// collapses to false with a logged diagnostic and the offer is left
// untouched. only a successful clip flips IsClipped.
func (c *Client) ClipCoupon(ctx context.Context, offer *Offer) bool {
	ctx, span := tracer.Start(ctx, "ClipCoupon")
	defer span.End()

	if offer.IsClipped {
		return true
	}

	detail, ok := c.getAvailableOffer(ctx, offer)
	if !ok {
		return false
	}

	itemId := fallbackItemId
	items := detail.Get("items").List()
	if len(items) > 0 {
		itemId = items[0].Get("legacyId").String("")
		if itemId == "" {
			slog.WarnContext(ctx, "offer item has no legacy id", "offer", offer.Name)
			span.SetStatus(codes.Error, "missing item reference")
			return false
		}
	}

	// one fresh correlation id shared by both tracking fields,
	// mirroring what the web client sends
	pageViewId := uuid.NewString()
	trackingParams := map[string]any{
		"pageViewId":   pageViewId,
		"pageViewIdV2": pageViewId,
		"sourceType":   "shop_content_page",
		"sourceValue":  "loyalty_offer_items",
		"sourceId":     nil,
		"searchTerm":   nil,
	}

	variables := map[string]any{
		"itemId":            itemId,
		"shopId":            c.session.ShopId,
		"fetchRelatedItems": true,
		"trackingParams":    trackingParams,
		"offerReference":    offer.Reference(),
	}

	root, err := c.graphqlGet(ctx, "ClipCoupon", variables, clipCouponQueryHash)
	if err != nil {
		slog.WarnContext(ctx, "clip mutation failed",
			"offer", offer.Name, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "clip mutation failed")
		return false
	}

	if !root.Get("data", "clipCouponV2").Truthy() {
		slog.WarnContext(ctx, "clip mutation rejected", "offer", offer.Name)
		span.SetStatus(codes.Error, "clip rejected")
		return false
	}

	offer.IsClipped = true
	slog.InfoContext(ctx, "clipped offer", "offer", offer.Name, "item_id", itemId)
	return true
}
