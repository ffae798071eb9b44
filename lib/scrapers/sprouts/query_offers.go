package sprouts

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

const DefaultOfferLimit = 500

// GetOffers fetches the available coupon offers in server order.
// transport and graphql failures surface to the caller, a run
// without an offer list cannot do anything useful.
func (c *Client) GetOffers(ctx context.Context, limit int) ([]Offer, error) {
	ctx, span := tracer.Start(ctx, "GetOffers")
	defer span.End()

	if limit <= 0 {
		limit = DefaultOfferLimit
	}

	variables := map[string]any{
		"shopId":       c.session.ShopId,
		"offerSources": []string{"ic_inmar"},
		"limit":        limit,
		"filtering":    []any{},
		"sorting":      map[string]any{"key": "BEST_MATCH"},
	}

	root, err := c.graphqlGet(ctx, "FindOffersForUserV2", variables, findOffersQueryHash)
	if err != nil {
		return nil, err
	}

	offers := parseOffers(root)
	span.SetAttributes(attribute.KeyValue{
		Key:   "offer_count",
		Value: attribute.IntValue(len(offers)),
	})
	return offers, nil
}
