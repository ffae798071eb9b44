package sprouts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kingb12/sprouts-coupons/lib/jsontree"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// persisted query hashes are registered upstream per operation, they
// are opaque configuration and cannot be derived from the query text
const (
	findOffersQueryHash     = "f26ac1f27a58e191306d8fa6e15d4edd0492a625f0a8bd254310454a82596a8e"
	availableOfferQueryHash = "9e6b42d9167c3e3aebe07d6c8b9f4b7535994b33e9fc768a9c24e9e2453168d6"
	clipCouponQueryHash     = "4c55b6e0c2fca3ba00e61b4a719b6cfcd6b4d4a69e0cd42f635c224d87e8b3c1"
)

// StatusError is a non-2xx response from the storefront.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graphql request failed: %s", e.Status)
}

// GraphqlError is an `errors` array in an otherwise well-formed
// response body.
type GraphqlError struct {
	Message string
}

func (e *GraphqlError) Error() string {
	return fmt.Sprintf("graphql error: %s", e.Message)
}

type persistedQuery struct {
	Version    int    `json:"version"`
	Sha256Hash string `json:"sha256Hash"`
}

type queryExtensions struct {
	PersistedQuery persistedQuery `json:"persistedQuery"`
}

// graphqlGet performs a persisted-query GET: the operation name, the
// serialized variables and the registered query hash all travel as
// url query parameters.
func (c *Client) graphqlGet(
	ctx context.Context,
	name string,
	variables map[string]any,
	queryHash string,
) (jsontree.Node, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("graphql:%s", name))
	defer span.End()

	span.SetAttributes(attribute.KeyValue{
		Key:   "name",
		Value: attribute.StringValue(name),
	})

	serializedVariables, err := json.Marshal(variables)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize variables")
		return jsontree.Node{}, err
	}
	span.SetAttributes(attribute.KeyValue{
		Key:   "variables",
		Value: attribute.StringValue(string(serializedVariables)),
	})

	serializedExtensions, err := json.Marshal(queryExtensions{
		PersistedQuery: persistedQuery{
			Version:    1,
			Sha256Hash: queryHash,
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize extensions")
		return jsontree.Node{}, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("operationName", name).
		SetQueryParam("variables", string(serializedVariables)).
		SetQueryParam("extensions", string(serializedExtensions)).
		Get(c.endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return jsontree.Node{}, err
	}
	if res.IsError() {
		err := &StatusError{Code: res.StatusCode(), Status: res.Status()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "non-2xx status")
		return jsontree.Node{}, err
	}

	var body any
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return jsontree.Node{}, err
	}

	root := jsontree.From(body)
	if errs := root.Get("errors").List(); len(errs) > 0 {
		err := &GraphqlError{
			Message: errs[0].Get("message").String("unknown graphql error"),
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "graphql errors in response")
		return jsontree.Node{}, err
	}

	return root, nil
}
