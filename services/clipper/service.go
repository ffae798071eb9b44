package clipper

import (
	"context"
	"log/slog"

	"github.com/kingb12/sprouts-coupons/lib/scrapers/sprouts"
	"github.com/kingb12/sprouts-coupons/lib/timezone"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/clipper")

// StorefrontClient is the slice of the sprouts client the run loop
// needs, kept narrow so tests can fake the storefront.
type StorefrontClient interface {
	GetOffers(ctx context.Context, limit int) ([]sprouts.Offer, error)
	ClipCoupon(ctx context.Context, offer *sprouts.Offer) bool
}

type Options struct {
	// offer fetch limit, zero means the client default
	Limit int
	// when non-empty, only offers matching a watchlist entry get
	// clipped; everything still shows up in the report
	Watchlist []string
	// fetch and report only, clip nothing
	SkipClip bool
}

type Service struct {
	client  StorefrontClient
	store   *Store
	options Options
}

// NewService wires the run loop. `store` may be nil, in which case
// runs are not recorded.
func NewService(client StorefrontClient, store *Store, options Options) Service {
	return Service{
		client:  client,
		store:   store,
		options: options,
	}
}

type RunResult struct {
	RunId string
	// all offers in server order, with final clip status
	Offers       []sprouts.Offer
	NewlyClipped []sprouts.Offer
	Failed       []sprouts.Offer
	Skipped      []sprouts.Offer
}

func (r RunResult) ClippedCount() int {
	count := 0
	for _, o := range r.Offers {
		if o.IsClipped {
			count++
		}
	}
	return count
}

func (r RunResult) AvailableCount() int {
	return len(r.Offers) - r.ClippedCount()
}

// Run fetches the offer list and clips every unclipped offer one at
// a time. a listing failure aborts the run, a clip failure only
// leaves that offer available.
func (s Service) Run(ctx context.Context) (RunResult, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	runId, err := random.String(8)
	if err != nil {
		return RunResult{}, err
	}
	result := RunResult{RunId: runId}

	offers, err := s.client.GetOffers(ctx, s.options.Limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch offers")
		return RunResult{}, err
	}
	result.Offers = offers
	slog.InfoContext(ctx, "fetched offers", "run_id", runId, "count", len(offers))

	if !s.options.SkipClip {
		s.clipAll(ctx, &result)
	}

	span.SetAttributes(
		attribute.Int("total", len(result.Offers)),
		attribute.Int("newly_clipped", len(result.NewlyClipped)),
		attribute.Int("failed", len(result.Failed)),
	)

	if s.store != nil {
		err = s.store.RecordRun(ctx, RunRecord{
			Id:           runId,
			Time:         timezone.Now(),
			Total:        len(result.Offers),
			Clipped:      result.ClippedCount(),
			Available:    result.AvailableCount(),
			NewlyClipped: result.NewlyClipped,
		})
		if err != nil {
			// the clips already happened, losing the history row
			// should not fail the run
			slog.ErrorContext(ctx, "failed to record run", "run_id", runId, "err", err)
			span.RecordError(err)
		}
	}

	return result, nil
}

func (s Service) clipAll(ctx context.Context, result *RunResult) {
	for i := range result.Offers {
		offer := &result.Offers[i]
		if offer.IsClipped {
			continue
		}
		if !matchesWatchlist(offer.Name, s.options.Watchlist) {
			result.Skipped = append(result.Skipped, *offer)
			continue
		}

		slog.InfoContext(ctx, "clipping", "offer", offer.String())
		if s.client.ClipCoupon(ctx, offer) {
			result.NewlyClipped = append(result.NewlyClipped, *offer)
		} else {
			result.Failed = append(result.Failed, *offer)
		}
	}
}
