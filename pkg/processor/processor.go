package processor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/collection"
	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/event"
	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/notify"
)

// Processor turns relevant transactions into notifications and fans them out
// to the configured channels. It holds no mutable state, so one instance is
// shared across all request handlers.
type Processor struct {
	lookup   *collection.Lookup
	channels []notify.Channel
	log      *slog.Logger
}

func New(lookup *collection.Lookup, channels []notify.Channel, log *slog.Logger) *Processor {
	return &Processor{lookup: lookup, channels: channels, log: log}
}

// ProcessBatch handles a webhook payload strictly one transaction after
// another. A panic while processing one transaction is logged and never
// aborts its siblings.
func (p *Processor) ProcessBatch(ctx context.Context, txs []event.Transaction) {
	for i := range txs {
		p.processOne(ctx, &txs[i])
	}
}

func (p *Processor) processOne(ctx context.Context, tx *event.Transaction) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("panic processing transaction", "signature", tx.Events.NFT.Signature, "panic", r)
		}
	}()
	p.Process(ctx, tx)
}

// Process runs the per-event state machine. It never returns an error:
// irrelevant types and unknown mints are silent skips, delivery failures are
// logged per channel and swallowed.
func (p *Processor) Process(ctx context.Context, tx *event.Transaction) {
	if !tx.Relevant() {
		return
	}

	mint := tx.FirstMint()
	if mint == "" {
		p.log.Info("no mint in transaction", "signature", tx.Events.NFT.Signature)
		return
	}

	displayID, ok := p.lookup.DisplayID(mint)
	if !ok {
		p.log.Info("mint not in collection", "mint", mint)
		return
	}
	rank, ok := p.lookup.Rank(mint)
	if !ok {
		p.log.Info("no rank for mint", "mint", mint)
		return
	}

	nft := &tx.Events.NFT
	n := notify.Notification{
		Message: FormatMessage(displayID, rank, FormatSource(nft.Source),
			nft.Amount, nft.Buyer, nft.Seller, nft.Signature),
		ImageURL: ImageURL(displayID),
	}

	// Formatting happens before the testing check so tests exercise the full
	// pipeline without triggering real deliveries.
	if tx.IsTesting {
		p.log.Info("skipping delivery for testing transaction", "mint", mint)
		return
	}

	p.dispatch(ctx, n)
}

// dispatch sends the notification to every channel concurrently and waits for
// all of them, successes and failures alike. One channel's failure never
// cancels another's delivery.
func (p *Processor) dispatch(ctx context.Context, n notify.Notification) {
	errs := make([]error, len(p.channels))
	var wg sync.WaitGroup
	for i, ch := range p.channels {
		wg.Add(1)
		go func(i int, ch notify.Channel) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("panic in %s channel: %v", ch.Name(), r)
				}
			}()
			errs[i] = ch.Send(ctx, n)
		}(i, ch)
	}
	wg.Wait()

	for i, ch := range p.channels {
		if errs[i] != nil {
			p.log.Error("notification failed", "channel", ch.Name(), "err", errs[i])
		} else {
			p.log.Info("notification sent", "channel", ch.Name())
		}
	}
}
