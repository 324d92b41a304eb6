package commands

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"luxegems/internal/domain"
	"luxegems/internal/eventbus"
	"luxegems/internal/inventory"
	"luxegems/internal/ui/state"
)

// FetchController turns filter snapshots into listing requests and
// reconciles their results into fetch state.
//
// Every call to Start issues a request immediately; there is no debounce
// and no retry. Results for superseded requests are discarded so a slow
// early response can never overwrite a newer listing. Failures are only
// logged and published on the bus; the shopper keeps seeing the last good
// list.
type FetchController struct {
	ctx       *CommandContext
	requestID func() string
}

// NewFetchController creates a controller whose requests live no longer than ctx
func NewFetchController(ctx context.Context, lister inventory.Lister, bus eventbus.EventBus) *FetchController {
	return &FetchController{
		ctx: &CommandContext{
			Ctx:    ctx,
			Lister: lister,
			Bus:    bus,
		},
		requestID: uuid.NewString,
	}
}

// Start begins a fetch for filters. The returned state is loading and owns
// the new request; the command performs it.
func (c *FetchController) Start(fetch state.FetchState, filters domain.FilterState) (state.FetchState, tea.Cmd) {
	next, seq := fetch.Begin()
	id := c.requestID()

	c.publish(eventbus.FetchStartedEvent{Seq: seq, RequestID: id, Filters: filters})

	cmd := NewFetchCommand(c.ctx, seq, id, filters)
	return next, cmd.Execute()
}

// Reconcile applies a fetch result. applied is false when the result
// belonged to a superseded request and was dropped.
func (c *FetchController) Reconcile(fetch state.FetchState, msg ItemsFetchedMsg) (next state.FetchState, applied bool) {
	if msg.Err != nil {
		log.Printf("Fetch items failed (request %s, seq %d, filters %+v): %v", msg.RequestID, msg.Seq, msg.Filters, msg.Err)
		c.publish(eventbus.FetchFailedEvent{
			Seq:       msg.Seq,
			RequestID: msg.RequestID,
			Filters:   msg.Filters,
			Err:       msg.Err,
		})
		next, applied = fetch.Fail(msg.Seq)
	} else {
		page := domain.ItemsPage{}
		if msg.Page != nil {
			page = *msg.Page
		}
		next, applied = fetch.Succeed(msg.Seq, page)
		if applied {
			c.publish(eventbus.FetchSucceededEvent{Seq: msg.Seq, RequestID: msg.RequestID, Count: len(page.Items)})
		}
	}

	if !applied {
		log.Printf("Discarding response for superseded request %s (seq %d, latest %d)", msg.RequestID, msg.Seq, fetch.Seq)
		c.publish(eventbus.FetchDiscardedEvent{Seq: msg.Seq, Latest: fetch.Seq, RequestID: msg.RequestID})
	}
	return next, applied
}

func (c *FetchController) publish(e eventbus.DomainEvent) {
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(e)
	}
}
