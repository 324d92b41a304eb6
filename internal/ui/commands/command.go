package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"luxegems/internal/domain"
	"luxegems/internal/eventbus"
	"luxegems/internal/inventory"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	// Ctx is cancelled when the storefront exits; in-flight requests abort with it
	Ctx    context.Context
	Lister inventory.Lister
	Bus    eventbus.EventBus
}

// ItemsFetchedMsg carries the outcome of one listing request back to the
// update loop. Exactly one of Page and Err is set.
type ItemsFetchedMsg struct {
	Seq       uint64
	RequestID string
	Filters   domain.FilterState
	Page      *domain.ItemsPage
	Err       error
}

// FetchCommand lists items for one filter snapshot
type FetchCommand struct {
	ctx       *CommandContext
	seq       uint64
	requestID string
	filters   domain.FilterState
}

// NewFetchCommand creates a new fetch command
func NewFetchCommand(ctx *CommandContext, seq uint64, requestID string, filters domain.FilterState) *FetchCommand {
	return &FetchCommand{
		ctx:       ctx,
		seq:       seq,
		requestID: requestID,
		filters:   filters,
	}
}

// Execute returns the command performing the request off the update loop
func (c *FetchCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		parent := c.ctx.Ctx
		if parent == nil {
			parent = context.Background()
		}
		reqCtx := inventory.WithRequestID(parent, c.requestID)

		page, err := c.ctx.Lister.ListItems(reqCtx, c.filters)
		return ItemsFetchedMsg{
			Seq:       c.seq,
			RequestID: c.requestID,
			Filters:   c.filters,
			Page:      page,
			Err:       err,
		}
	}
}
