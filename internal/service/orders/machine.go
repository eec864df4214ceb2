package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/client/http/dms"
	"github.com/you-humble/ge-sync/internal/model"
	parser "github.com/you-humble/ge-sync/internal/parser/orders"
	"github.com/you-humble/ge-sync/internal/service/syncrun"
	"github.com/you-humble/ge-sync/platform/logger"
)

// State names one step of the per-chunk fetch escalation.
type State string

const (
	StateJSON       State = "json"
	StateHTML       State = "html"
	StateBrowser    State = "browser"
	StateDailySplit State = "daily-split"
	StatePerCSO     State = "per-cso"
	StateDone       State = "done"
)

const orderNumberSelector = `input[name^="orderNumber"]`

// machine walks one chunk through json -> html -> browser -> daily-split
// until it has orders or runs out of options.
type machine struct {
	svc    *service
	run    *syncrun.Run
	opts   model.SyncOptions
	cookie string

	chunk  Window
	target Window
	split  bool
	days   []Window

	csos   []string
	seen   map[string]struct{}
	budget int

	orders []model.OrderRecord
	trace  []State
}

func newMachine(svc *service, run *syncrun.Run, opts model.SyncOptions, cookie string, c Window) *machine {
	return &machine{
		svc:    svc,
		run:    run,
		opts:   opts,
		cookie: cookie,
		chunk:  c,
		target: c,
		seen:   make(map[string]struct{}),
		budget: opts.MaxCSOsPerChunk,
	}
}

// Run drives the machine to StateDone and returns the chunk's orders.
func (m *machine) Run(ctx context.Context) ([]model.OrderRecord, error) {
	st := StateJSON
	for st != StateDone {
		m.trace = append(m.trace, st)
		logger.Debug(ctx, "order chunk state",
			logger.String("chunk", m.chunk.String()),
			logger.String("state", string(st)),
		)

		next, err := m.step(ctx, st)
		if err != nil {
			return nil, err
		}
		st = next
	}
	m.trace = append(m.trace, StateDone)
	return m.orders, nil
}

func (m *machine) step(ctx context.Context, st State) (State, error) {
	switch st {
	case StateJSON:
		return m.fetchJSON(ctx)
	case StateHTML:
		return m.searchHTML(ctx)
	case StateBrowser:
		return m.searchBrowser(ctx)
	case StateDailySplit:
		return m.splitDays(ctx)
	case StatePerCSO:
		return m.fetchPerCSO(ctx)
	default:
		return StateDone, fmt.Errorf("unknown state %q", st)
	}
}

func (m *machine) fetchJSON(ctx context.Context) (State, error) {
	body, err := m.svc.dms.OrderJSON(ctx, m.cookie, m.opts.LocationID, m.chunk.From, m.chunk.To)
	if err != nil {
		return StateDone, err
	}

	orders, err := m.decode(body)
	if err != nil {
		return StateDone, err
	}
	if len(orders) == 0 {
		m.run.Logf(ctx, "Chunk %s: order JSON empty, falling back to HTML search", m.chunk)
		return StateHTML, nil
	}

	m.orders = orders
	m.run.Logf(ctx, "Chunk %s: order JSON returned %d orders", m.chunk, len(orders))
	return StateDone, nil
}

func (m *machine) searchHTML(ctx context.Context) (State, error) {
	doc, err := m.svc.dms.OrderSearchHTML(ctx, m.cookie, m.opts.LocationID, m.target.From, m.target.To)
	if err != nil {
		return StateDone, err
	}

	if m.collect(parser.CSOsFromHTML(doc)) > 0 {
		return StatePerCSO, nil
	}

	m.run.Logf(ctx, "Order data HTML returned no CSOs (%s)", m.target)
	if m.opts.BrowserFallback && m.svc.browser != nil {
		return StateBrowser, nil
	}
	return m.exhausted(), nil
}

// searchBrowser replays the session in a headless browser. Browser
// failures are soft: the chunk carries on as if no CSOs were found.
func (m *machine) searchBrowser(ctx context.Context) (State, error) {
	cookies, err := m.svc.sessions.ValidCookies(ctx, m.opts.LocationID)
	if err != nil {
		return StateDone, err
	}

	pageURL := m.svc.dms.OrderSearchURL(m.opts.LocationID, m.target.From, m.target.To)
	doc, err := m.svc.browser.FetchHTML(ctx, pageURL, cookies, orderNumberSelector, m.opts.BrowserTimeout)
	if err != nil {
		logger.Warn(ctx, "browser fallback failed", logger.String("window", m.target.String()), logger.ErrorF(err))
		m.run.Logf(ctx, "Browser fallback failed for %s: %v", m.target, err)
		return m.exhausted(), nil
	}

	if m.collect(parser.CSOsFromHTML(doc)) > 0 {
		return StatePerCSO, nil
	}

	m.run.Logf(ctx, "Browser fallback returned no CSOs (%s)", m.target)
	return m.exhausted(), nil
}

func (m *machine) splitDays(ctx context.Context) (State, error) {
	m.split = true
	m.days = m.chunk.Split()
	m.run.Logf(ctx, "Chunk %s: splitting into %d daily requests", m.chunk, len(m.days))
	return m.nextDay(), nil
}

func (m *machine) fetchPerCSO(ctx context.Context) (State, error) {
	csos := m.csos
	m.csos = nil

	m.run.Logf(ctx, "Order data CSOs: %d", len(csos))
	for _, cso := range csos {
		body, err := m.svc.dms.OrderJSONByCSO(ctx, m.cookie, m.opts.LocationID, cso)
		if err != nil {
			return StateDone, err
		}

		orders, err := m.decode(body)
		if err != nil {
			return StateDone, fmt.Errorf("cso %s: %w", cso, err)
		}
		if len(orders) == 0 {
			m.run.Logf(ctx, "CSO %s returned no order data, skipping", cso)
			continue
		}
		m.orders = append(m.orders, orders...)
	}

	if m.split {
		return m.nextDay(), nil
	}
	return StateDone, nil
}

// collect queues unseen CSOs within the per-chunk budget and returns how
// many were queued.
func (m *machine) collect(found []string) int {
	fresh := lo.Filter(found, func(cso string, _ int) bool {
		_, ok := m.seen[cso]
		return !ok
	})
	if m.opts.MaxCSOsPerChunk > 0 {
		if m.budget <= 0 {
			return 0
		}
		if len(fresh) > m.budget {
			fresh = fresh[:m.budget]
		}
		m.budget -= len(fresh)
	}
	for _, cso := range fresh {
		m.seen[cso] = struct{}{}
	}
	m.csos = fresh
	return len(fresh)
}

func (m *machine) exhausted() State {
	if m.split {
		return m.nextDay()
	}
	if m.chunk.Days() > 1 {
		return StateDailySplit
	}
	return StateDone
}

func (m *machine) nextDay() State {
	if len(m.days) == 0 {
		return StateDone
	}
	m.target, m.days = m.days[0], m.days[1:]
	return StateHTML
}

// decode rejects HTML served in place of JSON and parses the rest.
func (m *machine) decode(body []byte) ([]model.OrderRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return nil, fmt.Errorf("%w: %s", model.ErrUnexpectedHTML, dms.Preview(trimmed))
	}
	return parser.ParseJSON(trimmed, m.opts.LocationID)
}
