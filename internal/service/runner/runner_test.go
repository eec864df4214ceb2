package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/service/runner/mocks"
	"github.com/you-humble/ge-sync/platform/logger"
)

type deps struct {
	orders    *mocks.MockOrderSyncer
	inbound   *mocks.MockInboundSyncer
	inventory *mocks.MockInventorySyncer
	publisher *mocks.MockResultPublisher
	notifier  *mocks.MockResultNotifier
}

func newDeps(t *testing.T) deps {
	return deps{
		orders:    mocks.NewMockOrderSyncer(t),
		inbound:   mocks.NewMockInboundSyncer(t),
		inventory: mocks.NewMockInventorySyncer(t),
		publisher: mocks.NewMockResultPublisher(t),
		notifier:  mocks.NewMockResultNotifier(t),
	}
}

var until = time.Date(2025, 10, 30, 9, 0, 0, 0, time.UTC)

func (d deps) runner() *Runner {
	r := NewRunner(d.orders, d.inbound, d.inventory, func(now time.Time) model.SyncOptions {
		return model.SyncOptions{LocationID: "19SU", WindowDays: 30, Until: now}
	}, d.publisher, d.notifier)
	r.now = func() time.Time { return until }
	return r
}

func TestRun(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	wantOpts := model.SyncOptions{LocationID: "19SU", WindowDays: 30, Until: until}

	type testCase struct {
		name    string
		req     model.SyncRequest
		setup   func(d deps)
		wantErr error
		assert  func(t *testing.T, res model.SyncResult)
	}

	tests := []testCase{
		{
			name: "orders dispatch publishes and notifies",
			req:  model.SyncRequest{Flow: model.FlowOrders},
			setup: func(d deps) {
				res := model.SyncResult{Flow: model.FlowOrders, Success: true}
				d.orders.On("SyncOrders", mock.Anything, wantOpts).Return(res).Once()
				d.publisher.On("PublishResult", mock.Anything, model.SyncRequest{Flow: model.FlowOrders}, res).Return(nil).Once()
				d.notifier.On("NotifyResult", mock.Anything, model.SyncRequest{Flow: model.FlowOrders}, res).Return(nil).Once()
			},
			assert: func(t *testing.T, res model.SyncResult) {
				assert.True(t, res.Success)
			},
		},
		{
			name: "inventory dispatch passes the type",
			req:  model.SyncRequest{Flow: model.FlowInventory, InventoryType: model.InventoryTypeFG},
			setup: func(d deps) {
				res := model.SyncResult{Flow: model.FlowInventory, Stats: model.SyncStats{CrossTypeSkipped: 1}}
				d.inventory.On("SyncInventory", mock.Anything, model.InventoryTypeFG, wantOpts).Return(res).Once()
				d.publisher.On("PublishResult", mock.Anything, mock.Anything, res).Return(nil).Once()
				d.notifier.On("NotifyResult", mock.Anything, mock.Anything, res).Return(nil).Once()
			},
			assert: func(t *testing.T, res model.SyncResult) {
				assert.Equal(t, 1, res.Stats.CrossTypeSkipped)
			},
		},
		{
			name: "publish and notify failures do not change the result",
			req:  model.SyncRequest{Flow: model.FlowInbound},
			setup: func(d deps) {
				res := model.SyncResult{Flow: model.FlowInbound, Success: true}
				d.inbound.On("SyncInbound", mock.Anything, wantOpts).Return(res).Once()
				d.publisher.On("PublishResult", mock.Anything, mock.Anything, res).Return(errors.New("broker down")).Once()
				d.notifier.On("NotifyResult", mock.Anything, mock.Anything, res).Return(errors.New("chat not found")).Once()
			},
			assert: func(t *testing.T, res model.SyncResult) {
				assert.True(t, res.Success)
			},
		},
		{
			name:    "unknown flow",
			req:     model.SyncRequest{Flow: "payments"},
			setup:   func(d deps) {},
			wantErr: model.ErrUnknownFlow,
		},
		{
			name:    "inventory without a valid type",
			req:     model.SyncRequest{Flow: model.FlowInventory, InventoryType: "XX"},
			setup:   func(d deps) {},
			wantErr: model.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			res, err := d.runner().Run(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.assert(t, res)
		})
	}
}

func TestRunRejectsConcurrentSync(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	d := newDeps(t)
	r := d.runner()

	started := make(chan struct{})
	release := make(chan struct{})
	res := model.SyncResult{Flow: model.FlowOrders, Success: true}

	d.orders.On("SyncOrders", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(res).Once()
	d.publisher.On("PublishResult", mock.Anything, mock.Anything, res).Return(nil).Once()
	d.notifier.On("NotifyResult", mock.Anything, mock.Anything, res).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), model.SyncRequest{Flow: model.FlowOrders})
		done <- err
	}()

	<-started
	_, err := r.Run(context.Background(), model.SyncRequest{Flow: model.FlowInbound})
	require.ErrorIs(t, err, model.ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestScheduleDisabled(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	d := newDeps(t)
	assert.NoError(t, d.runner().Schedule(context.Background(), 0, ScheduledRequests([]string{"ASIS"})))
}

func TestScheduleRunsUntilCancelled(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	d := newDeps(t)
	r := d.runner()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res := model.SyncResult{Flow: model.FlowOrders, Success: true}
	d.orders.On("SyncOrders", mock.Anything, mock.Anything).Run(func(mock.Arguments) { cancel() }).Return(res).Once()
	d.publisher.On("PublishResult", mock.Anything, mock.Anything, res).Return(nil).Once()
	d.notifier.On("NotifyResult", mock.Anything, mock.Anything, res).Return(nil).Once()

	err := r.Schedule(ctx, time.Millisecond, []model.SyncRequest{{Flow: model.FlowOrders}, {Flow: model.FlowInbound}})
	assert.NoError(t, err)
	d.inbound.AssertNotCalled(t, "SyncInbound", mock.Anything, mock.Anything)
}

func TestScheduledRequests(t *testing.T) {
	t.Parallel()

	got := ScheduledRequests([]string{"asis", " FG", "bogus", "ASIS"})
	assert.Equal(t, []model.SyncRequest{
		{Flow: model.FlowOrders},
		{Flow: model.FlowInbound},
		{Flow: model.FlowInventory, InventoryType: model.InventoryTypeASIS},
		{Flow: model.FlowInventory, InventoryType: model.InventoryTypeFG},
	}, got)
}
