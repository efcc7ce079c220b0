package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/service/settlementservice"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

var now = time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

func NewMock(t *testing.T, handlers map[domain.JobType]Handler) (*Runner, *MockQueue, *MockCleanupScheduler) {
	ctrl := gomock.NewController(t)
	queue := NewMockQueue(ctrl)
	cleanup := NewMockCleanupScheduler(ctrl)
	policy, err := wallclock.New("UTC", false, wallclock.NewManualClock(now))
	require.NoError(t, err)

	runner := NewRunner(Config{Concurrency: 2, PollInterval: 10 * time.Millisecond, SweepInterval: time.Hour}, queue, cleanup, policy, handlers)
	t.Cleanup(runner.pool.Close)
	return runner, queue, cleanup
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Second, Backoff(0))
	assert.Equal(t, time.Second, Backoff(1))
	assert.Equal(t, 2*time.Second, Backoff(2))
	assert.Equal(t, 4*time.Second, Backoff(3))
}

func TestRunner_Poll(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name        string
		job         domain.Job
		handlerErr  error
		prepareMock func(q *MockQueue, workerID string)
	}{
		{
			name: "Completed",
			job:  domain.Job{ID: "settlement_1", Type: domain.JobAuctionSettlement, Attempts: 1, MaxAttempts: 3},
			prepareMock: func(q *MockQueue, workerID string) {
				q.EXPECT().Complete(gomock.Any(), "settlement_1", workerID).Return(nil)
			},
		},
		{
			name:       "First failure retries after one second",
			job:        domain.Job{ID: "settlement_1", Type: domain.JobAuctionSettlement, Attempts: 1, MaxAttempts: 3},
			handlerErr: boom,
			prepareMock: func(q *MockQueue, workerID string) {
				q.EXPECT().Retry(gomock.Any(), "settlement_1", workerID, now.Add(time.Second), "boom").Return(nil)
			},
		},
		{
			name:       "Second failure retries after two seconds",
			job:        domain.Job{ID: "settlement_1", Type: domain.JobAuctionSettlement, Attempts: 2, MaxAttempts: 3},
			handlerErr: boom,
			prepareMock: func(q *MockQueue, workerID string) {
				q.EXPECT().Retry(gomock.Any(), "settlement_1", workerID, now.Add(2*time.Second), "boom").Return(nil)
			},
		},
		{
			name:       "Last attempt fails the job",
			job:        domain.Job{ID: "settlement_1", Type: domain.JobAuctionSettlement, Attempts: 3, MaxAttempts: 3},
			handlerErr: boom,
			prepareMock: func(q *MockQueue, workerID string) {
				q.EXPECT().Fail(gomock.Any(), "settlement_1", workerID, "boom").Return(nil)
			},
		},
		{
			name: "Lock lost before completion",
			job:  domain.Job{ID: "settlement_1", Type: domain.JobAuctionSettlement, Attempts: 1, MaxAttempts: 3},
			prepareMock: func(q *MockQueue, workerID string) {
				q.EXPECT().Complete(gomock.Any(), "settlement_1", workerID).Return(domain.ErrJobNotOwned)
			},
		},
		{
			name:       "Lock lost before retry",
			job:        domain.Job{ID: "settlement_1", Type: domain.JobAuctionSettlement, Attempts: 1, MaxAttempts: 3},
			handlerErr: boom,
			prepareMock: func(q *MockQueue, workerID string) {
				q.EXPECT().Retry(gomock.Any(), "settlement_1", workerID, now.Add(time.Second), "boom").Return(domain.ErrJobNotOwned)
			},
		},
		{
			name: "Unknown type",
			job:  domain.Job{ID: "x", Type: "MYSTERY", Attempts: 1, MaxAttempts: 3},
			prepareMock: func(q *MockQueue, workerID string) {
				q.EXPECT().Fail(gomock.Any(), "x", workerID, ErrUnknownJobType.Error()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers := map[domain.JobType]Handler{
				domain.JobAuctionSettlement: func(context.Context, domain.Job) error { return tt.handlerErr },
			}
			runner, queue, _ := NewMock(t, handlers)
			queue.EXPECT().ClaimDue(gomock.Any(), now, runner.workerID, 2).Return([]domain.Job{tt.job}, nil)
			tt.prepareMock(queue, runner.workerID)

			n, err := runner.Poll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestRunner_PollBatch(t *testing.T) {
	done := make(chan string, 2)
	handlers := map[domain.JobType]Handler{
		domain.JobAuctionReminder: func(_ context.Context, job domain.Job) error {
			done <- job.ID
			return nil
		},
	}
	runner, queue, _ := NewMock(t, handlers)

	queue.EXPECT().ClaimDue(gomock.Any(), now, runner.workerID, 2).Return([]domain.Job{
		{ID: "reminder_1", Type: domain.JobAuctionReminder, Attempts: 1, MaxAttempts: 3},
		{ID: "reminder_2", Type: domain.JobAuctionReminder, Attempts: 1, MaxAttempts: 3},
	}, nil)
	queue.EXPECT().Complete(gomock.Any(), "reminder_1", runner.workerID).Return(nil)
	queue.EXPECT().Complete(gomock.Any(), "reminder_2", runner.workerID).Return(nil)

	n, err := runner.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, done, 2)
}

func TestRunner_PollClaimError(t *testing.T) {
	runner, queue, _ := NewMock(t, nil)
	queue.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	_, err := runner.Poll(context.Background())
	assert.Error(t, err)
}

func TestRunner_JobOutlivesShutdown(t *testing.T) {
	var jobCtxErr error
	ctx, cancel := context.WithCancel(context.Background())
	handlers := map[domain.JobType]Handler{
		domain.JobAuctionSettlement: func(jobCtx context.Context, _ domain.Job) error {
			cancel()
			jobCtxErr = jobCtx.Err()
			return nil
		},
	}
	runner, queue, _ := NewMock(t, handlers)
	queue.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Job{{ID: "settlement_1", Type: domain.JobAuctionSettlement, Attempts: 1, MaxAttempts: 3}}, nil)
	queue.EXPECT().Complete(gomock.Any(), "settlement_1", runner.workerID).Return(nil)

	_, err := runner.Poll(ctx)
	require.NoError(t, err)
	assert.NoError(t, jobCtxErr)
}

func TestRunner_Run(t *testing.T) {
	runner, queue, cleanup := NewMock(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	cleanup.EXPECT().CleanupDue(gomock.Any(), time.Hour).Return(nil)
	queue.EXPECT().RequeueStalled(gomock.Any(), now.Add(-VisibilityTimeout)).Return(int64(1), nil)
	queue.EXPECT().Prune(gomock.Any(), now.Add(-CompletedTTL), now.Add(-FailedTTL)).Return(int64(0), nil)
	queue.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, string, int) ([]domain.Job, error) {
			cancel()
			return nil, nil
		}).MinTimes(1)

	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(ctx) }()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	settler := NewMockSettler(ctrl)
	notifier := NewMockNotifier(ctrl)
	handlers := Handlers(settler, notifier)
	ctx := context.Background()
	amount := decimal.NewFromInt(200)

	settler.EXPECT().Settle(gomock.Any(), 4).Return(settlementservice.Extended, nil)
	assert.NoError(t, handlers[domain.JobAuctionSettlement](ctx, domain.Job{Payload: domain.JobPayload{AuctionID: 4}}))

	settler.EXPECT().Sweep(gomock.Any()).Return(0, errors.New("database error"))
	assert.Error(t, handlers[domain.JobSettlementCleanup](ctx, domain.Job{}))

	notifier.EXPECT().Remind(gomock.Any(), 4).Return(nil)
	assert.NoError(t, handlers[domain.JobAuctionReminder](ctx, domain.Job{Payload: domain.JobPayload{AuctionID: 4}}))

	notifier.EXPECT().NotifyOutbid(gomock.Any(), 4, 2, amount).Return(nil)
	assert.NoError(t, handlers[domain.JobOutbidNotification](ctx, domain.Job{
		Payload: domain.JobPayload{AuctionID: 4, BidderID: 2, Amount: &amount},
	}))

	assert.Error(t, handlers[domain.JobOutbidNotification](ctx, domain.Job{ID: "x", Payload: domain.JobPayload{AuctionID: 4}}))
}
