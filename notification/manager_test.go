package notification

import (
	"breakout-lab/contract"
	"breakout-lab/domain"
	"breakout-lab/mocks"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notificationFor(recipient string, session domain.Token) domain.Notification {
	return domain.Notification{Recipient: recipient, SessionToken: session, Preview: "hello"}
}

func TestManager_Notify_Delivers_Immediately(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockNotificationSink(ctrl)
	manager := NewManager(log, mockRegistry, time.Second)

	n := notificationFor("alice", "room-1")
	// Given alice is connected once
	mockRegistry.EXPECT().GetSinks("alice").Return([]contract.NotificationSink{mockSink}).Times(1)
	// Then her sink receives a digest of one notification
	mockSink.EXPECT().
		Consume(gomock.Any(), domain.Digest{Recipient: "alice", Notifications: []domain.Notification{n}}).
		Return(nil).
		Times(1)

	// When no batch is open
	manager.Notify(context.Background(), n)

	req.False(manager.Deferred(context.Background()))
}

func TestManager_Deferred_Notifications_Are_Coalesced(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	aliceSink := mocks.NewMockNotificationSink(ctrl)
	bobSink := mocks.NewMockNotificationSink(ctrl)
	manager := NewManager(log, mockRegistry, time.Second)

	// Given a batch is open
	ctx, opened := manager.Defer(context.Background())
	req.True(opened)
	req.True(manager.Deferred(ctx))

	// When alice is notified from three rooms and bob from one
	for i := 1; i <= 3; i++ {
		manager.Notify(ctx, notificationFor("alice", domain.Token(fmt.Sprintf("room-%d", i))))
	}
	manager.Notify(ctx, notificationFor("bob", "room-2"))

	// Then nothing is delivered before the flush
	// And each recipient gets one digest on flush
	mockRegistry.EXPECT().GetSinks("alice").Return([]contract.NotificationSink{aliceSink}).Times(1)
	mockRegistry.EXPECT().GetSinks("bob").Return([]contract.NotificationSink{bobSink}).Times(1)
	aliceSink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, d domain.Digest) error {
			req.Equal("alice", d.Recipient)
			req.Len(d.Notifications, 3)
			req.Equal(domain.Token("room-1"), d.Notifications[0].SessionToken)
			return nil
		}).Times(1)
	bobSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	manager.Flush(ctx)

	req.False(manager.Deferred(ctx))
}

func TestManager_Nested_Defer(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	manager := NewManager(log, mockRegistry, time.Second)

	// Given an outer caller opened the batch
	outer, opened := manager.Defer(context.Background())
	req.True(opened)

	// When an inner caller tries to open it again
	// Then it is handed the same batch and told not to flush
	inner, opened := manager.Defer(outer)
	req.False(opened)
	req.Equal(outer, inner)
	req.True(manager.Deferred(inner))

	// And an empty flush reaches no sink
	mockRegistry.EXPECT().GetSinks(gomock.Any()).Times(0)
	manager.Flush(outer)
	req.False(manager.Deferred(outer))
}

func TestManager_Overlapping_Batches_Stay_Apart(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	aliceSink := mocks.NewMockNotificationSink(ctrl)
	manager := NewManager(log, mockRegistry, time.Second)

	var sizes []int
	mockRegistry.EXPECT().GetSinks("alice").Return([]contract.NotificationSink{aliceSink}).Times(2)
	aliceSink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, d domain.Digest) error {
			sizes = append(sizes, len(d.Notifications))
			return nil
		}).Times(2)

	// Given two callers each opened a batch
	first, opened := manager.Defer(context.Background())
	req.True(opened)
	second, opened := manager.Defer(context.Background())
	req.True(opened)

	// When the first flushes while the second is halfway through
	manager.Notify(first, notificationFor("alice", "a-1"))
	manager.Notify(second, notificationFor("alice", "b-1"))
	manager.Flush(first)
	req.True(manager.Deferred(second))
	for i := 2; i <= 5; i++ {
		manager.Notify(second, notificationFor("alice", domain.Token(fmt.Sprintf("b-%d", i))))
	}
	manager.Flush(second)

	// Then each batch reaches alice as a single digest
	req.Equal([]int{1, 5}, sizes)
}

func TestManager_Concurrent_Batches_Each_Flush_Once(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	aliceSink := mocks.NewMockNotificationSink(ctrl)
	manager := NewManager(log, mockRegistry, time.Second)

	var mu sync.Mutex
	var sizes []int
	mockRegistry.EXPECT().GetSinks("alice").Return([]contract.NotificationSink{aliceSink}).AnyTimes()
	aliceSink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, d domain.Digest) error {
			mu.Lock()
			defer mu.Unlock()
			sizes = append(sizes, len(d.Notifications))
			return nil
		}).AnyTimes()

	// When eight callers batch ten notifications each at the same time
	var wg sync.WaitGroup
	for caller := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, _ := manager.Defer(context.Background())
			for i := range 10 {
				manager.Notify(ctx, notificationFor("alice", domain.Token(fmt.Sprintf("room-%d-%d", caller, i))))
			}
			manager.Flush(ctx)
		}()
	}
	wg.Wait()

	// Then alice gets exactly one full digest per caller
	req.Len(sizes, 8)
	for _, size := range sizes {
		req.Equal(10, size)
	}
}

func TestManager_Notify_After_Flush_Is_Not_Lost(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	aliceSink := mocks.NewMockNotificationSink(ctrl)
	manager := NewManager(log, mockRegistry, time.Second)

	// Given an empty batch was flushed, reaching no sink
	ctx, _ := manager.Defer(context.Background())
	manager.Flush(ctx)

	// When the closed batch's context is reused
	// Then the notification is delivered on its own
	mockRegistry.EXPECT().GetSinks("alice").Return([]contract.NotificationSink{aliceSink}).Times(1)
	aliceSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	manager.Notify(ctx, notificationFor("alice", "late"))
}

func TestManager_Failing_Sink_Does_Not_Stop_Delivery(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	brokenSink := mocks.NewMockNotificationSink(ctrl)
	healthySink := mocks.NewMockNotificationSink(ctrl)
	manager := NewManager(log, mockRegistry, 20*time.Millisecond)

	// Given alice has a broken connection and a healthy one
	mockRegistry.EXPECT().GetSinks("alice").
		Return([]contract.NotificationSink{brokenSink, healthySink}).Times(1)
	brokenSink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, d domain.Digest) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		}).Times(1)
	// Then the healthy one still receives the digest
	healthySink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// When alice is notified
	manager.Notify(context.Background(), notificationFor("alice", "room-1"))
}

func TestCoalesce_Keeps_First_Seen_Order(t *testing.T) {
	req := require.New(t)
	notifications := []domain.Notification{
		notificationFor("bob", "r1"),
		notificationFor("alice", "r1"),
		notificationFor("bob", "r2"),
	}

	digests := Coalesce(notifications)

	req.Len(digests, 2)
	req.Equal("bob", digests[0].Recipient)
	req.Len(digests[0].Notifications, 2)
	req.Equal(domain.Token("r2"), digests[0].Notifications[1].SessionToken)
	req.Equal("alice", digests[1].Recipient)
}
