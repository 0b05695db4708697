package models

import (
	"testing"
	"time"
)

func TestQueueItem_NextAttemptAt_NeverAttempted(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	item := QueueItem{CreatedAt: created}

	got := item.NextAttemptAt(30*time.Second, 15*time.Minute)
	if !got.Equal(created) {
		t.Errorf("expected immediate eligibility at %v, got %v", created, got)
	}
}

func TestQueueItem_NextAttemptAt_Doubling(t *testing.T) {
	attempted := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	base := 30 * time.Second
	max := 15 * time.Minute

	tests := []struct {
		retryCount int
		wantDelay  time.Duration
	}{
		{1, 30 * time.Second},
		{2, time.Minute},
		{3, 2 * time.Minute},
		{4, 4 * time.Minute},
		{5, 8 * time.Minute},
		{6, 15 * time.Minute}, // capped
		{10, 15 * time.Minute},
	}

	for _, tc := range tests {
		item := QueueItem{RetryCount: tc.retryCount, LastAttemptAt: &attempted}
		got := item.NextAttemptAt(base, max)
		want := attempted.Add(tc.wantDelay)
		if !got.Equal(want) {
			t.Errorf("retryCount=%d: expected %v, got %v", tc.retryCount, want, got)
		}
	}
}

func TestQueueItem_Stuck(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	cutoff := now.Add(-24 * time.Hour)

	fresh := QueueItem{Status: StatusPending, CreatedAt: now.Add(-time.Hour)}
	if fresh.Stuck(5, cutoff) {
		t.Error("fresh pending item must not be stuck")
	}

	exhausted := QueueItem{Status: StatusFailed, RetryCount: 5, CreatedAt: now.Add(-time.Hour)}
	if !exhausted.Stuck(5, cutoff) {
		t.Error("item at the retry cap must be stuck")
	}

	aged := QueueItem{Status: StatusPending, CreatedAt: now.Add(-48 * time.Hour)}
	if !aged.Stuck(5, cutoff) {
		t.Error("item older than the cutoff must be stuck")
	}

	atCutoff := QueueItem{Status: StatusPending, CreatedAt: cutoff}
	if !atCutoff.Stuck(5, cutoff) {
		t.Error("item created exactly at the cutoff must be stuck")
	}

	completed := QueueItem{Status: StatusCompleted, RetryCount: 5, CreatedAt: now.Add(-48 * time.Hour)}
	if completed.Stuck(5, cutoff) {
		t.Error("completed item can never be stuck")
	}
}
