package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOf_TruncatesToMidnightUTC(t *testing.T) {
	in := time.Date(2025, time.January, 6, 17, 42, 13, 999, time.UTC)
	got := DateOf(in)
	want := date(2025, time.January, 6)
	if !got.Equal(want) {
		t.Fatalf("DateOf(%v) = %v, want %v", in, got, want)
	}
}

func TestDays_InclusiveRange(t *testing.T) {
	var got []time.Time
	for day := range Days(date(2025, time.January, 6), date(2025, time.January, 9)) {
		got = append(got, day)
	}

	want := []time.Time{
		date(2025, time.January, 6),
		date(2025, time.January, 7),
		date(2025, time.January, 8),
		date(2025, time.January, 9),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("day %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDays_SingleDay(t *testing.T) {
	count := 0
	for day := range Days(date(2025, time.March, 1), date(2025, time.March, 1)) {
		count++
		if !day.Equal(date(2025, time.March, 1)) {
			t.Errorf("unexpected day %v", day)
		}
	}
	if count != 1 {
		t.Fatalf("got %d days, want 1", count)
	}
}

func TestDays_StartAfterEndIsEmpty(t *testing.T) {
	for day := range Days(date(2025, time.January, 10), date(2025, time.January, 6)) {
		t.Fatalf("expected empty sequence, got %v", day)
	}
}

func TestDays_Restartable(t *testing.T) {
	seq := Days(date(2025, time.January, 6), date(2025, time.January, 8))

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	if first != 3 || second != 3 {
		t.Fatalf("ranged %d then %d days, want 3 and 3", first, second)
	}
}

func TestDays_EarlyBreak(t *testing.T) {
	count := 0
	for range Days(date(2025, time.January, 1), date(2025, time.December, 31)) {
		count++
		if count == 5 {
			break
		}
	}
	if count != 5 {
		t.Fatalf("got %d days before break, want 5", count)
	}
}
