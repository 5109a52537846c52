package epoch

import (
	"testing"
	"time"
)

func TestRound(t *testing.T) {
	cadence := 6 * time.Hour
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"exact epoch unchanged",
			time.Date(2020, time.March, 5, 12, 0, 0, 0, time.UTC),
			time.Date(2020, time.March, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			"rounds down before midpoint",
			time.Date(2020, time.March, 5, 13, 30, 0, 0, time.UTC),
			time.Date(2020, time.March, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			"rounds up past midpoint",
			time.Date(2020, time.March, 5, 16, 30, 0, 0, time.UTC),
			time.Date(2020, time.March, 5, 18, 0, 0, 0, time.UTC),
		},
		{
			"tie rounds down",
			time.Date(2020, time.March, 5, 15, 0, 0, 0, time.UTC),
			time.Date(2020, time.March, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			"crosses midnight upward",
			time.Date(2020, time.March, 5, 22, 0, 0, 1, time.UTC),
			time.Date(2020, time.March, 6, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Round(c.in, cadence); !got.Equal(c.want) {
				t.Errorf("Round(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestRound_NonPositiveCadence(t *testing.T) {
	in := time.Date(2020, time.March, 5, 13, 37, 0, 0, time.UTC)
	if got := Round(in, 0); !got.Equal(in) {
		t.Errorf("Round with zero cadence = %v, want input unchanged", got)
	}
}

func TestSurrounding(t *testing.T) {
	cadence := 6 * time.Hour
	in := time.Date(2020, time.March, 5, 13, 30, 0, 0, time.UTC)

	before, after := Surrounding(in, cadence)
	wantBefore := time.Date(2020, time.March, 5, 12, 0, 0, 0, time.UTC)
	wantAfter := time.Date(2020, time.March, 5, 18, 0, 0, 0, time.UTC)
	if !before.Equal(wantBefore) || !after.Equal(wantAfter) {
		t.Errorf("Surrounding(%v) = %v, %v; want %v, %v", in, before, after, wantBefore, wantAfter)
	}
}

func TestSurrounding_OnEpoch(t *testing.T) {
	in := time.Date(2020, time.March, 5, 18, 0, 0, 0, time.UTC)
	before, after := Surrounding(in, 6*time.Hour)
	if !before.Equal(in) || !after.Equal(in) {
		t.Errorf("Surrounding on an epoch = %v, %v; want both %v", before, after, in)
	}
}
