package models

import "testing"

func TestTimeTakenDisplay(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{3600, "60:00"},
	}

	for _, tc := range cases {
		r := TestResult{TimeTaken: tc.seconds}
		if got := r.TimeTakenDisplay(); got != tc.want {
			t.Errorf("TimeTakenDisplay(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
