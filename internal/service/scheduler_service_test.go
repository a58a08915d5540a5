package service

import "testing"

func TestBuildDailySpec(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "00:05", want: "0 5 0 * * *"},
		{in: "23:59", want: "0 59 23 * * *"},
		{in: "7:30", want: "0 30 7 * * *"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "12", wantErr: true},
	}
	for _, tc := range cases {
		got, err := buildDailySpec(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("buildDailySpec(%q) = %q, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("buildDailySpec(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("buildDailySpec(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
