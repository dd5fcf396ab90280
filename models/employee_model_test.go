package models

import "testing"

func TestLeaveDays(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want float64
	}{
		{"single day", "2025-03-10", "2025-03-10", 1},
		{"five days inclusive", "2025-03-10", "2025-03-14", 5},
		{"reversed range", "2025-03-14", "2025-03-10", 0},
		{"unparseable from", "bogus", "2025-03-10", 0},
		{"unparseable to", "2025-03-10", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LeaveDays(tc.from, tc.to); got != tc.want {
				t.Errorf("LeaveDays(%q, %q) = %g, want %g", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestOvertimeAmount(t *testing.T) {
	if got := OvertimeAmount(3, 150); got != 450 {
		t.Errorf("OvertimeAmount(3, 150) = %g, want 450", got)
	}
	if got := OvertimeAmount(3, 200); got != 600 {
		t.Errorf("OvertimeAmount(3, 200) = %g, want 600", got)
	}
	if got := OvertimeAmount(0, 150); got != 0 {
		t.Errorf("OvertimeAmount(0, 150) = %g, want 0", got)
	}
}

func TestLeaveRecordBeforeSaveRecomputesDays(t *testing.T) {
	r := LeaveRecord{FromDate: "2025-03-10", ToDate: "2025-03-12", Days: 99}
	if err := r.BeforeSave(nil); err != nil {
		t.Fatal(err)
	}
	if r.Days != 3 {
		t.Errorf("Days = %g, want 3 (stale value must not survive a save)", r.Days)
	}
}

func TestOvertimeRecordBeforeSaveRecomputesAmount(t *testing.T) {
	r := OvertimeRecord{OtHours: 2, Rate: 100, Amount: 1}
	if err := r.BeforeSave(nil); err != nil {
		t.Fatal(err)
	}
	if r.Amount != 200 {
		t.Errorf("Amount = %g, want 200", r.Amount)
	}
}
