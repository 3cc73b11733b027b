package refund

import (
	"testing"
	"time"
)

func TestFormatInputDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "date with lowercase time",
			input: "28 Dec 25, 02:44 am",
			want:  "December 28, 2025 2:44 am",
		},
		{
			name:  "date with uppercase time",
			input: "03 Feb 26, 08:47 AM",
			want:  "February 3, 2026 8:47 am",
		},
		{
			name:  "date only",
			input: "03 Feb 26",
			want:  "February 3, 2026",
		},
		{
			name:  "unparseable echoes verbatim",
			input: "sometime next week",
			want:  "sometime next week",
		},
		{
			name:  "empty yields placeholder",
			input: "",
			want:  PlaceholderInitDate,
		},
		{
			name:  "whitespace yields placeholder",
			input: "   ",
			want:  PlaceholderInitDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatInputDate(tt.input); got != tt.want {
				t.Errorf("FormatInputDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDisplayDateReportsTimeComponent(t *testing.T) {
	if _, hasTime, ok := ParseDisplayDate("28 Dec 25, 02:44 am"); !ok || !hasTime {
		t.Errorf("ParseDisplayDate with time: hasTime=%v ok=%v, want true/true", hasTime, ok)
	}
	if _, hasTime, ok := ParseDisplayDate("28 Dec 25"); !ok || hasTime {
		t.Errorf("ParseDisplayDate date only: hasTime=%v ok=%v, want false/true", hasTime, ok)
	}
	if _, _, ok := ParseDisplayDate("garbage"); ok {
		t.Error("ParseDisplayDate accepted garbage")
	}
}

func TestPromoteStatus(t *testing.T) {
	now := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rec  Record
		want Status
	}{
		{
			name: "expired deadline promotes",
			rec:  Record{Status: StatusCompletedWithinSLA, SLA: "03 Feb 26, 08:47 AM"},
			want: StatusCompletedPostSLA,
		},
		{
			name: "future deadline keeps within",
			rec:  Record{Status: StatusCompletedWithinSLA, SLA: "03 Mar 26, 08:47 AM"},
			want: StatusCompletedWithinSLA,
		},
		{
			name: "missing deadline keeps within",
			rec:  Record{Status: StatusCompletedWithinSLA},
			want: StatusCompletedWithinSLA,
		},
		{
			name: "unparseable deadline keeps within",
			rec:  Record{Status: StatusCompletedWithinSLA, SLA: "soon"},
			want: StatusCompletedWithinSLA,
		},
		{
			name: "processing is never promoted",
			rec:  Record{Status: StatusProcessing, SLA: "03 Feb 26, 08:47 AM"},
			want: StatusProcessing,
		},
		{
			name: "post stays post",
			rec:  Record{Status: StatusCompletedPostSLA, SLA: "03 Feb 26, 08:47 AM"},
			want: StatusCompletedPostSLA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PromoteStatus(tt.rec, now); got != tt.want {
				t.Errorf("PromoteStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrimSLA(t *testing.T) {
	now := time.Date(2026, time.February, 3, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sla  string
		want string
	}{
		{
			name: "within three hours keeps time",
			sla:  "03 Feb 26, 08:47 AM",
			want: "03 Feb 26, 08:47 AM",
		},
		{
			name: "far deadline strips time",
			sla:  "05 Feb 26, 10:00 AM",
			want: "05 Feb 26",
		},
		{
			name: "past deadline strips time",
			sla:  "01 Feb 26, 10:00 AM",
			want: "01 Feb 26",
		},
		{
			name: "date only passes through",
			sla:  "05 Feb 26",
			want: "05 Feb 26",
		},
		{
			name: "unparseable passes through",
			sla:  "end of the week",
			want: "end of the week",
		},
		{
			name: "empty stays empty",
			sla:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimSLA(tt.sla, now); got != tt.want {
				t.Errorf("TrimSLA(%q) = %q, want %q", tt.sla, got, tt.want)
			}
		})
	}
}
