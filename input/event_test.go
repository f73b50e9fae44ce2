package input

import "testing"

func TestDescribe(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{EventAction{Code: 1}, "jump"},
		{ContinuousAction{Code: 1, ActiveStart: 2, ActiveDuration: 0.5}, "jump held 0.50s"},
		{AxisAction{Code: 1, Components: 2, Value: Vec3{X: 1, Y: -0.5}, Delta: Vec3{X: 0.25}}, "jump (+1.00, -0.50) d(+0.25, +0.00)"},
		{AxisAction{Code: 1, Components: 1, Value: Vec3{X: 3}}, "jump (+3.00) d(+0.00)"},
	}
	for _, tt := range tests {
		if got := Describe(tt.ev, "jump"); got != tt.want {
			t.Errorf("Describe(%#v) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}
