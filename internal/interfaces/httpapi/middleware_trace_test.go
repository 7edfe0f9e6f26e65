package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: "/health", want: false},
		{path: "/livez", want: false},
		{path: "/readyz", want: false},
		{path: " /healthz ", want: false},
		{path: "/HealthZ", want: false},
		{path: "/golfbags", want: true},
		{path: "/golfbags/1/edit", want: true},
		{path: "/golfbags/delete/1", want: true},
		{path: "/golfbags/1/clubs", want: true},
		{path: "/api/v1/golfbags", want: true},
		{path: "/", want: true},
		{path: "/docs", want: true},
		{path: "/openapi.yaml", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := shouldTraceRequest(tt.path); got != tt.want {
				t.Fatalf("shouldTraceRequest(%q)=%v want=%v", tt.path, got, tt.want)
			}
		})
	}
}
