package webpath

import (
	"testing"

	"github.com/goserg/bizness/internal/navigation"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		intent navigation.Intent
		want   string
	}{
		{intent: navigation.Admin, want: "/admin"},
		{intent: navigation.Dashboard, want: "/dashboard"},
		{intent: navigation.Auth, want: "/auth"},
		{intent: navigation.Landing, want: "/"},
		{intent: "", want: "/"},
	}
	for _, tt := range tests {
		if got := Route(tt.intent); got != tt.want {
			t.Errorf("Route(%q) = %q, want %q", tt.intent, got, tt.want)
		}
	}
}
