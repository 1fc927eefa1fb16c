package settings

import (
	"context"
	"testing"
)

func TestIntoContext(t *testing.T) {
	tests := []struct {
		name     string
		settings *Run
	}{
		{
			name:     "empty_settings",
			settings: &Run{},
		},
		{
			name: "settings_with_values",
			settings: &Run{
				NoColor:  true,
				Snapshot: true,
				LogFile:  "/tmp/nav.log",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := IntoContext(context.Background(), tt.settings)
			got, ok := FromContext(ctx)
			if !ok {
				t.Fatal("FromContext() found no settings")
			}
			if got != tt.settings {
				t.Errorf("FromContext() = %p, want %p", got, tt.settings)
			}
		})
	}
}

func TestFromContextMissing(t *testing.T) {
	if s, ok := FromContext(context.Background()); ok || s != nil {
		t.Errorf("FromContext() = %v, %v; want nil, false", s, ok)
	}
}
