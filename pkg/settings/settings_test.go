package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	want := Run{}
	if *got != want {
		t.Errorf("NewCliParams() = %+v, want %+v", got, want)
	}
}

func TestCliBinaryName(t *testing.T) {
	if CliBinaryName != "spatialnav" {
		t.Errorf("CliBinaryName = %q", CliBinaryName)
	}
}
