package command

import (
	"bytes"
	"strings"
	"testing"
)

func TestNormalizeConfigKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "dark-mode", want: "dark_mode"},
		{in: "dark_mode", want: "dark_mode"},
		{in: "plain", want: "plain"},
	}
	for _, tt := range tests {
		if got := normalizeConfigKey(tt.in); got != tt.want {
			t.Fatalf("normalize %q: got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigSetGetList(t *testing.T) {
	t.Setenv("TRADELOOP_DATA_DIR", t.TempDir())

	run := func(args ...string) string {
		t.Helper()
		cmd := NewConfigCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("config %v: %v", args, err)
		}
		return out.String()
	}

	if got := run(); !strings.Contains(got, "No configuration set") {
		t.Fatalf("empty list: got %q", got)
	}
	if got := run("dark-mode", "true"); !strings.Contains(got, "Set dark-mode = true") {
		t.Fatalf("set output: got %q", got)
	}
	// Dashes normalize to underscores, so both spellings read back.
	if got := run("dark_mode"); !strings.Contains(got, "true") {
		t.Fatalf("get output: got %q", got)
	}
	if got := run(); !strings.Contains(got, "dark_mode: true") {
		t.Fatalf("list output: got %q", got)
	}
}

func TestConfigGetMissingKeyFails(t *testing.T) {
	t.Setenv("TRADELOOP_DATA_DIR", t.TempDir())

	cmd := NewConfigCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"nope"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("missing key did not error")
	}
	if !strings.Contains(out.String(), "not found") {
		t.Fatalf("error output: got %q", out.String())
	}
}
