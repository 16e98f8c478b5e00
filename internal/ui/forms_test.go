package ui

import "testing"

func TestCycleFieldWraps(t *testing.T) {
	fields := []field{
		newField("a", ""),
		newField("b", ""),
		newField("c", ""),
	}
	focusField(fields, 0)

	if got := cycleField(fields, 0, 1); got != 1 {
		t.Fatalf("forward: got %d want 1", got)
	}
	if got := cycleField(fields, 2, 1); got != 0 {
		t.Fatalf("wrap forward: got %d want 0", got)
	}
	if got := cycleField(fields, 0, -1); got != 2 {
		t.Fatalf("wrap backward: got %d want 2", got)
	}
	if !fields[2].input.Focused() {
		t.Fatal("cycled field not focused")
	}
	if fields[0].input.Focused() {
		t.Fatal("previous field still focused")
	}
}

func TestNextOptionCycles(t *testing.T) {
	if got := nextOption(languages, "English"); got != "Spanish" {
		t.Fatalf("got %q want Spanish", got)
	}
	if got := nextOption(languages, languages[len(languages)-1]); got != "English" {
		t.Fatalf("wrap: got %q want English", got)
	}
	if got := nextOption(languages, "Klingon"); got != "English" {
		t.Fatalf("unknown current: got %q want English", got)
	}
}
