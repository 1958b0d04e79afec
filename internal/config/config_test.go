package config

import "testing"

func TestParseBool(t *testing.T) {
	if ParseBool("UNSET_FLAG_FOR_TEST", true) != true {
		t.Fatal("expected default when unset")
	}
	t.Setenv("FLAG_FOR_TEST", "1")
	if !ParseBool("FLAG_FOR_TEST", false) {
		t.Fatal("expected true for 1")
	}
	t.Setenv("FLAG_FOR_TEST", "false")
	if ParseBool("FLAG_FOR_TEST", true) {
		t.Fatal("expected false")
	}
	t.Setenv("FLAG_FOR_TEST", "not-a-bool")
	if ParseBool("FLAG_FOR_TEST", true) != true {
		t.Fatal("expected default on invalid input")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, b ,,c ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected split: %v", got)
	}
	if splitList("  ") != nil {
		t.Fatal("expected nil for blank input")
	}
}
