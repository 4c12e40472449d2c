package tui

import (
	"reflect"
	"testing"
)

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	lines := wrapText("procedure or course of action", 12)
	want := []string{"procedure or", "course of", "action"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestWrapTextSplitsLongWords(t *testing.T) {
	lines := wrapText("Conquīrendī", 4)
	want := []string{"Conq", "uīre", "ndī"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	lines := wrapText("水水水", 4)
	want := []string{"水水", "水"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestWrapTextNoWidth(t *testing.T) {
	lines := wrapText("to be sought out", 0)
	if len(lines) != 1 || lines[0] != "to be sought out" {
		t.Fatalf("expected single line, got %q", lines)
	}
	if wrapText("", 10) != nil {
		t.Fatalf("expected nil for empty text")
	}
}

func TestWrapTextFitsExactly(t *testing.T) {
	lines := wrapText("which is", 8)
	if len(lines) != 1 || lines[0] != "which is" {
		t.Fatalf("expected one line, got %q", lines)
	}
}
