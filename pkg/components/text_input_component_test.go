package components

import "testing"

func TestTextInputDisplayText(t *testing.T) {
	c := &TextInputComponent{Text: "abc"}
	if c.DisplayText() != "abc" {
		t.Errorf("DisplayText() = %q", c.DisplayText())
	}
	c.Masked = true
	if c.DisplayText() != "•••" {
		t.Errorf("masked DisplayText() = %q", c.DisplayText())
	}
}

func TestTextInputClear(t *testing.T) {
	c := &TextInputComponent{Text: "abc", CursorPosition: 3}
	c.Clear()
	if c.Text != "" || c.CursorPosition != 0 {
		t.Errorf("after Clear: %+v", c)
	}
}

func TestTextInputEditing(t *testing.T) {
	c := &TextInputComponent{MaxLength: 6}

	c.Insert("moon\n")
	if c.Text != "moon" || c.CursorPosition != 4 {
		t.Fatalf("after Insert: text=%q cursor=%d", c.Text, c.CursorPosition)
	}

	c.MoveCursor(-2)
	c.Insert("X")
	if c.Text != "moXon" || c.CursorPosition != 3 {
		t.Fatalf("insert at cursor: text=%q cursor=%d", c.Text, c.CursorPosition)
	}

	if c.Insert("abc") {
		t.Error("Insert beyond MaxLength should be rejected")
	}

	c.Backspace()
	if c.Text != "moon" || c.CursorPosition != 2 {
		t.Fatalf("after Backspace: text=%q cursor=%d", c.Text, c.CursorPosition)
	}

	c.DeleteForward()
	if c.Text != "mon" {
		t.Fatalf("after DeleteForward: text=%q", c.Text)
	}

	c.MoveCursor(-10)
	c.Backspace()
	if c.Text != "mon" || c.CursorPosition != 0 {
		t.Errorf("Backspace at start changed state: text=%q cursor=%d", c.Text, c.CursorPosition)
	}
	c.MoveCursor(10)
	if c.CursorPosition != 3 {
		t.Errorf("cursor = %d, want clamped to 3", c.CursorPosition)
	}
}
