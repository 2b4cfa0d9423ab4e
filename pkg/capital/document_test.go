package capital

import "testing"

func TestDecodeDocument(t *testing.T) {
	t.Run("JSON object", func(t *testing.T) {
		doc := decodeDocument([]byte(`{"dealReference": "X", "n": 1}`))
		if !doc.IsJSON() {
			t.Fatal("IsJSON() = false for a JSON object")
		}
		if doc.Str("dealReference") != "X" {
			t.Errorf("Str(dealReference) = %q, want X", doc.Str("dealReference"))
		}
		if doc.Text != "" {
			t.Errorf("Text = %q, want empty", doc.Text)
		}
	})

	t.Run("non-JSON falls back to text", func(t *testing.T) {
		doc := decodeDocument([]byte("plain text"))
		if doc.IsJSON() {
			t.Error("IsJSON() = true for plain text")
		}
		if doc.Text != "plain text" {
			t.Errorf("Text = %q, want %q", doc.Text, "plain text")
		}
	})

	t.Run("JSON null falls back to text", func(t *testing.T) {
		doc := decodeDocument([]byte("null"))
		if doc.IsJSON() {
			t.Error("IsJSON() = true for null body")
		}
	})

	t.Run("Str on missing or non-string field", func(t *testing.T) {
		doc := decodeDocument([]byte(`{"n": 1}`))
		if got := doc.Str("n"); got != "" {
			t.Errorf("Str(n) = %q, want empty", got)
		}
		if got := doc.Str("missing"); got != "" {
			t.Errorf("Str(missing) = %q, want empty", got)
		}
	})

	t.Run("describe renders either variant", func(t *testing.T) {
		if got := decodeDocument([]byte(`{"a":"b"}`)).describe(); got != `{"a":"b"}` {
			t.Errorf("describe() = %q, want %q", got, `{"a":"b"}`)
		}
		if got := decodeDocument([]byte("raw")).describe(); got != "raw" {
			t.Errorf("describe() = %q, want raw", got)
		}
	})
}

func TestNumberFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, "2.5"},
		{1, "1"},
		{250.1, "250.1"},
		{0.001, "0.001"},
	}
	for _, tt := range tests {
		if got := string(number(tt.in)); got != tt.want {
			t.Errorf("number(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := optNumber(nil); got != "" {
		t.Errorf("optNumber(nil) = %q, want empty", got)
	}
	v := 3.25
	if got := optNumber(&v); string(got) != "3.25" {
		t.Errorf("optNumber(3.25) = %q, want 3.25", got)
	}
}
