package extract

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"Hello   World", "hello world"},
		{"\tIDIOT!\n stop  that ", "idiot! stop that"},
		{"ΟΔΟΣ", "οδος"},
		{"line1\r\nline2", "line1 line2"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCore(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"idiot!", "idiot"},
		{"(stupid)", "stupid"},
		{"...", ""},
		{"Slur1?!", "slur1"},
		{"snake_case", "snake_case"},
		{"don't", "don't"},
	}

	for _, tt := range tests {
		if got := Core(tt.token); got != tt.want {
			t.Errorf("Core(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestCategorizer_Categorize(t *testing.T) {
	c := NewCategorizer(NewKeywords([]string{"slur1", "slur2"}, []string{"stupid", "idiot"}))

	tests := []struct {
		token string
		want  Symbol
	}{
		{"http://a.com", Link},
		{"HTTPS://A.COM", Link},
		{"www.example.org", Link},
		{"httpd", Link},
		{"#wow", Hashtag},
		{"slur1", Hate},
		{"SLUR2!", Hate},
		{"idiot", Offensive},
		{"(stupid)", Offensive},
		{"stupidity", Other},
		{"hello", Other},
		{"", Other},
		{"@alice", Other},
	}

	for _, tt := range tests {
		if got := c.Categorize(tt.token); got != tt.want {
			t.Errorf("Categorize(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestCategorizer_HateWinsOverOffensive(t *testing.T) {
	c := NewCategorizer(NewKeywords([]string{"both"}, []string{"both"}))

	if got := c.Categorize("both"); got != Hate {
		t.Errorf("expected HATE precedence, got %v", got)
	}
}

func TestCategorizer_NilKeywords(t *testing.T) {
	c := NewCategorizer(nil)

	if got := c.Categorize("idiot"); got != Other {
		t.Errorf("expected OTHER without keywords, got %v", got)
	}
}

func TestNewKeywords_FoldsEntries(t *testing.T) {
	kw := NewKeywords([]string{"  Slur1! ", ""}, []string{"IDIOT"})

	if !kw.IsHate("slur1") {
		t.Error("expected folded hate keyword to match")
	}
	if !kw.IsOffensive("idiot") {
		t.Error("expected folded offensive keyword to match")
	}
	if kw.IsHate("") {
		t.Error("blank keyword must not be stored")
	}
}

func TestCategorizeAll_PreservesOrder(t *testing.T) {
	c := NewCategorizer(NewKeywords(nil, []string{"idiot"}))

	got := c.CategorizeAll([]string{"#a", "idiot", "http://x", "ok"})
	want := []Symbol{Hashtag, Offensive, Link, Other}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategorizeAll = %v, want %v", got, want)
	}
}

func TestSymbol_JSON(t *testing.T) {
	data, err := json.Marshal([]Symbol{Hate, Other})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["HATE","OTHER"]` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var back []Symbol
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[0] != Hate || back[1] != Other {
		t.Errorf("unexpected symbols: %v", back)
	}

	var bad Symbol
	if err := json.Unmarshal([]byte(`"SPAM"`), &bad); err == nil {
		t.Error("expected error for unknown symbol")
	}
}

func TestSymbol_StringOutOfRange(t *testing.T) {
	if got := Symbol(42).String(); got != "Symbol(42)" {
		t.Errorf("unexpected string: %q", got)
	}
}
