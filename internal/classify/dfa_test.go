package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/postguard/internal/extract"
)

func TestExistenceDFA(t *testing.T) {
	d := NewExistenceDFA(extract.Hate)

	tests := []struct {
		name    string
		symbols []extract.Symbol
		want    bool
	}{
		{"empty", nil, false},
		{"only other", []extract.Symbol{extract.Other, extract.Link}, false},
		{"trigger first", []extract.Symbol{extract.Hate, extract.Other}, true},
		{"trigger last", []extract.Symbol{extract.Other, extract.Offensive, extract.Hate}, true},
		{"wrong trigger", []extract.Symbol{extract.Offensive}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Run(tt.symbols))
		})
	}
}

func TestExistenceDFA_SeenIsAbsorbing(t *testing.T) {
	d := NewExistenceDFA(extract.Offensive)

	for _, sym := range extract.Alphabet() {
		assert.Equal(t, stateSeen, d.Step(stateSeen, sym), "SEEN must self-loop on %v", sym)
	}
	assert.Equal(t, []State{stateSeen, stateStart}, d.States())
	assert.True(t, d.Total())
}

func TestSpamDFA_Shape(t *testing.T) {
	d := NewSpamDFA()

	states := d.States()
	require.Len(t, states, 12)
	assert.Equal(t, State("L0H0"), d.Start())
	assert.True(t, d.Total(), "every (state, symbol) pair needs a transition")

	accepting := 0
	for _, s := range states {
		if d.Accepting(s) {
			accepting++
		}
	}
	assert.Equal(t, 6, accepting)
	assert.True(t, d.Accepting("L2+H0"))
	assert.True(t, d.Accepting("L1H3+"))
	assert.False(t, d.Accepting("L1H2"))
}

func TestSpamDFA_Saturates(t *testing.T) {
	d := NewSpamDFA()

	links := []extract.Symbol{extract.Link, extract.Link, extract.Link, extract.Link}
	assert.Equal(t, State("L2+H0"), d.Final(links))

	hashtags := []extract.Symbol{extract.Hashtag, extract.Hashtag, extract.Hashtag, extract.Hashtag, extract.Hashtag}
	assert.Equal(t, State("L0H3+"), d.Final(hashtags))
}

func TestSpamDFA_Thresholds(t *testing.T) {
	d := NewSpamDFA()
	L, H, O := extract.Link, extract.Hashtag, extract.Other

	tests := []struct {
		name    string
		symbols []extract.Symbol
		want    bool
	}{
		{"no links", []extract.Symbol{O, O}, false},
		{"one link", []extract.Symbol{L}, false},
		{"two links", []extract.Symbol{O, L, L, H}, true},
		{"one link two hashtags", []extract.Symbol{O, L, H, H, O}, false},
		{"three hashtags", []extract.Symbol{H, H, H, O}, true},
		{"two hashtags", []extract.Symbol{H, H}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Run(tt.symbols))
		})
	}
}

// permutations returns every ordering of symbols
func permutations(symbols []extract.Symbol) [][]extract.Symbol {
	if len(symbols) <= 1 {
		return [][]extract.Symbol{append([]extract.Symbol(nil), symbols...)}
	}
	var out [][]extract.Symbol
	for i := range symbols {
		rest := make([]extract.Symbol, 0, len(symbols)-1)
		rest = append(rest, symbols[:i]...)
		rest = append(rest, symbols[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]extract.Symbol{symbols[i]}, p...))
		}
	}
	return out
}

func TestSpamDFA_OrderIndependent(t *testing.T) {
	d := NewSpamDFA()
	L, H, O := extract.Link, extract.Hashtag, extract.Other

	compositions := [][]extract.Symbol{
		{L, L, H},
		{L, H, H, O},
		{H, H, H, O},
		{L, O, O, H},
		{L, L, H, H, H},
	}

	for _, c := range compositions {
		want := d.Run(c)
		for _, p := range permutations(c) {
			assert.Equal(t, want, d.Run(p), "permutation %v of %v", p, c)
		}
	}
}

func TestDFA_MissingRuleStaysInPlace(t *testing.T) {
	d := NewDFA("A", []State{"B"}, []Transition{{From: "A", On: extract.Link, To: "B"}}, nil)

	assert.Equal(t, State("A"), d.Step("A", extract.Other))
	assert.False(t, d.Total())
	assert.True(t, d.Run([]extract.Symbol{extract.Other, extract.Link}))
}
