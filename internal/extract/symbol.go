package extract

import (
	"encoding/json"
	"fmt"
)

// Symbol is the category a token is mapped to before automaton processing
type Symbol int

const (
	Other     Symbol = iota // Anything that is not a link, hashtag or keyword
	Hate                    // Token core is in the hate keyword set
	Offensive               // Token core is in the offensive keyword set
	Link                    // Token starts with http or www.
	Hashtag                 // Token starts with #
)

var symbolNames = [...]string{
	Other:     "OTHER",
	Hate:      "HATE",
	Offensive: "OFFENSIVE",
	Link:      "LINK",
	Hashtag:   "HASHTAG",
}

var symbolFromName = map[string]Symbol{
	"OTHER":     Other,
	"HATE":      Hate,
	"OFFENSIVE": Offensive,
	"LINK":      Link,
	"HASHTAG":   Hashtag,
}

// Alphabet returns every symbol, in declaration order
func Alphabet() []Symbol {
	return []Symbol{Other, Hate, Offensive, Link, Hashtag}
}

// String returns the symbol name (e.g. "HATE")
func (s Symbol) String() string {
	if int(s) >= 0 && int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// MarshalJSON encodes the symbol as its name
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a symbol name
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	sym, ok := symbolFromName[name]
	if !ok {
		return fmt.Errorf("extract: unknown symbol: %q", name)
	}
	*s = sym
	return nil
}
