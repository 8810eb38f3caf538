package classify

import (
	"fmt"
	"sort"

	"github.com/ppiankov/postguard/internal/extract"
)

// State is an opaque automaton state identifier
type State string

// Transition is a single (state, symbol) -> state rule
type Transition struct {
	From State
	On   extract.Symbol
	To   State
}

type transitionKey struct {
	from State
	on   extract.Symbol
}

// DFA is a deterministic finite automaton over the symbol alphabet.
// Symbols without a specific rule follow the state's else transition.
// A DFA is immutable once built and safe for concurrent use.
type DFA struct {
	start     State
	states    map[State]bool
	accepting map[State]bool
	delta     map[transitionKey]State
	otherwise map[State]State
}

// NewDFA builds an automaton. Every state named by a transition, an else
// rule, the start or the accepting set is added to the state set.
func NewDFA(start State, accepting []State, transitions []Transition, otherwise map[State]State) *DFA {
	d := &DFA{
		start:     start,
		states:    map[State]bool{start: true},
		accepting: make(map[State]bool, len(accepting)),
		delta:     make(map[transitionKey]State, len(transitions)),
		otherwise: make(map[State]State, len(otherwise)),
	}

	for _, s := range accepting {
		d.accepting[s] = true
		d.states[s] = true
	}
	for _, t := range transitions {
		d.delta[transitionKey{from: t.From, on: t.On}] = t.To
		d.states[t.From] = true
		d.states[t.To] = true
	}
	for from, to := range otherwise {
		d.otherwise[from] = to
		d.states[from] = true
		d.states[to] = true
	}

	return d
}

// Start returns the start state
func (d *DFA) Start() State {
	return d.start
}

// States returns all states, sorted
func (d *DFA) States() []State {
	states := make([]State, 0, len(d.states))
	for s := range d.states {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// Accepting reports whether s is an accepting state
func (d *DFA) Accepting(s State) bool {
	return d.accepting[s]
}

// Step returns the state reached from s on sym.
// A state with neither a specific nor an else rule stays where it is.
func (d *DFA) Step(s State, sym extract.Symbol) State {
	if next, ok := d.delta[transitionKey{from: s, on: sym}]; ok {
		return next
	}
	if next, ok := d.otherwise[s]; ok {
		return next
	}
	return s
}

// Final runs the automaton over symbols and returns the last state
func (d *DFA) Final(symbols []extract.Symbol) State {
	s := d.start
	for _, sym := range symbols {
		s = d.Step(s, sym)
	}
	return s
}

// Run reports whether the automaton accepts symbols
func (d *DFA) Run(symbols []extract.Symbol) bool {
	return d.accepting[d.Final(symbols)]
}

// Total reports whether every (state, symbol) pair has a specific or else rule
func (d *DFA) Total() bool {
	for s := range d.states {
		if _, ok := d.otherwise[s]; ok {
			continue
		}
		for _, sym := range extract.Alphabet() {
			if _, ok := d.delta[transitionKey{from: s, on: sym}]; !ok {
				return false
			}
		}
	}
	return true
}

const (
	stateStart State = "START"
	stateSeen  State = "SEEN"
)

// NewExistenceDFA builds the two-state automaton that accepts iff trigger
// occurs at least once. SEEN is absorbing.
func NewExistenceDFA(trigger extract.Symbol) *DFA {
	return NewDFA(
		stateStart,
		[]State{stateSeen},
		[]Transition{{From: stateStart, On: trigger, To: stateSeen}},
		map[State]State{
			stateStart: stateStart,
			stateSeen:  stateSeen,
		},
	)
}

// Spam thresholds: 2+ links or 3+ hashtags is spam.
// The buckets saturate at these values.
const (
	SpamLinkThreshold    = 2
	SpamHashtagThreshold = 3
)

// spamState names the (link bucket, hashtag bucket) pair, e.g. "L2+H0"
func spamState(links, hashtags int) State {
	l := fmt.Sprintf("L%d", links)
	if links >= SpamLinkThreshold {
		l += "+"
	}
	h := fmt.Sprintf("H%d", hashtags)
	if hashtags >= SpamHashtagThreshold {
		h += "+"
	}
	return State(l + h)
}

// NewSpamDFA builds the 12-state saturating-counter automaton
func NewSpamDFA() *DFA {
	var (
		transitions []Transition
		accepting   []State
	)
	otherwise := make(map[State]State)

	for l := 0; l <= SpamLinkThreshold; l++ {
		for h := 0; h <= SpamHashtagThreshold; h++ {
			from := spamState(l, h)
			if l == SpamLinkThreshold || h == SpamHashtagThreshold {
				accepting = append(accepting, from)
			}
			for _, sym := range extract.Alphabet() {
				nl, nh := l, h
				switch sym {
				case extract.Link:
					nl = min(l+1, SpamLinkThreshold)
				case extract.Hashtag:
					nh = min(h+1, SpamHashtagThreshold)
				}
				transitions = append(transitions, Transition{From: from, On: sym, To: spamState(nl, nh)})
			}
			otherwise[from] = from
		}
	}

	return NewDFA(spamState(0, 0), accepting, transitions, otherwise)
}
