package fontface

import (
	"sort"
	"strconv"
	"strings"

	"github.com/derekparker/trie"
)

// Ligature collapses a sequence of codepoints into a single codepoint.
type Ligature struct {
	Target rune
	Seq    []rune
}

// Ligatures is a ligature table. Rules are kept sorted longest-first; a trie
// over the constituent sequences answers prefix queries.
type Ligatures struct {
	rules  []Ligature
	prefix *trie.Trie
}

// NewLigatures creates a ligature table from rules. Rules with an empty
// sequence are dropped.
func NewLigatures(rules []Ligature) *Ligatures {
	ls := &Ligatures{prefix: trie.New()}
	for _, l := range rules {
		if len(l.Seq) == 0 {
			continue
		}
		ls.rules = append(ls.rules, l)
		ls.prefix.Add(string(l.Seq), l.Target)
	}
	sort.SliceStable(ls.rules, func(i, j int) bool {
		return len(ls.rules[i].Seq) > len(ls.rules[j].Seq)
	})
	return ls
}

// ParseLigatures reads lines of the form `target=c1 c2 c3`, all codepoints
// decimal. Malformed lines are skipped.
func ParseLigatures(data string) *Ligatures {
	var rules []Ligature
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		target, seq, ok := strings.Cut(line, "=")
		if !ok {
			tracer().Errorf("failed parse ligature: %q", line)
			continue
		}
		t, err := strconv.Atoi(strings.TrimSpace(target))
		if err != nil {
			tracer().Errorf("failed parse ligature target: %q", line)
			continue
		}
		l := Ligature{Target: rune(t)}
		for _, f := range strings.Fields(seq) {
			c, err := strconv.Atoi(f)
			if err != nil {
				tracer().Errorf("failed parse ligature codepoint %q in %q", f, line)
				l.Seq = nil
				break
			}
			l.Seq = append(l.Seq, rune(c))
		}
		if len(l.Seq) > 0 {
			rules = append(rules, l)
		}
	}
	return NewLigatures(rules)
}

// Len returns the number of rules.
func (ls *Ligatures) Len() int {
	if ls == nil {
		return 0
	}
	return len(ls.rules)
}

// Rules returns the rules, longest first.
func (ls *Ligatures) Rules() []Ligature {
	if ls == nil {
		return nil
	}
	return ls.rules
}

// Lookup returns the target of the rule with exactly the sequence seq.
func (ls *Ligatures) Lookup(seq []rune) (rune, bool) {
	if ls.Len() == 0 {
		return 0, false
	}
	if n, ok := ls.prefix.Find(string(seq)); ok {
		return n.Meta().(rune), true
	}
	return 0, false
}

// String formats the table in the format read by ParseLigatures.
func (ls *Ligatures) String() string {
	var b strings.Builder
	for _, l := range ls.Rules() {
		b.WriteString(strconv.Itoa(int(l.Target)))
		b.WriteByte('=')
		for i, c := range l.Seq {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Apply rewrites text in place. Every occurrence of a rule's sequence is
// replaced by the rule's target followed by 0 placeholders for the other
// consumed slots. Longer rules are applied first. A replacement may complete
// another occurrence of the same rule further left, which is replaced as well.
func (ls *Ligatures) Apply(text []rune) {
	if ls.Len() == 0 || !ls.mayMatch(text) {
		return
	}
	for _, l := range ls.rules {
		n := len(l.Seq)
		if n > len(text) || l.reproducesSeq() {
			continue
		}
		for i := 0; i+n <= len(text); i++ {
			if !hasSeqAt(text, i, l.Seq) {
				continue
			}
			text[i] = l.Target
			for k := 1; k < n; k++ {
				text[i+k] = 0
			}
			// text before i is unchanged; only matches overlapping slot i are new
			i -= n
			if i < -1 {
				i = -1
			}
		}
	}
}

// reproducesSeq is true if replacing the sequence yields the sequence again.
func (l Ligature) reproducesSeq() bool {
	if l.Seq[0] != l.Target {
		return false
	}
	for _, c := range l.Seq[1:] {
		if c != 0 {
			return false
		}
	}
	return true
}

// mayMatch is true if any position of text starts a rule's sequence.
func (ls *Ligatures) mayMatch(text []rune) bool {
	for _, c := range text {
		if c != 0 && ls.prefix.HasKeysWithPrefix(string(c)) {
			return true
		}
	}
	return false
}

func hasSeqAt(text []rune, at int, seq []rune) bool {
	for k, c := range seq {
		if text[at+k] != c {
			return false
		}
	}
	return true
}
