// internal/align/align.go
package align

import (
	"errors"
	"fmt"

	"github.com/biogo/biogo/align"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// GapLetter pads aligned sequences.
const GapLetter = '-'

// Pair is a global alignment of two sequences. A and B have equal length.
type Pair struct {
	A string
	B string
}

// Aligner globally aligns two sequences.
type Aligner interface {
	Align(a, b string) (Pair, error)
}

// Scoring is a linear match/mismatch/gap scheme. Gap applies to both opening
// and extending a gap.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring matches on +1 and penalises mismatches and gap columns by 1.
var DefaultScoring = Scoring{Match: 1, Mismatch: -1, Gap: -1}

var ErrIllegalLetter = errors.New("illegal nucleotide letter")

// NW is a Needleman-Wunsch aligner over the IUPAC nucleotide alphabet.
type NW struct {
	alpha  alphabet.Alphabet
	matrix align.NW
}

// NewNW builds the substitution matrix for s. Index 0 of the alphabet is the
// gap letter; every other pair of distinct symbols scores as a mismatch.
func NewNW(s Scoring) *NW {
	alpha := alphabet.DNAredundant
	n := alpha.Len()
	m := make(align.NW, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			switch {
			case i == 0 && j == 0:
				m[i][j] = 0
			case i == 0 || j == 0:
				m[i][j] = s.Gap
			case i == j:
				m[i][j] = s.Match
			default:
				m[i][j] = s.Mismatch
			}
		}
	}
	return &NW{alpha: alpha, matrix: m}
}

// Align returns the gap-padded global alignment of a against b.
func (n *NW) Align(a, b string) (Pair, error) {
	ra, err := n.seq("a", a)
	if err != nil {
		return Pair{}, err
	}
	rb, err := n.seq("b", b)
	if err != nil {
		return Pair{}, err
	}
	aln, err := n.matrix.Align(ra, rb)
	if err != nil {
		return Pair{}, fmt.Errorf("align: %w", err)
	}
	f := align.Format(ra, rb, aln, GapLetter)
	pa, pb := letters(f[0]), letters(f[1])
	if len(pa) != len(pb) {
		return Pair{}, fmt.Errorf("align: unequal aligned lengths %d and %d", len(pa), len(pb))
	}
	return Pair{A: pa, B: pb}, nil
}

func (n *NW) seq(name, s string) (*linear.Seq, error) {
	l := alphabet.BytesToLetters([]byte(s))
	for i, c := range l {
		if n.alpha.IndexOf(c) <= 0 {
			return nil, fmt.Errorf("align: sequence %s: %w %q at position %d", name, ErrIllegalLetter, byte(c), i)
		}
	}
	return linear.NewSeq(name, l, n.alpha), nil
}

func letters(s alphabet.Slice) string {
	if l, ok := s.(alphabet.Letters); ok {
		return string(alphabet.LettersToBytes(l))
	}
	return fmt.Sprint(s)
}
