package strips

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for problem construction and state encoding.
var (
	// ErrProblemNil is returned when a nil *Problem is supplied.
	ErrProblemNil = errors.New("strips: problem is nil")

	// ErrNoFluents is returned when a problem declares no fluents.
	ErrNoFluents = errors.New("strips: problem has no fluents")

	// ErrEmptyFluent is returned for an empty fluent name.
	ErrEmptyFluent = errors.New("strips: fluent name is empty")

	// ErrDuplicateFluent is returned when a fluent is declared more than once.
	ErrDuplicateFluent = errors.New("strips: duplicate fluent")

	// ErrUnknownFluent is returned when a literal names an undeclared fluent.
	ErrUnknownFluent = errors.New("strips: unknown fluent")

	// ErrEmptyActionName is returned for an action without a name.
	ErrEmptyActionName = errors.New("strips: action name is empty")

	// ErrDuplicateAction is returned when two actions share a name.
	ErrDuplicateAction = errors.New("strips: duplicate action")

	// ErrStateLength is returned when a state vector does not match the fluent list.
	ErrStateLength = errors.New("strips: state length does not match fluents")

	// ErrBadLiteral is returned when a literal string cannot be parsed.
	ErrBadLiteral = errors.New("strips: malformed literal")
)

// negationPrefix marks a negative literal in String and ParseLiteral.
const negationPrefix = "~"

// persistencePrefix names the synthetic no-op actions.
const persistencePrefix = "NoOp::"

// Literal is a fluent with a polarity. Literals are comparable values and may
// be used as map keys.
type Literal struct {
	// Fluent names the proposition.
	Fluent string

	// Negated is true for the negative literal ~Fluent.
	Negated bool
}

// Pos returns the positive literal of fluent.
func Pos(fluent string) Literal { return Literal{Fluent: fluent} }

// Neg returns the negative literal of fluent.
func Neg(fluent string) Literal { return Literal{Fluent: fluent, Negated: true} }

// Negate returns the literal with the same fluent and opposite polarity.
func (l Literal) Negate() Literal {
	return Literal{Fluent: l.Fluent, Negated: !l.Negated}
}

// IsNegationOf reports whether l and other name the same fluent with opposite polarity.
func (l Literal) IsNegationOf(other Literal) bool {
	return l.Fluent == other.Fluent && l.Negated != other.Negated
}

// String renders the literal, prefixing negative literals with "~".
func (l Literal) String() string {
	if l.Negated {
		return negationPrefix + l.Fluent
	}

	return l.Fluent
}

// ParseLiteral parses "Fluent", "~Fluent" or "!Fluent".
// Surrounding whitespace is ignored. Returns ErrBadLiteral for an empty fluent.
func ParseLiteral(raw string) (Literal, error) {
	s := strings.TrimSpace(raw)
	var lit Literal
	if strings.HasPrefix(s, negationPrefix) || strings.HasPrefix(s, "!") {
		lit.Negated = true
		s = strings.TrimSpace(s[1:])
	}
	if s == "" {
		return Literal{}, fmt.Errorf("%w: %q", ErrBadLiteral, raw)
	}
	lit.Fluent = s

	return lit, nil
}

// Action is a STRIPS action: it is applicable when every precondition holds
// and makes every effect hold afterwards.
type Action struct {
	// Name identifies the action; it must be unique within a problem.
	Name string

	// Preconditions must all hold for the action to be applicable.
	Preconditions []Literal

	// Effects hold after the action is applied.
	Effects []Literal

	// Persistence marks synthetic no-op actions produced by Persistence.
	Persistence bool
}

// String returns the action name.
func (a Action) String() string { return a.Name }

// Persistence returns the two no-op actions of fluent: keep carries the
// positive literal to the next level, keepNot carries the negative one.
// Each has precondition = effect = its literal.
func Persistence(fluent string) (keep, keepNot Action) {
	pos, neg := Pos(fluent), Neg(fluent)
	keep = Action{
		Name:          persistencePrefix + pos.String(),
		Preconditions: []Literal{pos},
		Effects:       []Literal{pos},
		Persistence:   true,
	}
	keepNot = Action{
		Name:          persistencePrefix + neg.String(),
		Preconditions: []Literal{neg},
		Effects:       []Literal{neg},
		Persistence:   true,
	}

	return keep, keepNot
}

// PersistenceActions returns the no-op actions of every fluent, two per
// fluent, in fluent order (positive before negative).
func PersistenceActions(fluents []string) []Action {
	out := make([]Action, 0, 2*len(fluents))
	for _, f := range fluents {
		keep, keepNot := Persistence(f)
		out = append(out, keep, keepNot)
	}

	return out
}
