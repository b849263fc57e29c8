// Package factor provides the variable, factor, and graph types used by the
// block partitioner and the Gibbs sweep engine.
//
// This file declares Variable, the Kind variant, and sentinel errors.
package factor

import "errors"

// Sentinel errors for factor-graph construction.
var (
	// ErrNilVariable indicates a nil *Variable was registered.
	ErrNilVariable = errors.New("factor: variable is nil")

	// ErrEmptyVariableID indicates a variable with an empty ID.
	ErrEmptyVariableID = errors.New("factor: variable ID is empty")

	// ErrDuplicateVariable indicates the same ID was registered twice.
	ErrDuplicateVariable = errors.New("factor: duplicate variable ID")

	// ErrVariableNotFound indicates an operation referenced an unknown variable.
	ErrVariableNotFound = errors.New("factor: variable not found")

	// ErrBadDomain indicates a non-positive domain size or an irregular
	// index outside the domain.
	ErrBadDomain = errors.New("factor: bad variable domain")

	// ErrNilFactor indicates a nil *Factor was registered.
	ErrNilFactor = errors.New("factor: factor is nil")

	// ErrTableSize indicates a factor table whose length does not equal the
	// product of its variables' domain sizes.
	ErrTableSize = errors.New("factor: table length does not match domains")
)

// NoIrregular is the Irregular value of a variable whose domain contains no
// unresolved marker.
const NoIrregular = -1

// Variable identifies one random quantity with a finite, ordered domain of
// value indices 0..Size-1.
//
// Irregular, when not NoIrregular, names the domain index that stands for
// "not yet resolved to a concrete value". Kind describes how the variable's
// value arises and determines its deterministic parents.
//
// Variables are built once by the factor-graph builder and are immutable
// thereafter.
type Variable struct {
	// ID uniquely identifies this variable within its Graph.
	ID string

	// Size is the domain cardinality; value indices range over [0, Size).
	Size int

	// Irregular is the domain index of the unresolved marker, or NoIrregular.
	Irregular int

	// Kind describes the variable's dependency shape. A nil Kind is treated
	// as Stochastic: the safe parentless fallback for unrecognized
	// constructs.
	Kind Kind
}

// Regular reports whether value index v is a concrete (non-irregular) value
// inside the variable's domain.
func (v *Variable) Regular(val int) bool {
	return val >= 0 && val < v.Size && val != v.Irregular
}

// Parents returns the IDs of the variables that functionally determine this
// one, per its Kind. Stochastic variables (and variables with a nil Kind)
// have no parents.
func (v *Variable) Parents() []string {
	if v.Kind == nil {
		return nil
	}

	return v.Kind.Parents()
}

// Kind is the closed variant of variable dependency shapes. Implementations
// live in this package only; each case carries exactly the data needed to
// compute the variable's deterministic-parent set.
type Kind interface {
	// Parents returns the IDs of the deterministic parents for this kind.
	Parents() []string

	// isKind seals the variant against outside implementations.
	isKind()
}

// Stochastic marks a variable carrying its own randomness; it has no
// deterministic parents and seeds its own sampling block.
type Stochastic struct{}

// Parents returns nil: stochastic variables are determined by no one.
func (Stochastic) Parents() []string { return nil }

func (Stochastic) isKind() {}

// Apply marks a variable holding the result of a pure function application;
// its value is fully determined by the argument variables.
type Apply struct {
	// Args are the IDs of the argument variables, in application order.
	Args []string
}

// Parents returns the argument variable IDs.
func (a Apply) Parents() []string { return a.Args }

func (Apply) isKind() {}

// Branch marks a variable holding the result of a conditional branch: the
// selector picks which outcome variable's value flows through.
type Branch struct {
	// Selector is the ID of the variable choosing the branch.
	Selector string

	// Outcomes are the IDs of the per-branch result variables.
	Outcomes []string
}

// Parents returns the selector followed by every outcome variable ID.
func (b Branch) Parents() []string {
	ps := make([]string, 0, len(b.Outcomes)+1)
	ps = append(ps, b.Selector)
	ps = append(ps, b.Outcomes...)

	return ps
}

func (Branch) isKind() {}

// BranchHelper marks an internal helper variable introduced while expanding a
// branch; it mirrors the branch's result variable.
type BranchHelper struct {
	// Result is the ID of the branch-result variable this helper mirrors.
	Result string
}

// Parents returns the single result variable ID.
func (h BranchHelper) Parents() []string { return []string{h.Result} }

func (BranchHelper) isKind() {}
