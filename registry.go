package boolexpr

import "github.com/vhaisman/boolexpr/internal/registry"

// RegisterOperator, RegisterAlias and RegisterConstantAlias add or replace
// entries in e's operator registry, which the Expressions derived from e
// (WithVariableOrder, Normalize, Minimize, ToDNF, ToCNF) share. No parse
// reads that registry: Parse and TryParse always start from
// registry.NewDefault, so these calls do not change how source text is
// parsed.
func (e *Expression) RegisterOperator(def registry.Def, unary registry.UnaryFactory, binary registry.BinaryFactory) {
	e.reg.RegisterOperator(def, unary, binary)
}

func (e *Expression) RegisterAlias(alias, canonical string) {
	e.reg.RegisterAlias(alias, canonical)
}

func (e *Expression) RegisterConstantAlias(alias string, value bool) {
	e.reg.RegisterConstantAlias(alias, value)
}
