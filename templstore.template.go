package templstore

import (
	"errors"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-templstore/internal"
)

// Template is the contract for a tagged value that knows which template
// string renders it: a stable namespace/name pair, the variant key within
// the namespace, and an apply operation substituting the value's own fields
// into a resolved template string.
//
// Languages with compile-time codegen derive this from an enum declaration.
// Here the mapping is declared explicitly with a VariantTable:
//
//	var responses = templstore.NewVariantTable("response", "my_response")
//
//	func helloResponse(name string) templstore.Template {
//	    return responses.Bind("hello", map[string]string{"name": name})
//	}
//
//	hello := helloResponse("world")
//	out, err := hello.Apply("hello ${name}!")
//	// out: "hello world!"
type Template interface {
	// Namespace returns the namespace holding this type's templates.
	Namespace() string

	// Name returns the stable snake_case name of the template type.
	Name() string

	// Variant returns the snake_case key of this value within the
	// namespace.
	Variant() string

	// Apply substitutes this value's arguments into the template string.
	Apply(tmpl string) (string, error)
}

// ApplyFunc is the substitution capability consumed by the Template
// contract: named string arguments applied to a template string, producing
// the substituted result or failing when a required placeholder has no
// argument.
type ApplyFunc func(tmpl string, args map[string]string) (string, error)

// Apply is the default ApplyFunc: ${name} markers substituted from args,
// $$ escaping a literal dollar.
func Apply(tmpl string, args map[string]string) (string, error) {
	out, err := internal.Substitute(tmpl, func(name string) (string, bool) {
		value, ok := args[name]
		return value, ok
	})
	if err != nil {
		var unresolved *internal.UnresolvedError
		if errors.As(err, &unresolved) {
			return "", NewUnresolvedVariableError(unresolved.Variable)
		}
		return "", cuserr.WrapStdError(err, ErrCodeApply, ErrMsgApplyFailed)
	}
	return out, nil
}

// TemplateVariables returns the distinct placeholder names in a template
// string, in order of first appearance. Useful for validating template
// files against the arguments a caller intends to supply.
func TemplateVariables(tmpl string) []string {
	return internal.Variables(tmpl)
}

// VariantName converts a Go identifier to the snake_case form used for
// variant and name keys.
func VariantName(identifier string) string {
	return internal.SnakeCase(identifier)
}

// VariantTable is the manual mapping table standing in for derived template
// metadata: one table per template-bearing type, declaring its namespace
// and stable name once, with per-value bindings created via Bind.
type VariantTable struct {
	namespace string
	name      string
	apply     ApplyFunc
}

// NewVariantTable declares the namespace and stable name for one
// template-bearing type. The default ${name} substitution is used unless
// overridden with WithApplyFunc.
func NewVariantTable(namespace, name string) *VariantTable {
	return &VariantTable{
		namespace: namespace,
		name:      name,
		apply:     Apply,
	}
}

// WithApplyFunc replaces the substitution capability for templates bound
// through this table.
func (vt *VariantTable) WithApplyFunc(apply ApplyFunc) *VariantTable {
	vt.apply = apply
	return vt
}

// Namespace returns the declared namespace.
func (vt *VariantTable) Namespace() string {
	return vt.namespace
}

// Name returns the declared stable name.
func (vt *VariantTable) Name() string {
	return vt.name
}

// Bind creates a Template for one variant of the table's type with the
// given named arguments. Variant-less values pass nil args.
func (vt *VariantTable) Bind(variant string, args map[string]string) Template {
	return &boundTemplate{
		table:   vt,
		variant: variant,
		args:    args,
	}
}

type boundTemplate struct {
	table   *VariantTable
	variant string
	args    map[string]string
}

func (b *boundTemplate) Namespace() string {
	return b.table.namespace
}

func (b *boundTemplate) Name() string {
	return b.table.name
}

func (b *boundTemplate) Variant() string {
	return b.variant
}

func (b *boundTemplate) Apply(tmpl string) (string, error) {
	return b.table.apply(tmpl, b.args)
}
