package parse

import (
	"errors"
	"go/constant"
	"go/token"
	"go/types"

	"github.com/ianbrault/case-iterable/internal/codefmt"
	"github.com/ianbrault/case-iterable/internal/typeinfo"
	"github.com/ianbrault/case-iterable/pkg/caseitererrors"
)

// Enum is a validated enum type: a named type with a basic underlying type
// and at least one constant of that type, all carrying distinct values.
type Enum struct {
	Obj *types.TypeName

	// Cases holds the constants of the type in declaration order.
	Cases []*types.Const
}

func (e Enum) Name() string { return e.Obj.Name() }

// CaseNames returns the case names in declaration order.
func (e Enum) CaseNames() []string {
	names := make([]string, len(e.Cases))
	for i, c := range e.Cases {
		names[i] = c.Name()
	}
	return names
}

// Enum looks up name in the package scope and validates it as an enum. The
// error wraps a [caseitererrors.Error] positioned at the offending
// declaration.
func (p *Parser) Enum(name string) (Enum, error) {
	obj := p.pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return Enum{}, p.notEnum(nil, name, "not declared in "+p.pkg.PkgPath)
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return Enum{}, p.notEnum(obj, name, codefmt.Sprintf(p, "%o is not a type", obj))
	}
	if tn.IsAlias() {
		return Enum{}, p.notEnum(obj, name, codefmt.Sprintf(p, "declared as an alias of %t", types.Unalias(tn.Type())))
	}

	info := typeinfo.TypeOf(tn.Type())
	if info.IsGeneric() {
		return Enum{}, p.notEnum(obj, name, "generic types cannot be enumerated")
	}
	if !info.IsNamed() || !info.IsBasic() {
		return Enum{}, p.notEnum(obj, name, codefmt.Sprintf(p, "underlying type %t is not basic", info.Underlying()))
	}

	bucket, ok := p.consts.Get(info)
	if !ok || len(bucket.consts) == 0 {
		err := &caseitererrors.Error{Kind: caseitererrors.KindNoCases, Type: name}
		return Enum{}, codefmt.Wrap(p, info, err)
	}

	if err := p.checkDistinct(name, bucket.consts); err != nil {
		return Enum{}, err
	}

	return Enum{Obj: tn, Cases: bucket.consts}, nil
}

func (p *Parser) notEnum(poser codefmt.Poser, name, reason string) error {
	err := &caseitererrors.Error{Kind: caseitererrors.KindNotEnum, Type: name, Reason: reason}
	return codefmt.Wrap(p, poser, err)
}

// checkDistinct rejects constants that duplicate the value of an earlier
// case. A duplicate would give the successor switch two identical arms, so,
// like a non-unit variant, it cannot take part in the iteration order. Every
// duplicate is reported, each positioned at the later constant.
func (p *Parser) checkDistinct(enumName string, consts []*types.Const) error {
	var errs []error
	for i, c := range consts {
		for _, prev := range consts[:i] {
			if !constant.Compare(c.Val(), token.EQL, prev.Val()) {
				continue
			}
			err := &caseitererrors.Error{
				Kind: caseitererrors.KindDuplicateCase,
				Type: enumName,
				Case: c.Name(),
				Prev: prev.Name(),
			}
			errs = append(errs, codefmt.Wrap(p, c, err))
			break
		}
	}
	return errors.Join(errs...)
}
