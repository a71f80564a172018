package main

import (
	"go/types"
)

// packagedFunc identifies a function or a method by its package path.
type packagedFunc struct {
	pkgPath  string
	typeName string // empty for free functions
	name     string
}

// String renders the function the way skip_callees config entries refer to it:
// "pkgpath.Func" or "pkgpath.Type.Method".
func (f packagedFunc) String() string {
	if f.typeName == "" {
		return f.pkgPath + "." + f.name
	}

	return f.pkgPath + "." + f.typeName + "." + f.name
}

// packagedFuncOf describes the callee object. The second value is false when
// the object cannot be referred to by name, i.e. closures and func values.
func packagedFuncOf(obj types.Object) (packagedFunc, bool) {
	switch fn := obj.(type) {
	case *types.Builtin:
		return packagedFunc{pkgPath: "builtin", name: fn.Name()}, true

	case *types.Func:
		pkg := fn.Pkg()
		if pkg == nil {
			// Methods of universe types like error.Error.
			return packagedFunc{}, false
		}

		res := packagedFunc{
			pkgPath: pkg.Path(),
			name:    fn.Name(),
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok || sig.Recv() == nil {
			return res, true
		}

		res.typeName = receiverTypeName(sig.Recv().Type())
		return res, true

	default:
		return packagedFunc{}, false
	}
}

func receiverTypeName(t types.Type) string {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}

	switch v := types.Unalias(t).(type) {
	case *types.Named:
		return v.Obj().Name()
	default:
		return ""
	}
}
