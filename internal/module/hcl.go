package module

import (
	"cmp"
	"context"
	"fmt"
	"math/big"
	"os"
	"slices"
	"strings"

	"github.com/atlanticdynamic/actorspec/internal/document"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// loadHCL reads the top-level attributes of an HCL file as one object, in source order.
// Expressions may reference environment variables as env.NAME.
func loadHCL(_ context.Context, path string) (any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read HCL attributes: %s", diags.Error())
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	slices.SortFunc(sorted, func(a, b *hcl.Attribute) int {
		return cmp.Compare(a.Range.Start.Byte, b.Range.Start.Byte)
	})

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject()},
	}

	out := document.NewObject()
	for _, attr := range sorted {
		native, err := exprToNative(attr.Expr, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", attr.Name, err)
		}
		out.Set(attr.Name, native)
	}
	return out, nil
}

// exprToNative evaluates expr. Object and tuple constructors are walked item by item so object
// keys keep the order they are written in; anything else is evaluated whole.
func exprToNative(expr hcl.Expression, ctx *hcl.EvalContext) (any, error) {
	switch e := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		obj := document.NewObject()
		for _, item := range e.Items {
			key, diags := item.KeyExpr.Value(ctx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to evaluate object key: %s", diags.Error())
			}
			key, err := convert.Convert(key, cty.String)
			if err != nil || key.IsNull() || !key.IsKnown() {
				return nil, fmt.Errorf("object key must be a string")
			}
			native, err := exprToNative(item.ValueExpr, ctx)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", key.AsString(), err)
			}
			obj.Set(key.AsString(), native)
		}
		return obj, nil

	case *hclsyntax.TupleConsExpr:
		out := make([]any, 0, len(e.Exprs))
		for _, elem := range e.Exprs {
			native, err := exprToNative(elem, ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil
	}

	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate: %s", diags.Error())
	}
	return ctyToNative(val)
}

func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}

// ctyToNative recursively converts a cty.Value to its most natural Go counterpart. Whole numbers
// become int64 so they serialize without a fractional part.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0)
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			slice = append(slice, native)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		obj := document.NewObject()
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			keyStr := key.AsString()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}
			obj.Set(keyStr, native)
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}
