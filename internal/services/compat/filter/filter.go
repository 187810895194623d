// Package filter provides AIP-160 filter expression parsing for change
// listings. Expressions are compiled to in-memory predicates evaluated
// against registry snapshots.
package filter

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/sdkgate/sdkgate/internal/services/compat/registry"
)

// Predicate reports whether a change matches a parsed filter.
type Predicate func(registry.Change) bool

// ChangeDeclarations returns the field declarations for change filtering.
func ChangeDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("id", filtering.TypeInt),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("disabled", filtering.TypeBool),
		filtering.DeclareIdent("enable_after_target_sdk", filtering.TypeInt),
	)
}

// ParseListFilter parses an AIP-160 filter expression into a predicate.
// Returns a nil predicate for an empty filter string, meaning match all.
func ParseListFilter(filterStr string) (Predicate, error) {
	if strings.TrimSpace(filterStr) == "" {
		return nil, nil
	}

	decls, err := ChangeDeclarations()
	if err != nil {
		return nil, fmt.Errorf("create declarations: %w", err)
	}

	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}

	return translateExpr(parsed.CheckedExpr.Expr)
}

func translateExpr(e *expr.Expr) (Predicate, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return translateCall(kind.CallExpr)
	case *expr.Expr_IdentExpr:
		// A bare identifier is only meaningful for the bool field.
		if kind.IdentExpr.Name == "disabled" {
			return func(c registry.Change) bool { return c.Disabled }, nil
		}
		return nil, fmt.Errorf("field %s is not a bool expression", kind.IdentExpr.Name)
	default:
		return nil, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

func translateCall(call *expr.Expr_Call) (Predicate, error) {
	switch call.Function {
	case "_&&_", "AND":
		return translateBinary(call.Args, func(left, right Predicate) Predicate {
			return func(c registry.Change) bool { return left(c) && right(c) }
		})
	case "_||_", "OR":
		return translateBinary(call.Args, func(left, right Predicate) Predicate {
			return func(c registry.Change) bool { return left(c) || right(c) }
		})
	case "_!_", "NOT":
		if len(call.Args) != 1 {
			return nil, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := translateExpr(call.Args[0])
		if err != nil {
			return nil, err
		}
		return func(c registry.Change) bool { return !inner(c) }, nil
	case "_==_", "=":
		return translateComparison(call.Args, "=")
	case "_!=_", "!=":
		return translateComparison(call.Args, "!=")
	case "_<_", "<":
		return translateComparison(call.Args, "<")
	case "_<=_", "<=":
		return translateComparison(call.Args, "<=")
	case "_>_", ">":
		return translateComparison(call.Args, ">")
	case "_>=_", ">=":
		return translateComparison(call.Args, ">=")
	default:
		return nil, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func translateBinary(args []*expr.Expr, combine func(left, right Predicate) Predicate) (Predicate, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("logical operator requires 2 arguments")
	}

	left, err := translateExpr(args[0])
	if err != nil {
		return nil, err
	}
	right, err := translateExpr(args[1])
	if err != nil {
		return nil, err
	}
	return combine(left, right), nil
}

func translateComparison(args []*expr.Expr, op string) (Predicate, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return nil, err
	}
	value, err := extractValue(args[1])
	if err != nil {
		return nil, err
	}

	switch field {
	case "id":
		want, err := asInt64(value)
		if err != nil {
			return nil, fmt.Errorf("field id: %w", err)
		}
		return func(c registry.Change) bool {
			return compareInt64(int64(c.ID), want, op)
		}, nil
	case "enable_after_target_sdk":
		want, err := asInt64(value)
		if err != nil {
			return nil, fmt.Errorf("field enable_after_target_sdk: %w", err)
		}
		return func(c registry.Change) bool {
			return compareInt64(int64(c.EnableAfterTargetSDK), want, op)
		}, nil
	case "name":
		want, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field name requires a string value")
		}
		return func(c registry.Change) bool {
			return compareStrings(c.Name, want, op)
		}, nil
	case "disabled":
		want, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("field disabled requires a bool value")
		}
		switch op {
		case "=":
			return func(c registry.Change) bool { return c.Disabled == want }, nil
		case "!=":
			return func(c registry.Change) bool { return c.Disabled != want }, nil
		default:
			return nil, fmt.Errorf("field disabled does not support %s", op)
		}
	default:
		return nil, fmt.Errorf("unknown field: %s", field)
	}
}

func compareInt64(got, want int64, op string) bool {
	switch op {
	case "=":
		return got == want
	case "!=":
		return got != want
	case "<":
		return got < want
	case "<=":
		return got <= want
	case ">":
		return got > want
	case ">=":
		return got >= want
	default:
		return false
	}
}

func compareStrings(got, want string, op string) bool {
	switch op {
	case "=":
		return got == want
	case "!=":
		return got != want
	case "<":
		return got < want
	case "<=":
		return got <= want
	case ">":
		return got > want
	case ">=":
		return got >= want
	default:
		return false
	}
}

func extractFieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractValue(e *expr.Expr) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		return extractConstValue(kind.ConstExpr)
	default:
		return nil, fmt.Errorf("expected constant, got %T", kind)
	}
}

func extractConstValue(c *expr.Constant) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("nil constant")
	}

	switch kind := c.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

func asInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("requires an integer value")
	}
}
