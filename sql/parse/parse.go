// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parse

import (
	"strconv"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/src-d/go-vitess.v1/vt/sqlparser"

	"github.com/dolthub/go-planorder/sql"
	"github.com/dolthub/go-planorder/sql/expression"
	"github.com/dolthub/go-planorder/sql/ordering"
)

var (
	// ErrUnsupportedSyntax is thrown when a specific syntax is not already supported
	ErrUnsupportedSyntax = errors.NewKind("unsupported syntax: %#v")

	// ErrUnsupportedFeature is thrown when a feature is not already supported
	ErrUnsupportedFeature = errors.NewKind("unsupported feature: %s")

	// ErrInvalidSQLValType is returned when a SQLVal type is not valid.
	ErrInvalidSQLValType = errors.NewKind("invalid SQLVal of type: %d")

	// ErrInvalidSortOrder is returned when a sort order is not valid.
	ErrInvalidSortOrder = errors.NewKind("invalod sort order: %s")
)

// ParseOrderBy parses a comma-separated list of sort items into a required
// order candidate. Each item is an expression optionally followed by ASC or
// DESC; the column id is the canonical rendering of the expression.
func ParseOrderBy(ctx *sql.Context, orderBy string) (ordering.RequiredOrderCandidate, error) {
	span, ctx := ctx.Span("parse.order_by", opentracing.Tag{Key: "order_by", Value: orderBy})
	defer span.Finish()

	candidate := ordering.NewRequiredOrderCandidate()

	s := strings.TrimSpace(orderBy)
	if s == "" {
		logrus.WithFields(logrus.Fields{
			"query":    ctx.Query(),
			"order_by": orderBy,
		}).Infof("order by became empty, so it will be ignored")
		return candidate, nil
	}

	ob, err := parseOrderClause(s)
	if err != nil {
		return candidate, err
	}

	for _, o := range ob {
		e, err := exprToExpression(o.Expr)
		if err != nil {
			return candidate, err
		}

		switch o.Direction {
		default:
			return candidate, ErrInvalidSortOrder.New(o.Direction)
		case sqlparser.AscScr:
			candidate = candidate.Asc(e.String(), e, nil)
		case sqlparser.DescScr:
			candidate = candidate.Desc(e.String(), e, nil)
		}
	}

	return candidate, nil
}

// ParseProvidedOrder parses the same sort-item grammar into a provided
// order. Expressions are reduced to their canonical rendering, since a
// provided order carries produced column ids only.
func ParseProvidedOrder(ctx *sql.Context, orderBy string) (ordering.ProvidedOrder, error) {
	span, ctx := ctx.Span("parse.provided_order", opentracing.Tag{Key: "order_by", Value: orderBy})
	defer span.Finish()

	provided := ordering.NewProvidedOrder()

	s := strings.TrimSpace(orderBy)
	if s == "" {
		logrus.WithFields(logrus.Fields{
			"query":    ctx.Query(),
			"order_by": orderBy,
		}).Infof("provided order became empty, so it will be ignored")
		return provided, nil
	}

	ob, err := parseOrderClause(s)
	if err != nil {
		return provided, err
	}

	for _, o := range ob {
		e, err := exprToExpression(o.Expr)
		if err != nil {
			return provided, err
		}

		switch o.Direction {
		default:
			return provided, ErrInvalidSortOrder.New(o.Direction)
		case sqlparser.AscScr:
			provided = provided.Asc(e.String())
		case sqlparser.DescScr:
			provided = provided.Desc(e.String())
		}
	}

	return provided, nil
}

// ParseProjections parses a comma-separated projection list, aliases
// included, into expressions. Bare stars are rejected: expanding them needs
// schema knowledge this library does not have.
func ParseProjections(ctx *sql.Context, projections string) ([]sql.Expression, error) {
	span, ctx := ctx.Span("parse.projections", opentracing.Tag{Key: "projections", Value: projections})
	defer span.Finish()

	s := strings.TrimSpace(projections)
	if s == "" {
		logrus.WithFields(logrus.Fields{
			"query":       ctx.Query(),
			"projections": projections,
		}).Infof("projection list became empty, so it will be ignored")
		return nil, nil
	}

	stmt, err := sqlparser.Parse("select " + s)
	if err != nil {
		return nil, err
	}

	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, ErrUnsupportedSyntax.New(stmt)
	}

	return selectExprsToExpressions(sel.SelectExprs)
}

// parseOrderClause wraps the sort items in a minimal SELECT so the sql
// grammar's order by clause parses them.
func parseOrderClause(s string) (sqlparser.OrderBy, error) {
	stmt, err := sqlparser.Parse("select 1 order by " + s)
	if err != nil {
		return nil, err
	}

	sel, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, ErrUnsupportedSyntax.New(stmt)
	}

	return sel.OrderBy, nil
}

func selectExprsToExpressions(se sqlparser.SelectExprs) ([]sql.Expression, error) {
	var exprs []sql.Expression
	for _, e := range se {
		pe, err := selectExprToExpression(e)
		if err != nil {
			return nil, err
		}

		exprs = append(exprs, pe)
	}

	return exprs, nil
}

func selectExprToExpression(se sqlparser.SelectExpr) (sql.Expression, error) {
	switch e := se.(type) {
	default:
		return nil, ErrUnsupportedSyntax.New(e)
	case *sqlparser.StarExpr:
		return nil, ErrUnsupportedFeature.New("star expressions in projections")
	case *sqlparser.AliasedExpr:
		expr, err := exprToExpression(e.Expr)
		if err != nil {
			return nil, err
		}

		if e.As.String() == "" {
			return expr, nil
		}

		return expression.NewAlias(e.As.Lowered(), expr), nil
	}
}

func exprToExpression(e sqlparser.Expr) (sql.Expression, error) {
	switch v := e.(type) {
	default:
		return nil, ErrUnsupportedSyntax.New(e)
	case *sqlparser.ColName:
		if !v.Qualifier.IsEmpty() {
			var subject sql.Expression = expression.NewVariable(v.Qualifier.Name.String())
			if !v.Qualifier.Qualifier.IsEmpty() {
				subject = expression.NewProperty(
					expression.NewVariable(v.Qualifier.Qualifier.String()),
					v.Qualifier.Name.String(),
				)
			}
			return expression.NewProperty(subject, v.Name.String()), nil
		}
		return expression.NewVariable(v.Name.String()), nil
	case *sqlparser.SQLVal:
		return convertVal(v)
	case sqlparser.BoolVal:
		return expression.NewLiteral(bool(v)), nil
	case *sqlparser.NullVal:
		return expression.NewLiteral(nil), nil
	case *sqlparser.ParenExpr:
		return exprToExpression(v.Expr)
	case *sqlparser.FuncExpr:
		exprs, err := funcExprsToExpressions(v.Exprs)
		if err != nil {
			return nil, err
		}

		return expression.NewFunction(v.Name.Lowered(), exprs...), nil
	case *sqlparser.BinaryExpr:
		return binaryExprToExpression(v)
	}
}

func funcExprsToExpressions(se sqlparser.SelectExprs) ([]sql.Expression, error) {
	var exprs []sql.Expression
	for _, arg := range se {
		switch arg := arg.(type) {
		default:
			return nil, ErrUnsupportedSyntax.New(arg)
		case *sqlparser.StarExpr:
			exprs = append(exprs, expression.NewStar())
		case *sqlparser.AliasedExpr:
			e, err := exprToExpression(arg.Expr)
			if err != nil {
				return nil, err
			}

			exprs = append(exprs, e)
		}
	}

	return exprs, nil
}

func convertVal(v *sqlparser.SQLVal) (sql.Expression, error) {
	switch v.Type {
	case sqlparser.StrVal:
		return expression.NewLiteral(string(v.Val)), nil
	case sqlparser.IntVal:
		val, err := strconv.ParseInt(string(v.Val), 10, 64)
		if err != nil {
			return nil, err
		}
		return expression.NewLiteral(val), nil
	case sqlparser.FloatVal:
		val, err := strconv.ParseFloat(string(v.Val), 64)
		if err != nil {
			return nil, err
		}
		return expression.NewLiteral(val), nil
	}

	return nil, ErrInvalidSQLValType.New(v.Type)
}

func binaryExprToExpression(be *sqlparser.BinaryExpr) (sql.Expression, error) {
	switch be.Operator {
	case
		sqlparser.PlusStr,
		sqlparser.MinusStr,
		sqlparser.MultStr,
		sqlparser.DivStr,
		sqlparser.ModStr:

		l, err := exprToExpression(be.Left)
		if err != nil {
			return nil, err
		}

		r, err := exprToExpression(be.Right)
		if err != nil {
			return nil, err
		}

		return expression.NewArithmetic(l, r, be.Operator), nil

	default:
		return nil, ErrUnsupportedFeature.New(be.Operator)
	}
}
