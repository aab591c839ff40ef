package types

import (
	"gorm.io/gorm/clause"
)

type ListFilterOperator string

const (
	ListFilterOperatorEq    ListFilterOperator = "eq"
	ListFilterOperatorNotEq ListFilterOperator = "not_eq"
	ListFilterOperatorLt    ListFilterOperator = "lt"
	ListFilterOperatorLte   ListFilterOperator = "lte"
	ListFilterOperatorGt    ListFilterOperator = "gt"
	ListFilterOperatorGte   ListFilterOperator = "gte"
	ListFilterOperatorRange ListFilterOperator = "range"
	ListFilterOperatorIn    ListFilterOperator = "in"
)

// ListFilter is a single column predicate supplied by admin list endpoints.
type ListFilter struct {
	Field    string             `json:"field"`
	Operator ListFilterOperator `json:"operator"`
	Values   []any              `json:"values"`
}

// Build constructs a GORM expression. Filters with no values are skipped.
func (f *ListFilter) Build(builder clause.Builder) {
	if len(f.Values) == 0 {
		return
	}

	value := f.Values[0]

	switch f.Operator {
	case ListFilterOperatorEq:
		clause.Eq{Column: f.Field, Value: value}.Build(builder)
	case ListFilterOperatorNotEq:
		clause.NotConditions{Exprs: []clause.Expression{clause.Eq{Column: f.Field, Value: value}}}.Build(builder)
	case ListFilterOperatorLt:
		clause.Lt{Column: f.Field, Value: value}.Build(builder)
	case ListFilterOperatorLte:
		clause.Lte{Column: f.Field, Value: value}.Build(builder)
	case ListFilterOperatorGt:
		clause.Gt{Column: f.Field, Value: value}.Build(builder)
	case ListFilterOperatorGte:
		clause.Gte{Column: f.Field, Value: value}.Build(builder)
	case ListFilterOperatorRange:
		if len(f.Values) < 2 {
			return
		}
		clause.And(clause.Gte{Column: f.Field, Value: f.Values[0]}, clause.Lte{Column: f.Field, Value: f.Values[1]}).Build(builder)
	case ListFilterOperatorIn:
		clause.IN{Column: f.Field, Values: f.Values}.Build(builder)
	default:
		return
	}
}
