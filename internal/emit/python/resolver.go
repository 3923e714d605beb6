// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"strings"

	"github.com/dacolabs/typegen/internal/artifact"
)

// typeRenderer spells type expressions with the typing module imported as t,
// datetime as dt and the base module's Snowflake and Unknownish.
type typeRenderer struct{}

func (typeRenderer) PrimitiveType(p artifact.Primitive) string {
	switch p {
	case artifact.PrimString:
		return "str"
	case artifact.PrimInteger:
		return "int"
	case artifact.PrimBoolean:
		return "bool"
	case artifact.PrimNull:
		return "None"
	case artifact.PrimTimestamp:
		return "dt.datetime"
	case artifact.PrimSnowflake:
		return "Snowflake"
	default:
		return "object"
	}
}

func (typeRenderer) ReferenceType(name string) string {
	return name
}

func (typeRenderer) SequenceType(elem string) string {
	return "t.List[" + elem + "]"
}

func (typeRenderer) UnionType(left, right string) string {
	return "t.Union[" + left + ", " + right + "]"
}

func (typeRenderer) TupleType(elems []string) string {
	return "t.Tuple[" + strings.Join(elems, ", ") + "]"
}

func (typeRenderer) MapType() string {
	return "t.Dict[str, object]"
}

func (typeRenderer) NullableType(inner string) string {
	return "t.Optional[" + inner + "]"
}

func (typeRenderer) UnsetType(inner string) string {
	return "Unknownish[" + inner + "]"
}

// pythonKeywords are reserved words that cannot name a field.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// toPythonIdent adds an underscore suffix to Python keywords.
func toPythonIdent(s string) string {
	if pythonKeywords[s] {
		return s + "_"
	}
	return s
}
