package suggest

import (
	"fmt"

	"tsplain/internal/token"
	"tsplain/internal/tserr"
)

func typeMismatch(err tserr.Diagnostic, _ []token.Token) Suggestion {
	from, to, ok := assignabilityPair(err.Message)
	if !ok {
		from, to = "type", "type"
	}
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Try converting this value from `%s` to `%s`.", from, to),
		},
		Help: "Ensure that the types are compatible or perform an explicit conversion.",
	}
}

func inlineTypeMismatch(err tserr.Diagnostic, _ []token.Token) Suggestion {
	var lines []string
	for _, m := range objectTypeMismatches(err.Message) {
		lines = append(lines, fmt.Sprintf(
			"Property `%s` is provided as `%s` but expects `%s`.",
			m.Name, m.Provided, m.Expected,
		))
	}
	return Suggestion{
		Suggestions: lines,
		Help:        "Check the function arguments to ensure they match the expected parameter types.",
	}
}

func missingParameters(err tserr.Diagnostic, tokens []token.Token) Suggestion {
	fnName := quoted(err.Message, 1, "function")
	fnName = subjectAt(tokens, err.Line, err.Column, fnName)

	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Check if all required arguments are provided when invoking `%s`", fnName),
		},
		Help: fmt.Sprintf("Function `%s` is missing 1 or more arguments.", fnName),
	}
}

func noImplicitAny(err tserr.Diagnostic, _ []token.Token) Suggestion {
	paramName := quoted(err.Message, 1, "parameter")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("`%s` is implicitly `any`.", paramName),
		},
		Help: "Consider adding type annotations to avoid implicit 'any' types.",
	}
}

func propertyMissingInType(err tserr.Diagnostic, tokens []token.Token) Suggestion {
	typeName, ok := lastTypeName(err.Message)
	if !ok {
		return Suggestion{
			Suggestions: []string{
				"Verify that the object structure includes all required members of the specified type.",
			},
			Help: "Ensure the object has all required properties defined in the type.",
		}
	}

	varName := subjectAt(tokens, err.Line, err.Column, "object")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Verify that `%s` matches the annotated type `%s`.", varName, typeName),
		},
		Help: fmt.Sprintf("Ensure that `%s` has all required properties defined in the type `%s`.", varName, typeName),
	}
}

func unintentionalComparison(_ tserr.Diagnostic, _ []token.Token) Suggestion {
	return Suggestion{
		Suggestions: []string{
			"Impossible to compare as left side value is narrowed to a single value.",
		},
		Help: "Review the comparison logic to ensure it makes sense.",
	}
}

func propertyDoesNotExist(err tserr.Diagnostic, _ []token.Token) Suggestion {
	propertyName := quoted(err.Message, 1, "property")
	typeName := quoted(err.Message, 3, "type")

	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Property `%s` is not found on type `%s`.", propertyName, typeName),
		},
		Help: "Ensure the property exists on the type or adjust your code to avoid accessing it.",
	}
}

func objectPossiblyUndefined(err tserr.Diagnostic, _ []token.Token) Suggestion {
	name := quoted(err.Message, 1, "object")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("`%s` may be `undefined` here.", name),
		},
		Help: fmt.Sprintf("Consider optional chaining or an explicit check before attempting to access `%s`", name),
	}
}

func directCast(err tserr.Diagnostic, _ []token.Token) Suggestion {
	fromType := quoted(err.Message, 1, "type")
	toType := quoted(err.Message, 3, "type")

	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf(
				"Directly casting from `%s` to `%s` can be unsafe or mistaken, as both types do not overlap sufficiently.",
				fromType, toType,
			),
		},
		Help: fmt.Sprintf(
			"Consider using type guards or intermediate conversions to ensure type safety when casting from `%s` to `%s`, only intermediately cast `as unknown` if this is desired.",
			fromType, toType,
		),
	}
}

func spreadArgument(_ tserr.Diagnostic, _ []token.Token) Suggestion {
	return Suggestion{
		Suggestions: []string{
			"The argument being spread must be a tuple type or a `spreadable` type.",
		},
		Help: "Ensure that the argument being spread is a tuple type compatible with the function's parameter type.",
	}
}

func rightOperandNotNumeric(_ tserr.Diagnostic, _ []token.Token) Suggestion {
	return Suggestion{
		Suggestions: []string{
			"The right-hand side of any arithmetic operation must be a number or enumerable.",
		},
		Help: "Ensure that the value on the right side of the arithmetic operator is of type `number`, `bigint` or an enum member.",
	}
}

func leftOperandNotNumeric(_ tserr.Diagnostic, _ []token.Token) Suggestion {
	return Suggestion{
		Suggestions: []string{
			"The left-hand side of any arithmetic operation must be a number or enumerable.",
		},
		Help: "Ensure that the value on the left side of the arithmetic operator is of type `number`, `bigint` or an enum member.",
	}
}

func incompatibleOverload(_ tserr.Diagnostic, _ []token.Token) Suggestion {
	return Suggestion{
		Suggestions: []string{
			"The provided arguments do not match any overload of the function.",
		},
		Help: "Check the function overloads and ensure that this signature adheres to the parent signature.",
	}
}

func invalidShadow(err tserr.Diagnostic, _ []token.Token) Suggestion {
	varName := quoted(err.Message, 1, "variable")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Declared variable `%s` can not shadow another variable in this scope.", varName),
		},
		Help: fmt.Sprintf("Consider renaming the invalid shadowed variable `%s`.", varName),
	}
}

func missingModule(err tserr.Diagnostic, _ []token.Token) Suggestion {
	moduleName := quoted(err.Message, 1, "module")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Module `%s` does not exist.", moduleName),
		},
		Help: fmt.Sprintf("Ensure that the module `%s` is installed and the import path is correct.", moduleName),
	}
}

func readonlyAssignment(err tserr.Diagnostic, _ []token.Token) Suggestion {
	propertyName := quoted(err.Message, 1, "property")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Property `%s` is readonly and thus can not be re-assigned.", propertyName),
		},
		Help: fmt.Sprintf(
			"Consider removing the assignment to the read-only property `%s` or changing its declaration to be mutable.",
			propertyName,
		),
	}
}

func interfaceNotImplemented(err tserr.Diagnostic, _ []token.Token) Suggestion {
	className := quoted(err.Message, 1, "class")
	interfaceName := quoted(err.Message, 3, "interface")
	missingProperty := quoted(err.Message, 5, "property")

	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Class `%s` does not implement `%s` from interface `%s`.",
				className, missingProperty, interfaceName),
		},
		Help: fmt.Sprintf(
			"Ensure that `%s` provides all required properties and methods defined in the interface `%s`.",
			className, interfaceName,
		),
	}
}

func basePropertyMismatch(err tserr.Diagnostic, _ []token.Token) Suggestion {
	property := quoted(err.Message, 1, "property")
	implType := quoted(err.Message, 3, "type")
	baseType := quoted(err.Message, 5, "base type")
	propertyImplType := quoted(err.Message, 7, "type")
	propertyBaseType := quoted(err.Message, 9, "base type")

	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf(
				"Property `%s` in class `%s` is not assignable to the same property in base class `%s`.",
				property, implType, baseType,
			),
			fmt.Sprintf(
				"Property `%s` is implemented as type `%s` but defined as `%s`.",
				property, propertyImplType, propertyBaseType,
			),
		},
		Help: fmt.Sprintf(
			"Ensure that the type of property `%s` in class `%s` is compatible with the type defined in base class `%s`.",
			property, implType, baseType,
		),
	}
}

func unresolvedIdentifier(err tserr.Diagnostic, _ []token.Token) Suggestion {
	identifier := quoted(err.Message, 1, "identifier")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Identifier `%s` cannot be found in the current scope.", identifier),
		},
		Help: fmt.Sprintf(
			"Ensure that `%s` is declared and accessible in the current scope or remove this reference.",
			identifier,
		),
	}
}

func missingReturnValue(_ tserr.Diagnostic, _ []token.Token) Suggestion {
	return Suggestion{
		Suggestions: []string{
			"A return value is missing where one is expected.",
		},
		Help: "A function that declares a return type must return a value of that type on all branches.",
	}
}

func notCallable(err tserr.Diagnostic, _ []token.Token) Suggestion {
	expr := quoted(err.Message, 1, "expression")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Expression `%s` can not be invoked or called.", expr),
		},
		Help: fmt.Sprintf("Ensure that `%s` is a function or has a callable signature before invoking it.", expr),
	}
}

func invalidIndexType(err tserr.Diagnostic, _ []token.Token) Suggestion {
	indexType := quoted(err.Message, 1, "type")
	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("`%s` cannot be used as an index accessor.", indexType),
		},
		Help: "Ensure that the index type is `number`, `string`, `symbol` or a compatible index type.",
	}
}

func mistypedProperty(err tserr.Diagnostic, _ []token.Token) Suggestion {
	propertyName := quoted(err.Message, 1, "property")
	typeName := quoted(err.Message, 3, "type")
	suggestedName := quoted(err.Message, 5, "property")

	return Suggestion{
		Suggestions: []string{
			fmt.Sprintf("Property `%s` does not exist on type `%s`. Try `%s` instead",
				propertyName, typeName, suggestedName),
		},
		Help: fmt.Sprintf(
			"Check for typos in the property name `%s` or ensure that it is defined on type `%s`.",
			propertyName, typeName,
		),
	}
}
