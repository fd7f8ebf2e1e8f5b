package expression

import (
	"fmt"
	"maps"
	"slices"

	"github.com/flowlint/flowlint/pkg/logger"
)

var parametersLog = logger.New("expression:parameters")

// ValidateParameters walks a parameter tree depth-first and validates
// every string it contains. Findings are qualified with the dotted path
// of the offending field ("options.url", "headers[2]") and usage sets
// are unioned across all leaves. Non-string scalars cannot hold
// expressions and are skipped.
//
// Map keys are visited in sorted order so equal inputs produce equal
// output.
func ValidateParameters(params any, ctx *Context) *Result {
	if ctx == nil {
		ctx = &Context{}
	}
	result := NewResult()
	validateValue(params, ctx, "", result)
	result.Valid = len(result.Errors) == 0
	parametersLog.Printf("parameter tree validated: errors=%d warnings=%d variables=%d nodes=%d",
		len(result.Errors), len(result.Warnings), len(result.UsedVariables), len(result.UsedNodes))
	return result
}

func validateValue(value any, ctx *Context, path string, agg *Result) {
	switch v := value.(type) {
	case string:
		agg.Absorb(Validate(v, ctx), path)
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			validateValue(v[key], ctx, childPath(path, key), agg)
		}
	case []any:
		for i, element := range v {
			validateValue(element, ctx, fmt.Sprintf("%s[%d]", path, i), agg)
		}
	}
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
