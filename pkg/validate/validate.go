// Package validate provides the input predicates used before resolving a Zone.
package validate

import (
	"fmt"
	"reflect"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/k-yomo/civiltime/pkg/timeutil"
)

var v = newValidator()

// datetimeTag requires the exact `YYYY-MM-DD hh:mm:ss` shape.
// Field ranges (month 13, Feb 30, ...) are left to the parser.
var datetimeTag = fmt.Sprintf("len=%d,layout=%s",
	len(timeutil.DateTimeLayout),
	timeutil.DateTimeLayout,
)

func newValidator() *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation("layout", matchesLayout); err != nil {
		panic(err)
	}
	return validate
}

// matchesLayout reports whether the field has a digit wherever the layout
// has one and the same separator everywhere else.
func matchesLayout(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	value, layout := field.String(), fl.Param()
	if len(value) != len(layout) {
		return false
	}
	for i := 0; i < len(layout); i++ {
		if unicode.IsDigit(rune(layout[i])) {
			if !unicode.IsDigit(rune(value[i])) {
				return false
			}
			continue
		}
		if value[i] != layout[i] {
			return false
		}
	}
	return true
}

// IsDateTime reports whether s is a `YYYY-MM-DD hh:mm:ss` datetime.
func IsDateTime(s string) bool {
	return v.Var(s, datetimeTag) == nil
}

// IsFullStr reports whether s is a non-empty string.
func IsFullStr(s string) bool {
	return v.Var(s, "required") == nil
}
