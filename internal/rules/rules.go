// Package rules holds the scheduling-domain validation core: pure checks for
// games and seasons that both the JSON API and the admin form handlers run
// before anything reaches storage.
package rules

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Object-level error tags.
const (
	TagTeamsMustDiffer = "teamsMustDiffer"
	TagOutOfSeason     = "outOfSeason"
	TagEndBeforeStart  = "endBeforeStart"
)

// Field-level error tags beyond the validator's own.
const (
	TagMinArray    = "minArray"
	TagMaxArray    = "maxArray"
	TagNotInSeason = "notInSeason"
)

// Roster size bounds for a season.
const (
	RosterMin = 2
	RosterMax = 20
)

// Result collects validation failures keyed by field name plus whole-object
// tags. A game or season with any active error is not submittable.
type Result struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Object []string            `json:"object,omitempty"`
}

func (r Result) Valid() bool {
	return len(r.Fields) == 0 && len(r.Object) == 0
}

// FieldHas reports whether the named field carries the given tag.
func (r Result) FieldHas(field, tag string) bool {
	for _, t := range r.Fields[field] {
		if t == tag {
			return true
		}
	}
	return false
}

// ObjectHas reports whether the whole-object tag is present.
func (r Result) ObjectHas(tag string) bool {
	for _, t := range r.Object {
		if t == tag {
			return true
		}
	}
	return false
}

func (r *Result) addField(field, tag string) {
	if r.Fields == nil {
		r.Fields = make(map[string][]string)
	}
	r.Fields[field] = append(r.Fields[field], tag)
}

func (r *Result) addObject(tag string) {
	r.Object = append(r.Object, tag)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("game_status", validGameStatus)
	v.RegisterValidation("stage_type", validStageType)
	return v
}

// collectFieldErrors runs tag validation on the candidate and folds every
// failure into the result as a field-level tag.
func collectFieldErrors(result *Result, candidate any) {
	err := validate.Struct(candidate)
	if err == nil {
		return
	}
	var errs validator.ValidationErrors
	if !isValidationErrors(err, &errs) {
		// An invalid candidate type is a programming error, not user input.
		panic(err)
	}
	for _, fe := range errs {
		result.addField(fieldName(fe), fe.Tag())
	}
}

func isValidationErrors(err error, dst *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		*dst = errs
	}
	return ok
}

// fieldName strips the struct prefix from a validator namespace, so nested
// stage errors come out as "stages[0].name".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}
