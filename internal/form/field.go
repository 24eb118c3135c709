package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jimezsa/salarycli/internal/models"
)

// Field identifies one of the four form inputs.
type Field int

const (
	FieldAge Field = iota
	FieldGender
	FieldEducation
	FieldExperience

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldAge:        "age",
	FieldGender:     "gender",
	FieldEducation:  "education",
	FieldExperience: "experience",
}

// Advisory ranges shown as hints; they are not enforced.
const (
	MinAge        = 20
	MaxAge        = 55
	MinExperience = 0
	MaxExperience = 30
)

// Fields returns the inputs in display order.
func Fields() []Field {
	return []Field{FieldAge, FieldGender, FieldEducation, FieldExperience}
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// IsSelector reports whether the field is a closed enumeration.
func (f Field) IsSelector() bool {
	return f == FieldGender || f == FieldEducation
}

// Options returns the choices of a selector field, nil otherwise.
func (f Field) Options() []models.Option {
	switch f {
	case FieldGender:
		return models.GenderOptions
	case FieldEducation:
		return models.EducationOptions
	default:
		return nil
	}
}

// ParseField accepts field names and their wire keys.
func ParseField(value string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	switch key {
	case "age":
		return FieldAge, nil
	case "gender", "sex":
		return FieldGender, nil
	case "education", "education_level", "edu":
		return FieldEducation, nil
	case "experience", "years_of_experience", "exp", "years":
		return FieldExperience, nil
	default:
		return 0, fmt.Errorf("unknown field: %s", value)
	}
}

func parseValue(field Field, raw string) (int, bool) {
	if field.IsSelector() {
		for _, opt := range field.Options() {
			if opt.Matches(raw) {
				return opt.Code, true
			}
		}
		return 0, false
	}
	return parseNumber(raw)
}

// parseNumber accepts any finite integral number, including "30.0".
func parseNumber(raw string) (int, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value != math.Trunc(value) || value > math.MaxInt32 || value < math.MinInt32 {
		return 0, false
	}
	return int(value), true
}
