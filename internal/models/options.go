package models

import (
	"strconv"
	"strings"
)

// Option is one choice of a closed selector field.
type Option struct {
	Code    int
	Label   string
	Aliases []string
}

// Matches reports whether raw selects this option by code, label or alias.
func (o Option) Matches(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if raw == strconv.Itoa(o.Code) {
		return true
	}
	if strings.EqualFold(raw, o.Label) {
		return true
	}
	for _, alias := range o.Aliases {
		if strings.EqualFold(raw, alias) {
			return true
		}
	}
	return false
}

var GenderOptions = []Option{
	{Code: 0, Label: "female", Aliases: []string{"f", "หญิง"}},
	{Code: 1, Label: "male", Aliases: []string{"m", "ชาย"}},
}

var EducationOptions = []Option{
	{Code: 0, Label: "bachelor", Aliases: []string{"bachelors", "ba", "bsc", "ปริญญาตรี"}},
	{Code: 1, Label: "master", Aliases: []string{"masters", "ma", "msc", "ปริญญาโท"}},
	{Code: 2, Label: "doctorate", Aliases: []string{"phd", "doctoral", "ปริญญาเอก"}},
}

// LookupOption returns the option for code, if any.
func LookupOption(options []Option, code int) (Option, bool) {
	for _, opt := range options {
		if opt.Code == code {
			return opt, true
		}
	}
	return Option{}, false
}
