// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/dacolabs/typegen/internal/errors"
)

// FormatSelect returns a select field for choosing the output format.
func FormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f).Selected(f == *value)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunGenerateForm prompts for the modules to write when none were selected
// by flags, and for the output format when it is empty.
func RunGenerateForm(selected *[]string, format *string, modules, formats []string) error {
	var groups []*huh.Group

	if len(*selected) == 0 {
		options := make([]huh.Option[string], len(modules))
		for i, m := range modules {
			options[i] = huh.NewOption(m, m)
		}
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Modules to generate").
				Description("Circular types generated from a module are written with it").
				Options(options...).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return errors.New("select at least one module")
					}
					return nil
				}).
				Value(selected),
		))
	}

	if *format == "" {
		groups = append(groups, huh.NewGroup(FormatSelect(format, formats)))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
