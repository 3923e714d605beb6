// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitAnswers holds the values collected by RunInitForm.
type InitAnswers struct {
	Schemas    string
	Output     string
	Format     string
	BaseModule string
	EmitBase   bool
}

// RunInitForm runs the interactive form for the init command.
// Fields of answers are used as defaults and filled with user input.
func RunInitForm(answers *InitAnswers, modules map[string]struct{}, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema directory").
				Description("One JSON or YAML document per module").
				Placeholder("schemas").
				Validate(requiredValidator("schema directory")).
				Value(&answers.Schemas),
			huh.NewInput().
				Title("Output directory").
				Placeholder("out").
				Validate(requiredValidator("output directory")).
				Value(&answers.Output),
		),
		huh.NewGroup(
			FormatSelect(&answers.Format, formats),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write the base module?").
				Description("Snowflake, UNKNOWN and Unknownish shared by every module").
				Affirmative("Yes").
				Negative("No, I provide my own").
				Value(&answers.EmitBase),
			huh.NewInput().
				Title("Base module name").
				Placeholder("base").
				Validate(identifierValidator(modules)).
				Value(&answers.BaseModule),
		),
	).WithTheme(Theme()).Run()
}
