package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var errPromptCancelled = errors.New("formtable: column selection cancelled")

// selectColumns asks which columns to render. Tests replace it.
var selectColumns = surveySelectColumns

func surveySelectColumns(columns []string) ([]string, error) {
	var out []string
	prompt := &survey.MultiSelect{
		Message:  "Columns to render",
		Options:  columns,
		Default:  columns,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(survey.MinItems(1))); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil, errPromptCancelled
		}
		return nil, fmt.Errorf("formtable: prompt columns: %w", err)
	}
	return out, nil
}
