package cmd

import (
	"github.com/AlecAivazis/survey/v2"
)

type surveyConfirmer struct{}

func (surveyConfirmer) Confirm(message string) (bool, error) {
	confirm := false
	prompt := &survey.Confirm{
		Message: message,
	}

	err := survey.AskOne(prompt, &confirm)

	return confirm, err
}
