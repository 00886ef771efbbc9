package prompt

import (
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyPrompter renders arrow-key prompts with survey. It needs real
// terminal file descriptors.
type SurveyPrompter struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err io.Writer
}

func (p *SurveyPrompter) opts() survey.AskOpt {
	return survey.WithStdio(p.In, p.Out, p.Err)
}

// Input asks a free-text question.
func (p *SurveyPrompter) Input(message, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, p.opts())
	return answer, err
}

// Select asks the operator to pick one option.
func (p *SurveyPrompter) Select(message string, options []string, def string) (string, error) {
	var answer string
	q := &survey.Select{Message: message, Options: options}
	if def != "" {
		q.Default = def
	}
	err := survey.AskOne(q, &answer, p.opts())
	return answer, err
}

// Confirm asks a yes/no question.
func (p *SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, p.opts())
	return answer, err
}
