package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bikeshare/domain/entities/selection"
	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
)

const (
	yesAnswer        = "yes"
	rejectionMessage = "Please enter one of the offered options."
	cityPrompt       = "Please enter: %s > "
	monthPrompt      = "Please enter month: %s > "
	dayPrompt        = "Please enter day: %s > "
)

// Prompter reads the answers of the user, one line at a time
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// AskUserSelection asks until the user enters one of allowedValues. The answer is trimmed and lowercased
// before comparing it, there is no limit on the amount of attempts.
func (p *Prompter) AskUserSelection(allowedValues []string, promptText string) (string, error) {
	for {
		answer, err := p.readLine(promptText)
		if err != nil {
			return "", err
		}

		answer = strings.ToLower(strings.TrimSpace(answer))
		if utils.ContainsString(answer, allowedValues) {
			return answer, nil
		}

		log.Debugf("[component: prompt][method: AskUserSelection] rejected answer %q", answer)
		fmt.Fprintln(p.out, rejectionMessage)
		fmt.Fprintln(p.out)
	}
}

// AskYesNo returns true only if the answer is "yes", in any case. Everything else counts as a no.
func (p *Prompter) AskYesNo(promptText string) (bool, error) {
	answer, err := p.readLine(promptText)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == yesAnswer, nil
}

// GetFilters asks for the city, month and day, in that order
func (p *Prompter) GetFilters(options selection.Options) (selection.Selection, error) {
	city, err := p.AskUserSelection(options.Cities, fmt.Sprintf(cityPrompt, utils.FormatOptions(options.Cities)))
	if err != nil {
		return selection.Selection{}, err
	}

	month, err := p.AskUserSelection(options.Months, fmt.Sprintf(monthPrompt, utils.FormatOptions(options.Months)))
	if err != nil {
		return selection.Selection{}, err
	}

	day, err := p.AskUserSelection(options.Days, fmt.Sprintf(dayPrompt, utils.FormatOptions(options.Days)))
	if err != nil {
		return selection.Selection{}, err
	}

	fmt.Fprintln(p.out, utils.SeparatorLine)
	return selection.NewSelection(city, month, day), nil
}

// readLine prints promptText and returns the next line without its line terminator
func (p *Prompter) readLine(promptText string) (string, error) {
	fmt.Fprint(p.out, promptText)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %s", ErrReadingInput, err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
