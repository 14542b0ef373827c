package main

import (
	"errors"
	"fmt"
	"io"

	"bikeshare/domain/entities/selection"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/prompt"
	"bikeshare/reporters"

	log "github.com/sirupsen/logrus"
)

const (
	greeting      = "Hello! Let's explore some US bike share data!"
	restartPrompt = "\nWould you like to restart? Enter yes or no.\n"
	farewell      = "GoodBye"
)

// Explorer runs the interactive sessions: filters, load, reports and restart prompt
type Explorer struct {
	prompter  *prompt.Prompter
	loader    *loader.Loader
	reporters []reporters.Reporter
	options   selection.Options
	out       io.Writer
}

func NewExplorer(explorerConfig *config.ExplorerConfig, in io.Reader, out io.Writer) *Explorer {
	prompter := prompt.NewPrompter(in, out)
	return &Explorer{
		prompter:  prompter,
		loader:    loader.NewLoader(explorerConfig.Loader),
		reporters: reporters.NewReporters(out, prompter, explorerConfig.Pager),
		options:   selection.DefaultOptions(),
		out:       out,
	}
}

// Run greets the user and runs sessions until the user does not want to restart. A closed input
// ends the program the same way.
func (e *Explorer) Run() error {
	fmt.Fprintln(e.out, greeting)
	fmt.Fprintln(e.out)

	for {
		restart, err := e.runSession()
		if errors.Is(err, prompt.ErrInputClosed) {
			log.Debug(getLogMessage("Run", "input closed", nil))
			restart = false
		} else if err != nil {
			return err
		}

		if !restart {
			fmt.Fprintln(e.out, farewell)
			return nil
		}
	}
}

// runSession runs one pass with fresh filters. Nothing is kept between sessions.
func (e *Explorer) runSession() (bool, error) {
	filters, err := e.prompter.GetFilters(e.options)
	if err != nil {
		return false, err
	}
	log.Debug(getLogMessage("runSession", "filters selected: "+filters.String(), nil))

	df, err := e.loader.LoadData(filters.GetCity(), filters.GetMonth(), filters.GetDay())
	if err != nil {
		return false, fmt.Errorf("error loading trips (%s): %w", filters, err)
	}

	for _, reporter := range e.reporters {
		if err := reporter.Report(df); err != nil {
			log.Error(getLogMessage("runSession", "error running reporter "+reporter.GetName(), err))
			return false, fmt.Errorf("[reporter: %s] %w", reporter.GetName(), err)
		}
	}

	return e.prompter.AskYesNo(restartPrompt)
}

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: explorer][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: explorer][method: %s][status: OK] %s", method, message)
}
