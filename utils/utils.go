package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// SeparatorLine is printed between the stages of a session
var SeparatorLine = strings.Repeat("-", 40)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// FormatOptions returns the options quoted and joined for a prompt, e.g: 'a', 'b' or 'c'
func FormatOptions(options []string) string {
	quoted := make([]string, len(options))
	for i := range options {
		quoted[i] = "'" + options[i] + "'"
	}

	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
