package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	// Emojis with colors
	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
)

// SmartSpinner wraps a terminal spinner with an initial message.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+MateEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(os.Stdout, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(os.Stdout, msg)
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "❌ %s\n", Error.Sprint(msg))
}

func PrintWarning(msg string) {
	fmt.Printf("%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(msg string) {
	fmt.Printf("%s %s\n", InfoEmoji, Info.Sprint(msg))
}

// PrintSectionBanner prints a highlighted section header.
func PrintSectionBanner(title string) {
	line := strings.Repeat("━", len([]rune(title))+4)
	fmt.Println(Accent.Sprint(line))
	fmt.Printf("%s %s\n", MateEmoji, Accent.Sprint(title))
	fmt.Println(Accent.Sprint(line))
}
