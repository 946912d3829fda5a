package commands

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/kardianos/osext"

	"github.com/passguard/passguard/guess"
	"github.com/passguard/passguard/strength"
	"github.com/passguard/passguard/wordlist"
)

type CheckCommand struct {
	Password   string   `short:"p" long:"password" description:"the password to evaluate (reads STDIN when omitted)" value-name:"PASSWORD"`
	Wordlists  []string `short:"w" long:"wordlist" description:"newline-delimited common password list, may be repeated" value-name:"PATH"`
	Dictionary string   `short:"d" long:"dictionary" description:"newline-delimited dictionary word list" value-name:"PATH"`
	MinRating  string   `long:"min-rating" description:"lowest acceptable rating" value-name:"RATING" default:"Reasonable"`
	Verbose    bool     `short:"v" long:"verbose" description:"show the crack-resistance estimate"`
	Debug      bool     `long:"debug" description:"enables debug logging"`
}

func (command *CheckCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := lager.NewLogger("check")

	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	minRating, err := strength.ParseRating(command.MinRating)
	if err != nil {
		return err
	}

	password := command.Password
	if password == "" {
		password = readPasswordLine(os.Stdin)
	}

	common, err := wordlist.LoadAll(command.Wordlists...)
	if err != nil {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), err)
	}

	var dictionary wordlist.Set
	if command.Dictionary != "" {
		dictionary, err = wordlist.Load(command.Dictionary)
		if err != nil {
			fmt.Fprintln(os.Stderr, yellow("[WARN]"), err)
			dictionary = nil
		}
	}

	evaluator := strength.NewEvaluator(common, dictionary)
	assessment := evaluator.Evaluate(logger, password)

	showAssessment(assessment)

	if command.Verbose {
		showEstimate(guess.Crack(password))
	}

	if assessment.Rating < minRating {
		fmt.Println()
		fmt.Println(red("[WEAK]"), "rating is below", minRating.String())
		os.Exit(3)
	}

	return nil
}

// readPasswordLine takes the first line of input as the password. Anything
// after the first newline is ignored.
func readPasswordLine(file *os.File) string {
	scanner := bufio.NewScanner(file)
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}

func showAssessment(assessment strength.Assessment) {
	fmt.Printf("Length:            %d\n", assessment.Length)
	fmt.Printf("Base entropy:      %.2f bits\n", assessment.BaseEntropy)
	fmt.Printf("Penalty:           %.2f bits\n", assessment.TotalPenalty)
	fmt.Printf("Effective entropy: %.2f bits\n", assessment.EffectiveEntropy)
	fmt.Printf("Rating:            %s\n", ratingColor(assessment.Rating)(assessment.Rating.String()))

	if len(assessment.Feedback) > 0 {
		fmt.Println()
		fmt.Println("Feedback:")
		for _, note := range assessment.Feedback {
			fmt.Printf("  - %s\n", note)
		}
	}
}

func showEstimate(estimate guess.Estimate) {
	fmt.Println()
	fmt.Printf("Crack estimate:    %s (score %d/4)\n", estimate.CrackTimeDisplay, estimate.Score)
	if estimate.MachineGenerated {
		fmt.Println("                   looks machine-generated")
	}
}

func ratingColor(rating strength.Rating) func(string) string {
	switch {
	case rating <= strength.Weak:
		return red
	case rating == strength.Reasonable:
		return yellow
	default:
		return green
	}
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	mtime := info.ModTime()

	if time.Since(mtime) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `passguard update`.")
	}
}
