package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/coder/quartz"

	"github.com/lox/pokerhands/internal/harness"
	"github.com/lox/pokerhands/poker"
)

// CompareCmd compares two hands from the first hand's point of view.
type CompareCmd struct {
	Hand     string `arg:"" help:"Hand to score, e.g. '2H 3D 5S 9C KD'"`
	Opponent string `arg:"" help:"Opponent hand in the same notation"`
}

func (cmd *CompareCmd) Run(a *app) error {
	hand, err := poker.ParseHand(cmd.Hand)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	opponent, err := poker.ParseHand(cmd.Opponent)
	if err != nil {
		return fmt.Errorf("opponent: %w", err)
	}

	result, explanation := poker.Explain(hand, opponent)
	a.logger.Debug("Compared hands", "hand", hand, "opponent", opponent, "result", result)

	fmt.Fprintln(a.out, a.styles.result(result))
	if *a.cfg.Output.Explain {
		fmt.Fprintln(a.out, explanation)
	}
	return nil
}

// ClassifyCmd prints each hand's category and tie-break ranks.
type ClassifyCmd struct {
	Hands []string `arg:"" help:"Hands to classify, each quoted, e.g. 'AS AH 2H AD AC'"`
}

func (cmd *ClassifyCmd) Run(a *app) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for i, s := range cmd.Hands {
		hand, err := poker.ParseHand(s)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		c := poker.Classify(hand)
		keys := make([]string, len(c.Keys))
		for j, k := range c.Keys {
			keys[j] = k.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			a.styles.hand.Render(hand.String()),
			a.styles.category.Render(c.Category.String()),
			strings.Join(keys, " "))
	}
	return w.Flush()
}

// CheckCmd runs a case file through the harness.
type CheckCmd struct {
	File string `arg:"" name:"file" type:"existingfile" help:"Case file with '<hand> | <opponent> | <Win|Loss|Tie>' lines"`
}

var errCasesFailed = errors.New("cases failed")

func (cmd *CheckCmd) Run(a *app) error {
	cases, err := harness.LoadCases(cmd.File)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases found in %s", cmd.File)
	}

	ctx := setupSignalHandler(a.logger)
	runner := harness.NewRunner(a.logger, quartz.NewReal(), harness.Options{
		Workers:       a.cfg.Harness.Workers,
		StopOnFailure: a.cfg.Harness.StopOnFailure,
	})

	report, err := runner.Run(ctx, cases)
	a.printReport(report, len(cases))
	if err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%w: %d of %d", errCasesFailed, len(report.Failures())+report.Skipped, len(cases))
	}
	return nil
}

func (a *app) printReport(report harness.Report, total int) {
	for _, o := range report.Failures() {
		if o.Err != nil {
			fmt.Fprintf(a.out, "line %d: %s: %v\n", o.Case.Line, o.Case.Name(), o.Err)
			continue
		}
		fmt.Fprintf(a.out, "line %d: %s: expected %s, got %s\n",
			o.Case.Line, o.Case.Name(), a.styles.result(o.Case.Expected), a.styles.result(o.Actual))
	}

	passed := len(report.Outcomes) - len(report.Failures())
	fmt.Fprintf(a.out, "%d/%d passed", passed, total)
	if report.Skipped > 0 {
		fmt.Fprintf(a.out, ", %d skipped", report.Skipped)
	}
	fmt.Fprintln(a.out)
}
