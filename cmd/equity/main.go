package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/equity/cards"
	"github.com/lazharichir/equity/equity"
)

func main() {
	trials := flag.Int("trials", 10000, "number of Monte Carlo trials to run")
	boardArg := flag.String("board", "", "community cards, e.g. 6sKdQh")
	seed := flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	verbose := flag.Bool("verbose", false, "dump the full report")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: equity [-trials n] [-board cards] [-seed n] hand [hand ...]")
	}

	hands := make([]cards.Stack, 0, flag.NArg())
	for _, arg := range flag.Args() {
		hand, err := cards.StackFromString(arg)
		if err != nil {
			log.Fatalf("Invalid hand %q: %v", arg, err)
		}
		hands = append(hands, hand)
	}

	var board cards.Stack
	if *boardArg != "" {
		parsed, err := cards.StackFromString(*boardArg)
		if err != nil {
			log.Fatalf("Invalid board %q: %v", *boardArg, err)
		}
		board = parsed
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	spinner, _ := pterm.DefaultSpinner.Start(pterm.Sprintf("Running %d trials...", *trials))

	report, err := equity.Estimate(hands, board, *trials, rng)
	if err != nil {
		spinner.Fail(err.Error())
		log.Fatalf("Estimation failed: %v", err)
	}

	spinner.Success(pterm.Sprintf("Finished %d trials in %s", report.Trials, report.Elapsed))

	if len(report.Board) > 0 {
		pterm.Info.Printfln("Board: %s", report.Board)
	}

	rows := pterm.TableData{{"Hand", "Wins", "Equity"}}
	for i, hand := range report.Hands {
		rows = append(rows, []string{
			hand.String(),
			pterm.Sprintf("%d", report.Wins[i]),
			pterm.Sprintf("%.2f%%", report.Equity[i]*100),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		log.Fatalf("Failed to render results: %v", err)
	}

	if *verbose {
		litter.D(report)
	}
}
