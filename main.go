package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: benchsummary <input_csv> <output_md>

Summarize each column of a CSV of timing samples as a Markdown table holding
the median, mean, standard deviation, minimum and maximum in milliseconds.

Arguments:
  input_csv   CSV file with a header row naming each measured series
  output_md   path the Markdown summary table is written to (overwritten)
`)
}

func main() {
	log.SetFlags(0)

	// Load environment from a .env file for local development.
	_ = godotenv.Load(".env")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatal(err)
	}
}

// run reads the samples, summarizes every column and writes the Markdown
// table. The output file is not touched until both earlier stages succeed.
func run(inputCSV, outputMD string) error {
	cols, err := readCSVColumns(inputCSV)
	if err != nil {
		return err
	}
	logVerbose("read %d columns x %d rows from %s", len(cols), len(cols[0].samples), inputCSV)

	summaries, err := summarizeColumns(cols)
	if err != nil {
		return err
	}

	if err := writeSummaryFile(outputMD, summaries); err != nil {
		return err
	}
	logVerbose("wrote summary for %d columns to %s", len(summaries), outputMD)
	return nil
}

// logVerbose reports progress on stderr when SUMMARY_VERBOSE is set.
func logVerbose(format string, args ...any) {
	if os.Getenv("SUMMARY_VERBOSE") == "" {
		return
	}
	log.Printf(format, args...)
}
