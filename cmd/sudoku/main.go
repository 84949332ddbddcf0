package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/akarpov/sudoku-server/internal/sudoku"
)

var (
	log = logrus.New()

	verbose bool
	logFile string
)

func init() {
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.StringVar(&logFile, "log-file", "", "also append JSON logs to this rotating file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] [puzzle file ...]\n\n"+
				"Solves each 9x9 sudoku puzzle given as 81 characters of '1'-'9' and '.'\n"+
				"(whitespace ignored). With no arguments the puzzle is read from stdin.\n\n",
			os.Args[0])
		flag.PrintDefaults()
	}
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		sudoku.Log = slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug},
		))
	}
	if logFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      log.GetLevel(),
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up log file: ", err)
	}
	log.AddHook(hook)
}

func readInput(path string) (string, error) {
	if path == "-" {
		text, err := io.ReadAll(os.Stdin)
		return string(text), err
	}
	text, err := os.ReadFile(path)
	return string(text), err
}

type result struct {
	solution string
	err      error
}

func main() {
	flag.Parse()
	setupLogging()

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	results := make([]result, len(inputs))
	var g errgroup.Group
	for i, path := range inputs {
		g.Go(func() error {
			text, err := readInput(path)
			if err != nil {
				results[i].err = err
				return err
			}
			grid, err := sudoku.Parse(text)
			if err != nil {
				results[i].err = err
				return err
			}
			solved, err := sudoku.Solve(grid)
			if err != nil {
				results[i].err = err
				return err
			}
			results[i].solution = solved.Render()
			return nil
		})
	}
	failed := g.Wait() != nil

	for i, res := range results {
		if len(inputs) > 1 {
			fmt.Printf("== %s ==\n", inputs[i])
		}
		if res.err != nil {
			log.Error(inputs[i], ": ", res.err)
			continue
		}
		fmt.Print(res.solution)
	}

	if failed {
		os.Exit(1)
	}
}
