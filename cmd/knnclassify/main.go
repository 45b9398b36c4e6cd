// Command knnclassify classifies the rows of a CSV file with a k-nearest
// neighbors vote and reports the accuracy on a random test split.
//
//	knnclassify classify iris.csv -k 5 --scaling=standard
//	knnclassify normalize 1 2 3 4
//
// Every flag can also be set through a KNN_* environment variable.
package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/YuminosukeSato/knnclassify/dataset"
	"github.com/YuminosukeSato/knnclassify/neighbors"
	"github.com/YuminosukeSato/knnclassify/pipeline"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
	"github.com/YuminosukeSato/knnclassify/pkg/log"
	"github.com/YuminosukeSato/knnclassify/report"
)

type cli struct {
	app      *kingpin.Application
	logLevel *string

	classify      *kingpin.CmdClause
	csvPath       *string
	trainFraction *float64
	k             *int
	features      *int
	seed          *uint64
	vote          *string
	scaling       *string
	workers       *int
	format        *string
	plotPath      *string
	plotX         *int
	plotY         *int

	normalize *kingpin.CmdClause
	values    *[]float64
}

func newCLI() *cli {
	def := pipeline.DefaultConfig()
	app := kingpin.New("knnclassify", "k-nearest neighbors classifier for labelled CSV data.")
	c := &cli{app: app}

	c.logLevel = app.Flag("log-level", "Log level (debug, info, warn, error).").
		Envar("KNN_LOG_LEVEL").Default("warn").Enum("debug", "info", "warn", "error")

	c.classify = app.Command("classify", "Split a CSV file, classify the test rows and print the accuracy.")
	c.csvPath = c.classify.Arg("csv", "CSV file with a header row, numeric feature columns and a trailing label.").
		Required().ExistingFile()
	c.trainFraction = c.classify.Flag("train-fraction", "Probability of a row being used for training.").
		Envar("KNN_TRAIN_FRACTION").Default(strconv.FormatFloat(def.TrainFraction, 'f', -1, 64)).Float64()
	c.k = c.classify.Flag("k", "Number of neighbors consulted per prediction.").Short('k').
		Envar("KNN_K").Default(strconv.Itoa(def.K)).Int()
	c.features = c.classify.Flag("features", "Number of leading numeric feature columns.").
		Envar("KNN_FEATURES").Default(strconv.Itoa(def.FeatureCount)).Int()
	c.seed = c.classify.Flag("seed", "Seed of the train/test split.").
		Envar("KNN_SEED").Default(strconv.FormatUint(def.Seed, 10)).Uint64()
	c.vote = c.classify.Flag("vote", "Vote strategy.").
		Envar("KNN_VOTE").Default(def.Vote.String()).Enum("majority", "legacy")
	c.scaling = c.classify.Flag("scaling", "Feature scaling applied before computing distances.").
		Envar("KNN_SCALING").Default(def.Scaling).Enum(pipeline.ScalingNone, pipeline.ScalingStandard, pipeline.ScalingMinMax)
	c.workers = c.classify.Flag("workers", "Prediction goroutines, 0 for one per CPU core.").
		Envar("KNN_WORKERS").Default(strconv.Itoa(def.Workers)).Int()
	c.format = c.classify.Flag("format", "Output format.").
		Envar("KNN_FORMAT").Default("text").Enum("text", "table")
	c.plotPath = c.classify.Flag("plot", "Write a scatter plot of the test predictions to this file.").
		Envar("KNN_PLOT").String()
	c.plotX = c.classify.Flag("plot-x", "Feature column on the plot's X axis.").
		Envar("KNN_PLOT_X").Default("2").Int()
	c.plotY = c.classify.Flag("plot-y", "Feature column on the plot's Y axis.").
		Envar("KNN_PLOT_Y").Default("3").Int()

	c.normalize = app.Command("normalize", "Print standard deviation, z-scores and min-max scaling of the values.")
	c.values = c.normalize.Arg("values", "Numbers to normalize.").Required().Float64List()
	return c
}

// run parses args and executes the selected command. Output is written to
// stdout only once the command has succeeded; logs go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	c := newCLI()
	c.app.Writer(stderr)
	cmd, err := c.app.Parse(args)
	if err != nil {
		return errors.Wrap(err, "parse arguments")
	}

	if err := log.SetupLoggerTo(stderr, *c.logLevel); err != nil {
		return err
	}
	level, err := log.ParseLevel(*c.logLevel)
	if err != nil {
		return err
	}
	logger := log.NewZerologLogger(stderr, level)
	log.SetLogger(logger)
	log.InstallWarnHandler(logger)
	defer errors.SetZerologWarnFunc(nil)

	var out bytes.Buffer
	switch cmd {
	case c.classify.FullCommand():
		err = errors.SafeExecute("classify", func() error {
			return c.runClassify(&out, logger)
		})
	case c.normalize.FullCommand():
		err = errors.SafeExecute("normalize", func() error {
			return report.WriteNormalization(&out, *c.values)
		})
	}
	if err != nil {
		return err
	}

	_, err = out.WriteTo(stdout)
	return errors.WithStack(err)
}

func (c *cli) runClassify(out io.Writer, logger log.Logger) error {
	vote, err := neighbors.ParseVoteStrategy(*c.vote)
	if err != nil {
		return err
	}
	cfg := pipeline.Config{
		TrainFraction: *c.trainFraction,
		K:             *c.k,
		FeatureCount:  *c.features,
		Seed:          *c.seed,
		Vote:          vote,
		Scaling:       *c.scaling,
		Workers:       *c.workers,
	}

	rows, err := dataset.ReadFile(*c.csvPath)
	if err != nil {
		return err
	}
	res, err := pipeline.Run(cfg, rows, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}

	if *c.plotPath != "" {
		if err := report.SavePlot(res, *c.plotPath, *c.plotX, *c.plotY); err != nil {
			return err
		}
		logger.Info("Saved plot", "path", *c.plotPath)
	}

	if *c.format == "table" {
		return report.WriteTable(out, res)
	}
	return report.WriteText(out, res)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("knnclassify failed", log.ErrAttr(err))
		os.Exit(1)
	}
}
