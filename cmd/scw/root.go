// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/scw/dataset"
	"github.com/katalvlaran/scw/internal/config"
	"github.com/katalvlaran/scw/internal/logging"
	"github.com/katalvlaran/scw/scw"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scw <train-data> <C> <eta> [test-data]",
		Short: "train and evaluate a soft confidence-weighted classifier",
		Long: "scw trains a binary linear classifier online with Soft Confidence-Weighted\n" +
			"learning and reports its error rate on the test data (or the training\n" +
			"data when no test file is given).",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load(cmd, args)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}
	config.AddFlags(cmd.Flags())

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	log, err := logging.New("scw", cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	train, err := dataset.Load(cfg.TrainPath)
	if err != nil {
		return errors.WithMessage(err, "load training data")
	}
	log.Infow("training data loaded", "path", cfg.TrainPath, "examples", train.Len(), "dim", train.Dim())

	test := train
	if cfg.TestPath != "" {
		if test, err = dataset.Load(cfg.TestPath); err != nil {
			return errors.WithMessage(err, "load test data")
		}
		log.Infow("test data loaded", "path", cfg.TestPath, "examples", test.Len(), "dim", test.Dim())
	}

	out := cmd.OutOrStdout()
	opts := []scw.Option{scw.WithLogger(log.Named("model"))}
	if cfg.Trace {
		opts = append(opts, scw.WithObserver(traceMean(out)))
	}
	model, err := scw.New(cfg.C, cfg.Eta, opts...)
	if err != nil {
		return err
	}

	if err = model.Train(cmd.Context(), train.X, train.Y, cfg.Passes); err != nil {
		return errors.WithMessage(err, "train")
	}
	res, err := model.Evaluate(test.X, test.Y)
	if err != nil {
		return errors.WithMessage(err, "evaluate")
	}
	log.Infow("evaluation finished",
		"updates", model.Updates(), "steps", model.Steps(), "rate", res.Rate(), zap.Stringer("result", res))

	_, err = fmt.Fprintf(out, "error rate = %s\n", res)

	return err
}

// traceMean prints "mu = a,b,..." after every update.
func traceMean(w io.Writer) scw.Observer {
	return func(_ int, _ scw.Update, mean []float64) {
		fmt.Fprintf(w, "mu = %s\n", scw.FormatVector(mean))
	}
}
