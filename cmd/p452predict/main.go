// Command p452predict runs the ITU-R P.452 clear-air path-loss predictor
// against a link-parameters file and prints the resulting basic
// transmission loss.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trentholliday/p452/clearair"
	"github.com/trentholliday/p452/gas"
)

var debug bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "p452predict",
		Short: "Predict ITU-R P.452 clear-air terrestrial path loss",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "emit a debug line per mechanism output")

	root.AddCommand(newPredictCmd())
	root.AddCommand(newValidateCmd())
	return root
}

func newPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <link-file.json>",
		Short: "Compute the basic transmission loss for a link parameters file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, sync, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer sync()

			requestID := uuid.New().String()
			logger = logger.With("request_id", requestID, "link_file", args[0])

			params, err := loadLinkParameters(args[0])
			if err != nil {
				return errors.Wrap(err, "load link parameters")
			}

			var zapLogger *zap.SugaredLogger
			if debug {
				zapLogger = logger
			}

			predictor, err := clearair.New(params, gas.DefaultLink{}, nil, zapLogger)
			if err != nil {
				return errors.Wrap(err, "construct predictor")
			}

			lb, err := predictor.Predict()
			if err != nil {
				return errors.Wrap(err, "predict")
			}

			logger.Infow("prediction complete", "basic_transmission_loss_db", lb)
			fmt.Printf("%.2f\n", lb)
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <link-file.json>",
		Short: "Validate a link parameters file without running the predictor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadLinkParameters(args[0])
			if err != nil {
				return errors.Wrap(err, "load link parameters")
			}
			if _, err := clearair.New(params, gas.DefaultLink{}, nil, nil); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}

// newLogger builds the CLI's structured run logger, in debug or production
// mode, returning a Sync func deferred by callers.
func newLogger(debugMode bool) (*zap.SugaredLogger, func(), error) {
	var cfg zap.Config
	if debugMode {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "build logger")
	}
	sugar := logger.Sugar()
	return sugar, func() { _ = logger.Sync() }, nil
}
