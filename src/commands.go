package main

import (
	"encoding/json"
	"os"

	"sam-audio-server/src/application"
	"sam-audio-server/src/application/config"
	"sam-audio-server/src/lib/cerr"
	"sam-audio-server/src/lib/env"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configPath string
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:           "sam-audio-server",
		Short:         "Text-prompted audio separation over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}

			cfg = loaded
			env.ConfigureLogging(cfg.Env(), cfg.LogLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the model and serve separation requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, cfg)
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Load the model once and report whether it is usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, cause, err := application.CheckModel(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(status); err != nil {
				return err
			}

			if !status.ModelLoaded {
				return cerr.Field("cause", cause).Error("Model is not usable")
			}

			return nil
		},
	}

	jobStatusCmd := &cobra.Command{
		Use:   "job-status <job_id>",
		Short: "Print the recorded status of a queued separation job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.JobStatusEnabled() {
				return cerr.Error("No jobs table is configured")
			}

			statusStore, err := application.NewStatusStore(cfg)
			if err != nil {
				return err
			}

			record, err := statusStore.GetStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(record)
		},
	}

	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd, checkCmd, jobStatusCmd)

	return rootCmd
}

func serve(cmd *cobra.Command, cfg config.Config) error {
	log.WithFields(log.Fields{
		"address":     cfg.Address(),
		"environment": cfg.Environment,
		"model_id":    cfg.Model.ID,
		"queue":       cfg.QueueEnabled(),
	}).Info("Starting sam-audio-server")

	app, err := application.NewApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return app.Start(cmd.Context())
}
