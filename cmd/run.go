package cmd

import (
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/elijahnyp/smart_home/home"
	"github.com/elijahnyp/smart_home/util"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the home and play the scenario",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doRun(cmd)
	},
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().String("output", "text", "report format: text, json, yaml")
		c.Flags().Bool("watch", false, "replay the scenario whenever the config file changes")
	}

	rootCmd.AddCommand(runCmd)
}

// bindFlags points the freshly loaded config at the flags of whichever
// command is running, root or run.
func bindFlags(cmd *cobra.Command) error {
	for key, flag := range map[string]string{
		"log_level": "log-level",
		"output":    "output",
		"watch":     "watch",
	} {
		if err := util.Config.BindPFlag(key, cmd.Flag(flag)); err != nil {
			return err
		}
	}
	return nil
}

func applyLogLevel() {
	util.LogInit(util.Config.GetString("log_level"))
}

func doRun(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	util.LogInit(cmd.Flag("log-level").Value.String())
	if err := util.SetupConfig(_cfgFile); err != nil {
		return err
	}
	if err := bindFlags(cmd); err != nil {
		return err
	}
	util.RegisterNewConfigListener(applyLogLevel)
	util.OnNewConfig()

	watch := util.Config.GetBool("watch")
	if watch && util.Config.ConfigFileUsed() == "" {
		return errors.Wrap(util.ErrNoConfigFile, "--watch needs a config file")
	}

	if err := play(out); err != nil {
		return err
	}

	if !watch {
		return nil
	}

	var mu sync.Mutex
	util.RegisterNewConfigListener(func() {
		mu.Lock()
		defer mu.Unlock()
		util.Logger.Info().Msg("config changed, replaying scenario")
		if err := play(out); err != nil {
			util.Logger.Error().Msgf("replaying scenario: %v", err)
		}
	})
	if err := util.WatchConfig(); err != nil {
		return err
	}
	util.Logger.Info().Msg("watching config, interrupt to exit")

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
	util.Logger.Info().Msg("exiting")
	return nil
}

// play builds a fresh home from the current config and runs the scenario
// against it.
func play(out io.Writer) error {
	var model util.Model
	if err := model.BuildModel(); err != nil {
		return err
	}
	if _, err := model.Steps(); err != nil {
		return errors.Wrap(err, "invalid home.scenario")
	}

	renderer, err := home.RendererFor(util.Config.GetString("output"))
	if err != nil {
		return err
	}

	h := home.New().
		WithOutput(out).
		WithRenderer(renderer).
		WithLogger(util.Logger)
	if err := model.BuildHome(h); err != nil {
		return errors.Wrap(err, "invalid home.devices")
	}
	return model.Play(h)
}
