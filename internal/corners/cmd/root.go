// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/corners/pkg/config"
)

// Settings is filled in by the root command before any subcommand runs.
type Settings struct {
	Config *config.Config
}

func Root() *cobra.Command {
	settings := &Settings{}

	root := &cobra.Command{
		Use:  "corners",
		Args: cobra.NoArgs,

		Short: "Search and play the game of corners",
		Long: heredoc.Doc(`corners is a search engine for corners, a two player game in
			which each team tries to fill the opposite corner of the board
			with its own pieces, one single step at a time.

			Positions are searched with minimax or alpha-beta pruning to
			the configured depth. The configuration is read from
			$XDG_CONFIG_HOME/corners/config.yaml if it exists.`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setTrace(cmd)

			path, _ := cmd.Flags().GetString("config")

			var err error
			settings.Config, err = config.Load(path)
			return err
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Corners' Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Read the Configuration from this File")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Search(settings))
	root.AddCommand(Play(settings))
	root.AddCommand(Match(settings))
	root.AddCommand(Config(settings))

	return root
}

// setTrace sets the logging level to Trace if the --trace flag is provided.
func setTrace(cmd *cobra.Command) {
	if cmd.Flag("trace").Changed {
		logrus.SetLevel(logrus.TraceLevel)
	}
}
