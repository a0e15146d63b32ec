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
	"github.com/spf13/viper"

	arena "laptudirm.com/x/arena/pkg/common"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "arena [results-file]",
		Short: "Chart the results of an engine arena match",
		Long: heredoc.Doc(`arena reads the results file written by the arena at
			the end of a match between two engines and renders charts
			of the match's results. Without a subcommand it behaves
			like arena analyze.`),
		Args: cobra.MaximumNArgs(1),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: runAnalyze,
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Arena's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")

	chartFlags(root)

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Analyze())
	root.AddCommand(Report())

	return root
}

// config resolves the configuration of the given command. A results file
// given as an argument overrides the configured one.
func config(cmd *cobra.Command, args []string) (*viper.Viper, error) {
	file, _ := cmd.Flags().GetString("config")
	v, err := arena.LoadConfig(file, cmd.Flags())
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		v.Set("input", args[0])
	}

	return v, nil
}
