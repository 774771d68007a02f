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
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/corners/pkg/common"
	"laptudirm.com/x/corners/pkg/config"
)

// corners config
func Config(settings *Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the configuration in use",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := settings.Config.Marshal()
			if err != nil {
				return err
			}

			path := settings.Config.Path()
			if path == "" {
				path = fmt.Sprintf("defaults, no configuration file in %s", common.Directory)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file if it does not exist",
		Args:  cobra.NoArgs,

		// The file might not exist yet, so it is not loaded.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setTrace(cmd)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			written, err := config.Default().Init(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file: %s\n", written)
			return nil
		},
	})

	return cmd
}
