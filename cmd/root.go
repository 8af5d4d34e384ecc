/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dji.tools/djilog/cmd/completion"
	"dji.tools/djilog/cmd/config"
	"dji.tools/djilog/cmd/export"
	"dji.tools/djilog/cmd/frames"
	"dji.tools/djilog/cmd/info"
	"dji.tools/djilog/cmd/keychain"
	"dji.tools/djilog/cmd/proxy"
	"dji.tools/djilog/cmd/records"
	pkgconfig "dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel string
	cfg := pkgconfig.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "djilog",
		Short: "Tool to parse DJI flight logs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand())
	cmd.AddCommand(info.NewCommand())
	cmd.AddCommand(records.NewCommand())
	cmd.AddCommand(frames.NewCommand())
	cmd.AddCommand(export.NewCommand())
	cmd.AddCommand(keychain.NewCommand())
	cmd.AddCommand(proxy.NewCommand())
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}
