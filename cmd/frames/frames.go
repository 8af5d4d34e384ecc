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

package frames

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/log"
	"dji.tools/djilog/pkg/parser"
)

const (
	ApiKeyOptionName = "api-key"
)

func NewCommand() *cobra.Command {
	var apiKey string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "frames <log-file>",
		Short: "Print normalized frames as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey != "" {
				cfg.KeychainConfig.ApiKey = apiKey
			}
			p, err := parser.FromFile(args[0], cfg)
			if err != nil {
				return err
			}
			defer p.Close()

			method := parser.DecryptNone()
			if cfg.KeychainConfig.ApiKey != "" {
				method = parser.DecryptAPIKey(cfg.KeychainConfig.ApiKey)
			}
			it, err := p.Frames(cmd.Context(), method)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for it.More() {
				f, err := it.Next()
				if err != nil {
					return err
				}
				if f == nil {
					break
				}
				if err := enc.Encode(f); err != nil {
					return err
				}
			}
			log.Diagnostics("frames", it.Diagnostics())
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, ApiKeyOptionName, "", "Api key for the keychain endpoint")
	return cmd
}
