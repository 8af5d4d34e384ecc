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

package records

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/log"
	"dji.tools/djilog/pkg/parser"
)

const (
	ApiKeyOptionName = "api-key"
	JSONOptionName   = "json"
)

func NewCommand() *cobra.Command {
	var apiKey string
	var asJSON bool
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "records <log-file>",
		Short: "List records in the log",
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

			it, err := p.Records(cmd.Context(), decryptMethod(cfg))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			counts := map[string]int{}
			for it.More() {
				rec, err := it.Next()
				if err != nil {
					return err
				}
				if rec == nil {
					break
				}
				counts[rec.Type.String()]++
				if asJSON {
					if err := enc.Encode(rec); err != nil {
						return err
					}
				} else {
					fmt.Fprintf(out, "%8d  %-20s %4d bytes\n", rec.Offset, rec.Type, len(rec.Raw))
				}
			}
			log.Diagnostics("records", it.Diagnostics())
			if !asJSON {
				fmt.Fprintf(out, "\n%d record kinds\n", len(counts))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, ApiKeyOptionName, "", "Api key for the keychain endpoint")
	cmd.Flags().BoolVar(&asJSON, JSONOptionName, false, "Print one JSON object per record")
	return cmd
}

func decryptMethod(cfg *config.Config) parser.DecryptMethod {
	if cfg.KeychainConfig.ApiKey == "" {
		return parser.DecryptNone()
	}
	return parser.DecryptAPIKey(cfg.KeychainConfig.ApiKey)
}
