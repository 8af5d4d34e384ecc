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

package keychain

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/parser"
)

const (
	ApiKeyOptionName = "api-key"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keychain",
		Short: "Work with the keychain endpoint",
	}
	cmd.AddCommand(newRequestCommand())
	cmd.AddCommand(newFetchCommand())
	return cmd
}

// newRequestCommand prints the request payload without touching the
// network, for use against the proxy or for debugging.
func newRequestCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "request <log-file>",
		Short: "Print the keychain request payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser.FromFile(args[0], cfg)
			if err != nil {
				return err
			}
			defer p.Close()

			request, err := p.KeychainRequest()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(request)
		},
	}
	return cmd
}

// newFetchCommand resolves keychains through the endpoint, warming
// the on-disk cache.
func newFetchCommand() *cobra.Command {
	var apiKey string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "fetch <log-file>",
		Short: "Fetch keychains and warm the cache",
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

			if _, err := p.Records(cmd.Context(), parser.DecryptAPIKey(cfg.KeychainConfig.ApiKey)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Keychains fetched")
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, ApiKeyOptionName, "", "Api key for the keychain endpoint")
	return cmd
}
