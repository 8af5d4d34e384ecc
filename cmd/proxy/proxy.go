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

package proxy

import (
	"fmt"

	"github.com/spf13/cobra"

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/proxy"
)

const (
	AddressOptionName = "address"
	ApiKeyOptionName  = "api-key"
)

func NewCommand() *cobra.Command {
	var address, apiKey string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Start the keychain proxy server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				cfg.ProxyConfig.Address = address
			}
			if apiKey != "" {
				cfg.KeychainConfig.ApiKey = apiKey
			}
			server := proxy.NewServer(cfg)
			return server.Start()
		},
	}
	cmd.Flags().StringVar(&address, AddressOptionName, "", fmt.Sprintf("Address to bind. E.g. %s", config.DefaultProxyAddress))
	cmd.Flags().StringVar(&apiKey, ApiKeyOptionName, "", "Api key added to forwarded requests")
	return cmd
}
