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

package export

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/export"
	"dji.tools/djilog/pkg/frame"
	"dji.tools/djilog/pkg/log"
	"dji.tools/djilog/pkg/parser"
)

const (
	FormatOptionName = "format"
	OutputOptionName = "output"
	ImagesOptionName = "images"
	ApiKeyOptionName = "api-key"
)

func NewCommand() *cobra.Command {
	var format, output, imagesDir, apiKey string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "export <log-file>",
		Short: "Export frames as csv, geojson or kml",
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

			if imagesDir != "" {
				it, err := p.Records(cmd.Context(), method)
				if err != nil {
					return err
				}
				images, err := export.CollectImages(it)
				if err != nil {
					return err
				}
				paths, err := export.WriteImages(imagesDir, images)
				if err != nil {
					return err
				}
				log.Info("Images written: %d dir: %s", len(paths), imagesDir)
			}

			it, err := p.Frames(cmd.Context(), method)
			if err != nil {
				return err
			}
			var frames []*frame.Frame
			for it.More() {
				f, err := it.Next()
				if err != nil {
					return err
				}
				if f == nil {
					break
				}
				frames = append(frames, f)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			switch format {
			case "csv":
				return export.WriteCSV(w, frames)
			case "geojson":
				return export.WriteGeoJSON(w, frames)
			case "kml":
				return export.WriteKML(w, frames)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, FormatOptionName, "csv", "Output format: csv, geojson or kml")
	cmd.Flags().StringVar(&output, OutputOptionName, "", "Output file. Defaults to stdout")
	cmd.Flags().StringVar(&imagesDir, ImagesOptionName, "", "Directory to write embedded images to")
	cmd.Flags().StringVar(&apiKey, ApiKeyOptionName, "", "Api key for the keychain endpoint")
	return cmd
}
