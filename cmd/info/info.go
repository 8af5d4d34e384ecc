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

package info

import (
	"fmt"

	"github.com/spf13/cobra"

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/parser"
)

func NewCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "info <log-file>",
		Short: "Show log version and flight summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser.FromFile(args[0], cfg)
			if err != nil {
				return err
			}
			defer p.Close()

			d := p.Details()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:       %d (%s)\n", p.Version(), p.Epoch())
			fmt.Fprintf(out, "Aircraft:      %s (%s)\n", d.AircraftName, d.ProductType)
			fmt.Fprintf(out, "Aircraft SN:   %s\n", d.AircraftSN)
			fmt.Fprintf(out, "Camera SN:     %s\n", d.CameraSN)
			fmt.Fprintf(out, "RC SN:         %s\n", d.RCSN)
			fmt.Fprintf(out, "Battery SN:    %s\n", d.BatterySN)
			fmt.Fprintf(out, "App:           %s %s\n", d.AppPlatform, d.AppVersion)
			fmt.Fprintf(out, "Start time:    %s\n", d.StartTime.Format("2006-01-02T15:04:05.000Z"))
			fmt.Fprintf(out, "Position:      %.6f, %.6f\n", d.Latitude, d.Longitude)
			fmt.Fprintf(out, "Total time:    %.1f s\n", d.TotalTime)
			fmt.Fprintf(out, "Distance:      %.1f m\n", d.TotalDistance)
			fmt.Fprintf(out, "Max height:    %.1f m\n", d.MaxHeight)
			fmt.Fprintf(out, "Max h. speed:  %.1f m/s\n", d.MaxHorizontalSpeed)
			fmt.Fprintf(out, "Max v. speed:  %.1f m/s\n", d.MaxVerticalSpeed)
			fmt.Fprintf(out, "Captures:      %d\n", d.CaptureNum)
			return nil
		},
	}
	return cmd
}
