/*
Copyright © 2025 Nikolai Voronin <nv@nvoronin.dev>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

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
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvoronin/cliutil/pkg/textutil"
)

var (
	fmtWidth  int
	fmtAlign  string
	fmtIndent string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [text]",
	Short: "Word-wrap and justify text",
	Long: `Wraps the given text (or stdin when no argument is given) to the target
width and aligns it left, right, center or block-justified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := argOrStdin(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		align, err := parseAlignment(fmtAlign)
		if err != nil {
			return err
		}

		out := textutil.Justify(text, fmtWidth, align)
		if fmtIndent != "" {
			out = textutil.Indent(out, fmtIndent)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var splitCmd = &cobra.Command{
	Use:   "split [line]",
	Short: "Split a line into quote-aware fields",
	Long:  `Splits the given line (or stdin) on whitespace, honoring single and double quotes, and prints one field per line.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := argOrStdin(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		fields, err := textutil.SplitQuoted(line)
		if err != nil {
			return err
		}
		for _, f := range fields {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(splitCmd)

	fmtCmd.Flags().IntVarP(&fmtWidth, "width", "w", 72, "Target line width")
	fmtCmd.Flags().StringVarP(&fmtAlign, "align", "a", "left", "Alignment: left, right, center, block")
	fmtCmd.Flags().StringVarP(&fmtIndent, "indent", "i", "", "Prefix every output line")
}

func argOrStdin(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func parseAlignment(s string) (textutil.Alignment, error) {
	switch s {
	case "left":
		return textutil.AlignLeft, nil
	case "right":
		return textutil.AlignRight, nil
	case "center":
		return textutil.AlignCenter, nil
	case "block":
		return textutil.AlignBlock, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
}
