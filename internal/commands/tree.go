package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathlist"
	"github.com/jmgilman/go/pathlist/internal/output"
)

type treeResult struct {
	Root  string   `json:"root" yaml:"root"`
	Lines []string `json:"lines" yaml:"lines"`
}

func newTreeCmd(a *app) *cobra.Command {
	var (
		depth  int
		indent int
		stream bool
	)

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Render a directory tree",
		Long: `Render a directory and its descendants as an indented outline.

Every entry is shown, including hidden ones, with children sorted by name:

  |--[D] root
        |--[F] file1.txt
        |--[D] subdir
              |--[F] file2.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolvePath(args)
			if err != nil {
				return err
			}
			if depth < 0 {
				depth = pathlist.UnboundedDepth
			}

			opts := []pathlist.TreeOption{pathlist.WithDepth(depth), pathlist.WithIndent(indent)}
			streaming := stream && a.printer.Format() == output.FormatText
			if streaming {
				opts = append(opts, pathlist.WithEcho(a.printer.Out()))
			}

			text, err := a.explorer.Tree(root, opts...)
			if err != nil || streaming {
				return err
			}

			text = strings.TrimSuffix(text, "\n")
			return a.printer.Result(text, treeResult{
				Root:  root.String(),
				Lines: strings.Split(text, "\n"),
			})
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", -1, "Maximum number of levels below the root (negative for no limit)")
	cmd.Flags().IntVar(&indent, "indent", 0, "Indentation of the root line")
	cmd.Flags().BoolVar(&stream, "stream", false, "Print lines as they are produced (text format only)")

	return cmd
}
