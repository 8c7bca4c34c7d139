package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/pathlist"
	"github.com/jmgilman/go/pathlist/counted"
)

type listOptions struct {
	pattern string
	strings bool
	sample  int
	sampled bool
	depth   int
	shallow bool
}

func (o *listOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.pattern, "pattern", "p", "", "Only include paths containing this substring")
	cmd.Flags().BoolVarP(&o.strings, "strings", "s", false, "Treat entries as plain strings (quoted in text output)")
	cmd.Flags().IntVar(&o.sample, "sample", 0, "Show a random sample of this many entries")
}

func newLsCmd(a *app) *cobra.Command {
	opts := &listOptions{shallow: true}

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List the direct children of a directory",
		Long: `List the non-hidden entries directly inside a directory.

A missing directory lists as "(#0) []". The pattern is a plain substring
matched against each entry's full path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.sampled = cmd.Flags().Changed("sample")
			return a.runList(args, opts)
		},
	}
	opts.addFlags(cmd)

	return cmd
}

func newRlsCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "rls [path]",
		Short: "List a directory recursively",
		Long: `List non-hidden entries below a directory, depth first. Hidden
directories are not descended into.

Each directory is followed by its own contents. A negative depth means no
practical limit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.sampled = cmd.Flags().Changed("sample")
			return a.runList(args, opts)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", -1, "Maximum number of levels to descend")

	return cmd
}

func (a *app) runList(args []string, opts *listOptions) error {
	dir, err := resolvePath(args)
	if err != nil {
		return err
	}

	if opts.strings {
		var list *counted.List[string]
		if opts.shallow {
			list, err = a.explorer.LsStrings(dir, opts.pattern)
		} else {
			list, err = a.explorer.RlsStrings(dir, opts.pattern, opts.depth)
		}
		if err != nil {
			return err
		}
		return printList(a, list, opts)
	}

	var list *counted.List[pathlist.Path]
	if opts.shallow {
		list, err = a.explorer.Ls(dir, opts.pattern)
	} else {
		list, err = a.explorer.Rls(dir, opts.pattern, opts.depth)
	}
	if err != nil {
		return err
	}
	return printList(a, list, opts)
}

func printList[T any](a *app, list *counted.List[T], opts *listOptions) error {
	if opts.sampled {
		sampled, err := list.Sample(opts.sample)
		if err != nil {
			return err
		}
		list = sampled
	}
	return a.printer.Result(list.String(), list)
}
