// Command dupecheckctl manages a dupecheck corpus from the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/dupecheck/internal/version"
	dupecheck "github.com/kailas-cloud/dupecheck/pkg/sdk"
)

type globalFlags struct {
	driver    string
	addr      string
	password  string
	path      string
	keyPrefix string
	capacity  int
	threshold float64
	minWords  int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "dupecheckctl",
		Short: "Manage a bounded question corpus and check candidates for duplicates",
		Long: `dupecheckctl adds, lists and removes stored questions and runs the
duplicate detectors against a candidate text.

Examples:
  # Store a question in the default SQLite corpus
  dupecheckctl add "How do I reset my password?"

  # Find near-duplicates (sequence ratio above 0.6)
  dupecheckctl similar "how do i reset my password"

  # Find questions sharing words
  dupecheckctl words "password reset"

  # Use a Valkey corpus instead
  dupecheckctl --driver valkey --addr localhost:6379 ls`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.driver, "driver", envOr("DUPECHECK_DRIVER", "sqlite"), "storage driver: sqlite, valkey, redis or memory")
	pf.StringVar(&flags.addr, "addr", envOr("DUPECHECK_ADDR", "localhost:6379"), "valkey/redis address")
	pf.StringVar(&flags.password, "password", os.Getenv("DUPECHECK_PASSWORD"), "valkey/redis password")
	pf.StringVar(&flags.path, "path", envOr("DUPECHECK_PATH", "data/dupecheck.db"), "sqlite database file")
	pf.StringVar(&flags.keyPrefix, "key-prefix", "", "valkey/redis key prefix (default dupecheck:)")
	pf.IntVar(&flags.capacity, "capacity", 10, "maximum number of stored questions (0 = unbounded)")
	pf.Float64Var(&flags.threshold, "threshold", 0.6, "sequence ratio a question must exceed to be similar")
	pf.IntVar(&flags.minWords, "min-words", 1, "shared words required for a word match")

	root.AddCommand(
		newAddCmd(flags),
		newRmCmd(flags),
		newLsCmd(flags),
		newCountCmd(flags),
		newSimilarCmd(flags),
		newWordsCmd(flags),
		newHealthCmd(flags),
		newVersionCmd(),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (f *globalFlags) options() []dupecheck.Option {
	opts := []dupecheck.Option{
		dupecheck.WithCapacity(f.capacity),
		dupecheck.WithSequenceThreshold(f.threshold),
		dupecheck.WithMinSharedWords(f.minWords),
	}
	switch f.driver {
	case "valkey":
		opts = append(opts, dupecheck.WithValkey(f.addr, f.password))
	case "redis":
		opts = append(opts, dupecheck.WithRedis(f.addr, f.password))
	case "memory":
		opts = append(opts, dupecheck.WithMemory())
	default:
		opts = append(opts, dupecheck.WithSQLite(f.path))
	}
	if f.keyPrefix != "" {
		opts = append(opts, dupecheck.WithKeyPrefix(f.keyPrefix))
	}
	return opts
}

// withClient opens the corpus for the duration of fn.
func withClient(
	cmd *cobra.Command, flags *globalFlags,
	fn func(ctx context.Context, c *dupecheck.Client, out io.Writer) error,
) error {
	switch flags.driver {
	case "sqlite", "valkey", "redis", "memory":
	default:
		return fmt.Errorf("unknown driver %q", flags.driver)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := dupecheck.New(ctx, flags.options()...)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(ctx, client, cmd.OutOrStdout())
}

func newAddCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Store a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return withClient(cmd, flags, func(ctx context.Context, c *dupecheck.Client, out io.Writer) error {
				q, err := c.Questions().Create(ctx, text)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", color.GreenString("✓ added"), q.ID)
				return nil
			})
		},
	}
}

func newRmCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a stored question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, flags, func(ctx context.Context, c *dupecheck.Client, out io.Writer) error {
				if err := c.Questions().Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", color.GreenString("✓ deleted"), args[0])
				return nil
			})
		},
	}
}

func newLsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List stored questions in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, flags, func(ctx context.Context, c *dupecheck.Client, out io.Writer) error {
				qs, err := c.Questions().List(ctx)
				if err != nil {
					return err
				}
				if len(qs) == 0 {
					fmt.Fprintln(out, color.YellowString("corpus is empty"))
					return nil
				}
				faint := color.New(color.Faint).SprintFunc()
				for _, q := range qs {
					fmt.Fprintf(out, "%s  %s  %s\n", color.CyanString(q.ID), faint(q.CreatedAt.Format("2006-01-02 15:04:05")), q.Text)
				}
				return nil
			})
		},
	}
}

func newCountCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show corpus size and capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, flags, func(ctx context.Context, c *dupecheck.Client, out io.Writer) error {
				n, err := c.Questions().Count(ctx)
				if err != nil {
					return err
				}
				if c.Capacity() == 0 {
					fmt.Fprintf(out, "%d\n", n)
					return nil
				}
				fmt.Fprintf(out, "%d/%d\n", n, c.Capacity())
				return nil
			})
		},
	}
}

func newSimilarCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "similar <text>",
		Short: "List stored questions whose sequence ratio exceeds the threshold",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return withClient(cmd, flags, func(ctx context.Context, c *dupecheck.Client, out io.Writer) error {
				res, err := c.Similarity().CheckSimilarity(ctx, text)
				if err != nil {
					return err
				}
				printCount(out, res.Count, "similar question")
				for _, m := range res.Matches {
					fmt.Fprintf(out, "%s  %s  %s\n", color.CyanString(m.ID), scoreString(m.Score), m.Text)
				}
				return nil
			})
		},
	}
}

func newWordsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "words <text>",
		Short: "List stored questions sharing words with the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return withClient(cmd, flags, func(ctx context.Context, c *dupecheck.Client, out io.Writer) error {
				res, err := c.Similarity().CheckWords(ctx, text)
				if err != nil {
					return err
				}
				printCount(out, res.Count, "matching question")
				bold := color.New(color.Bold).SprintFunc()
				for _, m := range res.Matches {
					fmt.Fprintf(out, "%s  %s  [%s]\n", color.CyanString(m.ID), m.Text, bold(strings.Join(m.CommonWords, ", ")))
				}
				return nil
			})
		},
	}
}

func newHealthCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check storage connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, flags, func(ctx context.Context, c *dupecheck.Client, out io.Writer) error {
				h := c.Health(ctx)
				status := color.GreenString(h.Status)
				if h.Status != "ok" {
					status = color.RedString(h.Status)
				}
				fmt.Fprintf(out, "status: %s\n", status)
				for name, result := range h.Checks {
					fmt.Fprintf(out, "  %s: %s\n", name, result)
				}
				return nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func printCount(out io.Writer, n int, noun string) {
	if n != 1 {
		noun += "s"
	}
	line := fmt.Sprintf("%d %s", n, noun)
	if n == 0 {
		fmt.Fprintln(out, color.GreenString(line))
		return
	}
	fmt.Fprintln(out, color.YellowString(line))
}

// scoreString colors a percentage: red from 90, yellow below.
func scoreString(score float64) string {
	s := fmt.Sprintf("%6.2f%%", score)
	if score >= 90 {
		return color.RedString(s)
	}
	return color.YellowString(s)
}
