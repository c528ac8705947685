package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/autoresume/internal/parsing"
	"github.com/jonathan/autoresume/internal/types"
)

var bulletsCmd = &cobra.Command{
	Use:   "bullets [text...]",
	Short: "Rewrite free text into resume bullets",
	Long:  "Rewrites each sentence of the input into a verb-led, past-tense bullet. At most four distinct bullets are printed.",
	RunE:  runBullets,
}

var starCmd = &cobra.Command{
	Use:   "star [text...]",
	Short: "Build a Situation/Task, Action, Result bullet group",
	RunE:  runStar,
}

var xyzCmd = &cobra.Command{
	Use:   "xyz [text...]",
	Short: "Build \"accomplished X by doing Y using Z\" bullets",
	RunE:  runXyz,
}

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Label each sentence with its narrative role",
	RunE:  runClassify,
}

var (
	textFile      string
	starRole      string
	starOrg       string
	bulletTools   string
	xyzMaxBullets int
)

func init() {
	for _, cmd := range []*cobra.Command{bulletsCmd, starCmd, xyzCmd, classifyCmd} {
		cmd.Flags().StringVarP(&textFile, "file", "f", "", "Read input text from a file instead of arguments")
		rootCmd.AddCommand(cmd)
	}

	starCmd.Flags().StringVar(&starRole, "role", "", "Role title used when the first sentence has no content")
	starCmd.Flags().StringVar(&starOrg, "org", "", "Organization named in the result bullet")
	starCmd.Flags().StringVar(&bulletTools, "tools", "", "Tools to append, comma separated")

	xyzCmd.Flags().StringVar(&bulletTools, "tools", "", "Tools to append, comma separated")
	xyzCmd.Flags().IntVar(&xyzMaxBullets, "max-bullets", 0, "Maximum bullets (0 uses the configured default)")
}

func runBullets(cmd *cobra.Command, args []string) error {
	text, err := readText(args, textFile)
	if err != nil {
		return err
	}
	printBullets(cmd, engine.RewriteToBullets(text))
	return nil
}

func runStar(cmd *cobra.Command, args []string) error {
	text, err := readText(args, textFile)
	if err != nil {
		return err
	}
	tools := parsing.NormalizeTools(engine.Lexicon(), types.SplitToolString(bulletTools))
	printBullets(cmd, engine.MakeStarBullets(text, starRole, starOrg, tools))
	return nil
}

func runXyz(cmd *cobra.Command, args []string) error {
	text, err := readText(args, textFile)
	if err != nil {
		return err
	}
	maxBullets := xyzMaxBullets
	if maxBullets == 0 {
		maxBullets = settings.MaxXyzBullets
	}
	if maxBullets < 0 || maxBullets > types.MaxRequestBullets {
		return fmt.Errorf("--max-bullets must be between 0 and %d", types.MaxRequestBullets)
	}
	tools := parsing.NormalizeTools(engine.Lexicon(), types.SplitToolString(bulletTools))
	printBullets(cmd, engine.MakeXyzBullets(text, tools, maxBullets))
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	text, err := readText(args, textFile)
	if err != nil {
		return err
	}
	sentences, err := engine.ClassifyText(text)
	if err != nil {
		return fmt.Errorf("failed to classify text: %w", err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, s := range sentences {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", s.Role, s.Text)
	}
	return tw.Flush()
}
