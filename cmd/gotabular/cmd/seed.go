package cmd

import (
	"sort"

	"github.com/gookit/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gotabular/internal/seed"
)

const defaultSeedDir = "company_data"

var seedCmd = &cobra.Command{
	Use:   "seed [dir]",
	Short: "Create a sample dataset to try the tool",
	Long: `Seed writes a small sample dataset: a folder of JSON sales records
shaped to cluster into two groups and a folder of XML employee records
forming one group. The default target directory is "company_data".

Example:
  gotabular seed && gotabular process company_data`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	dir := defaultSeedDir
	if len(args) == 1 {
		dir = args[0]
	}

	written, err := seed.Create(afero.NewOsFs(), dir)
	if err != nil {
		return err
	}

	sort.Strings(written)
	for _, path := range written {
		cmd.Printf("  created %s\n", path)
	}
	cmd.Println(color.Green.Sprintf("Sample dataset ready. Try: gotabular process %s", dir))
	return nil
}
