package cmd

import (
	"fmt"

	"github.com/CCBR/dme-metadata-generator/metadata"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var combinedCmd = &cobra.Command{
	Use:   "combined",
	Short: "Generates metadata descriptors for combined upload files",
	Long:  `Generates one DME metadata descriptor per input file for files that merge results across the samples of an analysis`,
	RunE:  combined,
}

func init() {
	registerSharedFlags(combinedCmd)

	combinedCmd.Flags().BoolP("help", "h", false, "Help for combined")
	rootCmd.AddCommand(combinedCmd)
}

func combined(c *cobra.Command, _ []string) error {
	bindCommandFlags(c)
	if err := verifyRequiredConfig(); err != nil {
		return err
	}
	inputPaths := viper.GetStringSlice(InputPathsFlag)
	if err := validateInputPaths(inputPaths); err != nil {
		return err
	}

	c.SilenceUsage = true

	mode := metadata.CombinedUpload{
		AnalysisID: viper.GetString(AnalysisIDFlag),
	}

	if err := generateDescriptors(inputPaths, mode); err != nil {
		return errors.Wrap(err, GenerateFailureMessage)
	}

	fmt.Println("Success!")
	return nil
}
