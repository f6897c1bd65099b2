package cmd

import (
	"fmt"

	"github.com/CCBR/dme-metadata-generator/metadata"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	SampleNameKey          = "SAMPLE_NAME"
	AnalysisCollectionKey  = "DME_ANALYSIS_COLLECTION"
	SampleNameFlag         = "sample-name"
	AnalysisCollectionFlag = "dme-analysis-collection"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generates metadata descriptors for single-sample upload files",
	Long:  `Generates one DME metadata descriptor per input file for files uploaded alongside a single sample`,
	RunE:  sample,
}

func init() {
	registerSharedFlags(sampleCmd)

	sampleCmd.Flags().String(SampleNameFlag, "", fmt.Sprintf("Name of the sample the input files belong to [$%s]", SampleNameKey))
	viper.BindEnv(SampleNameFlag, SampleNameKey)

	sampleCmd.Flags().String(AnalysisCollectionFlag, "", fmt.Sprintf("DME collection path of the analysis the sample belongs to [$%s]", AnalysisCollectionKey))
	viper.BindEnv(AnalysisCollectionFlag, AnalysisCollectionKey)

	sampleCmd.Flags().BoolP("help", "h", false, "Help for sample")
	rootCmd.AddCommand(sampleCmd)
}

func sample(c *cobra.Command, _ []string) error {
	bindCommandFlags(c)
	if err := verifyRequiredConfig(); err != nil {
		return err
	}
	inputPaths := viper.GetStringSlice(InputPathsFlag)
	if err := validateInputPaths(inputPaths); err != nil {
		return err
	}

	c.SilenceUsage = true

	mode := metadata.SampleUpload{
		SampleName:         viper.GetString(SampleNameFlag),
		AnalysisID:         viper.GetString(AnalysisIDFlag),
		AnalysisCollection: viper.GetString(AnalysisCollectionFlag),
	}

	if err := generateDescriptors(inputPaths, mode); err != nil {
		return errors.Wrap(err, GenerateFailureMessage)
	}

	fmt.Println("Success!")
	return nil
}
