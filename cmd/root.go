package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/CCBR/dme-metadata-generator/file"
	"github.com/CCBR/dme-metadata-generator/metadata"
	"github.com/CCBR/dme-metadata-generator/operations"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	InputPathsKey        = "INPUT_PATHS"
	OutputCollectionKey  = "OUTPUT_COLLECTION"
	AnalysisIDKey        = "ANALYSIS_ID"
	WorkerCountKey       = "WORKERS"
	InputPathsFlag       = "input"
	OutputCollectionFlag = "output"
	AnalysisIDFlag       = "analysis-id"
	WorkerCountFlag      = "workers"

	RequiredConfigErrorFormat      = "Missing required flags: %s"
	InputFileUnreadableErrorFormat = "Input file %s does not exist or is not readable"
	GenerateFailureMessage         = "Failed to generate metadata descriptors"
	toolName                       = "dme-metadata-generator"
)

var (
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   toolName,
		Short: "Utility for generating metadata descriptors for DME archival uploads",
	}
)

func Execute() {
	rootCmd.Version = version
	rootCmd.Flags().BoolP("help", "h", false, fmt.Sprintf("Help for %s", toolName))
	rootCmd.Flags().BoolP("version", "v", false, fmt.Sprintf("Version for %s", toolName))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func registerSharedFlags(c *cobra.Command) {
	c.Flags().StringSliceP(InputPathsFlag, "i", nil, fmt.Sprintf("Input file to generate a metadata descriptor for, repeatable [$%s]", InputPathsKey))
	viper.BindEnv(InputPathsFlag, InputPathsKey)

	c.Flags().StringP(OutputCollectionFlag, "o", "", fmt.Sprintf("Destination collection path in DME [$%s]", OutputCollectionKey))
	viper.BindEnv(OutputCollectionFlag, OutputCollectionKey)

	c.Flags().String(AnalysisIDFlag, "", fmt.Sprintf("MD5 identifier computed over all pipeline inputs [$%s]", AnalysisIDKey))
	viper.BindEnv(AnalysisIDFlag, AnalysisIDKey)

	c.Flags().Int(WorkerCountFlag, 1, fmt.Sprintf("Number of input files to process in parallel [$%s]", WorkerCountKey))
	viper.BindEnv(WorkerCountFlag, WorkerCountKey)
}

// Flags are bound to viper when a command runs rather than at registration
// time: the subcommands share flag names, and the last init to bind would
// otherwise shadow the others.
func bindCommandFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(f.Name, f)
	})
}

func verifyRequiredConfig() error {
	var missingFlags []string
	if len(viper.GetStringSlice(InputPathsFlag)) == 0 {
		missingFlags = append(missingFlags, "--"+InputPathsFlag)
	}
	if viper.GetString(OutputCollectionFlag) == "" {
		missingFlags = append(missingFlags, "--"+OutputCollectionFlag)
	}

	if len(missingFlags) > 0 {
		return errors.Errorf(RequiredConfigErrorFormat, strings.Join(missingFlags, ", "))
	}

	return nil
}

func validateInputPaths(inputPaths []string) error {
	for _, inputPath := range inputPaths {
		f, err := os.Open(inputPath)
		if err != nil {
			return errors.Wrapf(err, InputFileUnreadableErrorFormat, inputPath)
		}
		f.Close()
	}

	return nil
}

func generateDescriptors(inputPaths []string, mode metadata.Mode) error {
	writer := file.NewDescriptorWriter(log.New(os.Stdout, "", 0))
	generator := operations.NewGenerator(metadata.NewAssembler(), writer, viper.GetInt(WorkerCountFlag))
	return generator.Generate(inputPaths, viper.GetString(OutputCollectionFlag), mode)
}
