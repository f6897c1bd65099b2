package file

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/CCBR/dme-metadata-generator/metadata"
	"github.com/pkg/errors"
)

const (
	DescriptorFileSuffix = ".metadata.json"

	ResolveInputPathFailureFormat = "Could not resolve absolute path for input file %s"
	SerializeRecordFailureMessage = "Failed to serialize metadata record"
	WriteDescriptorFailureFormat  = "Could not write metadata descriptor %s"

	descriptorIndent = "    "
)

type DescriptorWriter struct {
	logger *log.Logger
}

func NewDescriptorWriter(logger *log.Logger) *DescriptorWriter {
	return &DescriptorWriter{logger: logger}
}

// DescriptorPath derives the descriptor location for an input file: the
// absolute input path with the descriptor suffix appended. Symlinks are not
// resolved, so the descriptor lands next to the path the caller named.
func DescriptorPath(inputPath string) (string, error) {
	absPath, err := filepath.Abs(inputPath)
	if err != nil {
		return "", errors.Wrapf(err, ResolveInputPathFailureFormat, inputPath)
	}
	return absPath + DescriptorFileSuffix, nil
}

// Write serializes the record and replaces any existing descriptor at
// outputPath.
func (dw *DescriptorWriter) Write(record metadata.Record, outputPath string) error {
	dw.logger.Printf("Writing metadata descriptor to %s", outputPath)

	contents, err := json.MarshalIndent(record, "", descriptorIndent)
	if err != nil {
		return errors.Wrap(err, SerializeRecordFailureMessage)
	}
	contents = append(contents, '\n')

	if err := os.WriteFile(outputPath, contents, 0644); err != nil {
		return errors.Wrapf(err, WriteDescriptorFailureFormat, outputPath)
	}

	return nil
}
