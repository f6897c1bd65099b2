package operations

import (
	"sync"

	"github.com/CCBR/dme-metadata-generator/file"
	"github.com/CCBR/dme-metadata-generator/metadata"
	"github.com/pkg/errors"
)

const (
	AssembleRecordFailureFormat  = "Failed assembling metadata record for %s"
	WriteDescriptorFailureFormat = "Failed writing metadata descriptor for %s"
)

//go:generate counterfeiter . recordAssembler
type recordAssembler interface {
	Assemble(inputPath, collectionPath string, mode metadata.Mode) (metadata.Record, error)
}

//go:generate counterfeiter . descriptorWriter
type descriptorWriter interface {
	Write(record metadata.Record, outputPath string) error
}

type GenerateExecutor struct {
	assembler   recordAssembler
	writer      descriptorWriter
	workerCount int
}

func NewGenerator(assembler recordAssembler, writer descriptorWriter, workerCount int) GenerateExecutor {
	if workerCount < 1 {
		workerCount = 1
	}
	return GenerateExecutor{assembler: assembler, writer: writer, workerCount: workerCount}
}

// Generate produces one metadata descriptor per input file. Files are
// independent, so with more than one worker they are processed in parallel.
// The first failure stops new files from starting; in-flight files finish
// before it is returned.
func (ge GenerateExecutor) Generate(inputPaths []string, collectionPath string, mode metadata.Mode) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}
	recordFailure := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	paths := make(chan string)
	for i := 0; i < ge.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inputPath := range paths {
				if failed() {
					continue
				}
				if err := ge.generateDescriptor(inputPath, collectionPath, mode); err != nil {
					recordFailure(err)
				}
			}
		}()
	}

	for _, inputPath := range inputPaths {
		if failed() {
			break
		}
		paths <- inputPath
	}
	close(paths)
	wg.Wait()

	return firstErr
}

func (ge GenerateExecutor) generateDescriptor(inputPath, collectionPath string, mode metadata.Mode) error {
	record, err := ge.assembler.Assemble(inputPath, collectionPath, mode)
	if err != nil {
		return errors.Wrapf(err, AssembleRecordFailureFormat, inputPath)
	}

	outputPath, err := file.DescriptorPath(inputPath)
	if err != nil {
		return err
	}

	if err := ge.writer.Write(record, outputPath); err != nil {
		return errors.Wrapf(err, WriteDescriptorFailureFormat, inputPath)
	}

	return nil
}
