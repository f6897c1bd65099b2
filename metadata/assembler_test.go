package metadata_test

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/CCBR/dme-metadata-generator/checksum"
	. "github.com/CCBR/dme-metadata-generator/metadata"
)

var _ = Describe("Assembler", func() {
	var (
		tempDir   string
		assembler Assembler
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "")
		Expect(err).NotTo(HaveOccurred())

		assembler = NewAssembler()
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	writeInputFile := func(name, contents string) string {
		inputPath := filepath.Join(tempDir, name)
		Expect(os.WriteFile(inputPath, []byte(contents), 0644)).To(Succeed())
		return inputPath
	}

	It("assembles the core attributes in a fixed order", func() {
		inputPath := writeInputFile("sample_1.fastq.gz", "@read1\nACGT\n")

		record, err := assembler.Assemble(inputPath, "/CCBR_Archive/project-1/sample_1", CombinedUpload{})
		Expect(err).NotTo(HaveOccurred())

		expectedAlias, err := filepath.EvalSymlinks(inputPath)
		Expect(err).NotTo(HaveOccurred())
		contentSum := md5.Sum([]byte("@read1\nACGT\n"))

		Expect(record.MetadataEntries).To(Equal([]Entry{
			{Attribute: "phi_content", Value: "Unspecified"},
			{Attribute: "pii_content", Value: "Unspecified"},
			{Attribute: "data_encryption_status", Value: "Unspecified"},
			{Attribute: "analysis_team", Value: "CCBR"},
			{Attribute: "object_name", Value: "/CCBR_Archive/project-1/sample_1/sample_1.fastq.gz"},
			{Attribute: "alias", Value: expectedAlias},
			{Attribute: "file_type", Value: "FASTQ"},
			{Attribute: "data_compression_status", Value: "Compressed"},
			{Attribute: "md5_checksum", Value: hex.EncodeToString(contentSum[:])},
		}))
	})

	It("classifies uncompressed files by their final extension", func() {
		inputPath := writeInputFile("RSEM.genes.expected_counts.txt", "gene\t1\n")

		record, err := assembler.Assemble(inputPath, "/CCBR_Archive", CombinedUpload{})
		Expect(err).NotTo(HaveOccurred())

		Expect(record.MetadataEntries).To(ContainElement(Entry{Attribute: FileTypeAttribute, Value: "COUNTS"}))
		Expect(record.MetadataEntries).To(ContainElement(Entry{Attribute: DataCompressionStatusAttribute, Value: "Not Compressed"}))
	})

	It("resolves the alias through symlinks", func() {
		realPath := writeInputFile("real.txt", "real contents")
		linkPath := filepath.Join(tempDir, "link.txt")
		Expect(os.Symlink(realPath, linkPath)).To(Succeed())

		record, err := assembler.Assemble(linkPath, "/CCBR_Archive", CombinedUpload{})
		Expect(err).NotTo(HaveOccurred())

		expectedAlias, err := filepath.EvalSymlinks(realPath)
		Expect(err).NotTo(HaveOccurred())

		Expect(record.MetadataEntries).To(ContainElement(Entry{Attribute: AliasAttribute, Value: expectedAlias}))
		Expect(record.MetadataEntries).To(ContainElement(Entry{Attribute: ObjectNameAttribute, Value: "/CCBR_Archive/link.txt"}))
	})

	It("builds the object name from the named path even when relative", func() {
		inputPath := writeInputFile("report.html", "<html></html>")

		workingDir, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		relativePath, err := filepath.Rel(workingDir, inputPath)
		Expect(err).NotTo(HaveOccurred())

		record, err := assembler.Assemble(relativePath, "/CCBR_Archive/project-1", CombinedUpload{})
		Expect(err).NotTo(HaveOccurred())

		expectedAlias, err := filepath.EvalSymlinks(inputPath)
		Expect(err).NotTo(HaveOccurred())

		Expect(record.MetadataEntries).To(ContainElement(Entry{Attribute: ObjectNameAttribute, Value: "/CCBR_Archive/project-1/report.html"}))
		Expect(record.MetadataEntries).To(ContainElement(Entry{Attribute: AliasAttribute, Value: expectedAlias}))
	})

	It("appends the sample mode attributes after the core set", func() {
		inputPath := writeInputFile("sample_1.bam", "alignments")

		record, err := assembler.Assemble(inputPath, "/CCBR_Archive", SampleUpload{
			SampleName:         "sample_1",
			AnalysisID:         "26071405f2f1c3a6f71d4141edb208e2",
			AnalysisCollection: "/CCBR_Archive/project-1/analysis",
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(record.MetadataEntries).To(HaveLen(13))
		Expect(record.MetadataEntries[9:]).To(Equal([]Entry{
			{Attribute: SampleNameAttribute, Value: "sample_1"},
			{Attribute: MD5AllInputsAttribute, Value: "26071405f2f1c3a6f71d4141edb208e2"},
			{Attribute: MD5AllInputsSerialAttribute, Value: "260-f7-08e2"},
			{Attribute: AnalysisCollectionAttribute, Value: "/CCBR_Archive/project-1/analysis"},
		}))
	})

	It("returns an error naming the file when the canonical path cannot be resolved", func() {
		missingPath := filepath.Join(tempDir, "never-created.txt")

		_, err := assembler.Assemble(missingPath, "/CCBR_Archive", CombinedUpload{})
		Expect(err).To(MatchError(ContainSubstring(ResolveAliasFailureFormat, missingPath)))
	})

	It("returns an error when the file contents cannot be read", func() {
		_, err := assembler.Assemble(tempDir, "/CCBR_Archive", CombinedUpload{})
		Expect(err).To(MatchError(ContainSubstring(checksum.ReadInputFileFailureFormat, tempDir)))
	})
})
