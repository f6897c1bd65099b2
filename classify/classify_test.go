package classify_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/CCBR/dme-metadata-generator/classify"
)

var _ = Describe("FileType", func() {
	DescribeTable(
		"infers the type from the file name",
		func(filename, expectedType string) {
			Expect(FileType(filename)).To(Equal(expectedType))
		},
		Entry("uppercases the final extension", "report.html", "HTML"),
		Entry("uppercases a mixed-case extension", "table.Tsv", "TSV"),
		Entry("uses the whole name when there is no extension", "README", "README"),
		Entry("strips a gzip suffix before inferring", "annotations.bed.gz", "BED"),
		Entry("strips repeated gzip suffixes", "sample.gz.gz", "SAMPLE"),
		Entry("strips trailing gz characters out of other extensions", "archive.tgz", "T"),
		Entry("classifies gzipped reads as fastq", "sample_1.fastq.gz", "FASTQ"),
		Entry("classifies by fastq anywhere in the name", "reads_fastq.out", "FASTQ"),
		Entry("classifies by counts anywhere in the name", "RSEM.genes.expected_counts.txt", "COUNTS"),
		Entry("prefers counts over fastq", "counts.fastq.tsv", "COUNTS"),
		Entry("matches overrides case-insensitively", "Sample_FASTQ.out", "FASTQ"),
		Entry("keeps md5 sidecars out of the overrides", "sample.fastq.md5", "MD5"),
		Entry("keeps json sidecars out of the overrides", "counts.json", "JSON"),
	)
})

var _ = Describe("CompressionStatus", func() {
	DescribeTable(
		"classifies compressed-archive extensions",
		func(extension, expectedStatus string) {
			Expect(CompressionStatus(extension)).To(Equal(expectedStatus))
		},
		Entry("gz", "gz", CompressedValue),
		Entry("bz2", "bz2", CompressedValue),
		Entry("bam", "bam", CompressedValue),
		Entry("xz", "xz", CompressedValue),
		Entry("rar", "rar", CompressedValue),
		Entry("tar", "tar", CompressedValue),
		Entry("tbz2", "tbz2", CompressedValue),
		Entry("tgz", "tgz", CompressedValue),
		Entry("zip", "zip", CompressedValue),
		Entry("7z", "7z", CompressedValue),
		Entry("txt", "txt", NotCompressedValue),
		Entry("fastq", "fastq", NotCompressedValue),
		Entry("empty", "", NotCompressedValue),
		Entry("uppercase extensions do not match", "GZ", NotCompressedValue),
	)
})

var _ = Describe("Extension", func() {
	DescribeTable(
		"returns the trailing dot-delimited segment",
		func(filename, expectedExtension string) {
			Expect(Extension(filename)).To(Equal(expectedExtension))
		},
		Entry("single extension", "reads.bam", "bam"),
		Entry("multiple extensions", "sample_1.fastq.gz", "gz"),
		Entry("no extension", "README", "README"),
		Entry("trailing dot", "oddly-named.", ""),
	)
})
