// Package classify derives controlled-vocabulary metadata values from file
// names alone; it never inspects file contents.
package classify

import "strings"

const (
	CompressedValue    = "Compressed"
	NotCompressedValue = "Not Compressed"

	CountsFileType = "COUNTS"
	FastqFileType  = "FASTQ"
)

// Extensions whose presence marks a file as compressed. Matching is
// case-sensitive; callers lowercase the extension first.
var compressedExtensions = map[string]bool{
	"bz2":  true,
	"gz":   true,
	"bam":  true,
	"xz":   true,
	"rar":  true,
	"tar":  true,
	"tbz2": true,
	"tgz":  true,
	"zip":  true,
	"7z":   true,
}

// Checksum and metadata sidecars keep their computed type even when their
// names contain an override substring.
var overrideExemptTypes = map[string]bool{
	"MD5":  true,
	"JSON": true,
}

// FileType infers the type of a file from its name. Any trailing run of
// '.', 'g', and 'z' characters is stripped (so "sample.gz.gz" becomes
// "sample" and "archive.tgz" becomes "archive.t"), then the uppercased final
// dot-delimited segment is the default type. Names containing "counts" or
// "fastq" override the default unless the computed type is MD5 or JSON.
func FileType(filename string) string {
	stripped := strings.TrimRight(filename, ".gz")
	segments := strings.Split(stripped, ".")
	fileType := strings.ToUpper(segments[len(segments)-1])

	if !overrideExemptTypes[fileType] {
		lowered := strings.ToLower(stripped)
		if strings.Contains(lowered, "counts") {
			return CountsFileType
		}
		if strings.Contains(lowered, "fastq") {
			return FastqFileType
		}
	}

	return fileType
}

// CompressionStatus reports whether an extension belongs to the fixed set of
// compressed-archive extensions.
func CompressionStatus(extension string) string {
	if compressedExtensions[extension] {
		return CompressedValue
	}
	return NotCompressedValue
}

// Extension returns the trailing dot-delimited segment of a filename, or the
// whole name when it contains no dot.
func Extension(filename string) string {
	segments := strings.Split(filename, ".")
	return segments[len(segments)-1]
}
