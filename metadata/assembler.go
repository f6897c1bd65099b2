package metadata

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/CCBR/dme-metadata-generator/checksum"
	"github.com/CCBR/dme-metadata-generator/classify"
	"github.com/pkg/errors"
)

const ResolveAliasFailureFormat = "Could not resolve canonical path for input file %s"

type Assembler struct{}

func NewAssembler() Assembler {
	return Assembler{}
}

// Assemble builds the ordered metadata record for one input file: the fixed
// core attribute set first, then the mode's optional attributes.
func (a Assembler) Assemble(inputPath, collectionPath string, mode Mode) (Record, error) {
	baseName := filepath.Base(inputPath)

	alias, err := canonicalPath(inputPath)
	if err != nil {
		return Record{}, errors.Wrapf(err, ResolveAliasFailureFormat, inputPath)
	}

	md5Checksum, err := checksum.FileMD5(inputPath)
	if err != nil {
		return Record{}, err
	}

	entries := []Entry{
		{Attribute: PHIContentAttribute, Value: UnspecifiedValue},
		{Attribute: PIIContentAttribute, Value: UnspecifiedValue},
		{Attribute: DataEncryptionStatusAttribute, Value: UnspecifiedValue},
		{Attribute: AnalysisTeamAttribute, Value: AnalysisTeamValue},
		{Attribute: ObjectNameAttribute, Value: path.Join(collectionPath, baseName)},
		{Attribute: AliasAttribute, Value: alias},
		{Attribute: FileTypeAttribute, Value: classify.FileType(baseName)},
		{Attribute: DataCompressionStatusAttribute, Value: classify.CompressionStatus(strings.ToLower(classify.Extension(baseName)))},
		{Attribute: MD5ChecksumAttribute, Value: md5Checksum},
	}

	return Record{MetadataEntries: mode.appendEntries(entries)}, nil
}

func canonicalPath(inputPath string) (string, error) {
	absPath, err := filepath.Abs(inputPath)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(absPath)
}
