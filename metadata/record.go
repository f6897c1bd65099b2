package metadata

import "github.com/CCBR/dme-metadata-generator/identifier"

const (
	PHIContentAttribute            = "phi_content"
	PIIContentAttribute            = "pii_content"
	DataEncryptionStatusAttribute  = "data_encryption_status"
	AnalysisTeamAttribute          = "analysis_team"
	ObjectNameAttribute            = "object_name"
	AliasAttribute                 = "alias"
	FileTypeAttribute              = "file_type"
	DataCompressionStatusAttribute = "data_compression_status"
	MD5ChecksumAttribute           = "md5_checksum"
	SampleNameAttribute            = "sample_name"
	MD5AllInputsAttribute          = "md5_all_inputs"
	MD5AllInputsSerialAttribute    = "md5_all_inputs_serial"
	AnalysisCollectionAttribute    = "analysis_collection"

	UnspecifiedValue  = "Unspecified"
	AnalysisTeamValue = "CCBR"
)

type Record struct {
	MetadataEntries []Entry `json:"metadataEntries"`
}

type Entry struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// Mode selects the optional attributes appended after the core set. It is
// implemented only by SampleUpload and CombinedUpload.
type Mode interface {
	appendEntries(entries []Entry) []Entry
}

// SampleUpload carries the per-sample attributes. Empty fields are treated
// as not supplied and their attributes omitted.
type SampleUpload struct {
	SampleName         string
	AnalysisID         string
	AnalysisCollection string
}

// CombinedUpload carries the attributes for files that merge results across
// samples.
type CombinedUpload struct {
	AnalysisID string
}

func (m SampleUpload) appendEntries(entries []Entry) []Entry {
	if m.SampleName != "" {
		entries = append(entries, Entry{Attribute: SampleNameAttribute, Value: m.SampleName})
	}
	entries = appendAnalysisIdentifier(entries, m.AnalysisID)
	if m.AnalysisCollection != "" {
		entries = append(entries, Entry{Attribute: AnalysisCollectionAttribute, Value: m.AnalysisCollection})
	}
	return entries
}

func (m CombinedUpload) appendEntries(entries []Entry) []Entry {
	return appendAnalysisIdentifier(entries, m.AnalysisID)
}

func appendAnalysisIdentifier(entries []Entry, analysisID string) []Entry {
	if analysisID == "" {
		return entries
	}

	entries = append(entries, Entry{Attribute: MD5AllInputsAttribute, Value: analysisID})
	if serial, ok := identifier.SerialForm(analysisID); ok {
		entries = append(entries, Entry{Attribute: MD5AllInputsSerialAttribute, Value: serial})
	}
	return entries
}
