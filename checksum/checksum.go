package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	OpenInputFileFailureFormat = "Could not open input file %s"
	ReadInputFileFailureFormat = "Could not read input file %s"

	readChunkSize = 64 * 1024
)

// FileMD5 computes the hex-encoded MD5 digest of the file at filePath,
// streaming the contents in fixed-size chunks so large inputs hash in
// bounded memory.
func FileMD5(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrapf(err, OpenInputFileFailureFormat, filePath)
	}
	defer f.Close()

	hash := md5.New()
	if _, err := io.CopyBuffer(hash, f, make([]byte, readChunkSize)); err != nil {
		return "", errors.Wrapf(err, ReadInputFileFailureFormat, filePath)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
