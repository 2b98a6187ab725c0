package checksum_test

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/kezhuw/checksum"
	"github.com/kezhuw/checksum/internal/block"
	"github.com/kezhuw/checksum/internal/compress"
	"github.com/kezhuw/checksum/internal/record"
	"github.com/stretchr/testify/suite"
)

type SealTestSuite struct {
	opts *checksum.Options

	suite.Suite
}

func (suite *SealTestSuite) seal(content []byte) []byte {
	require := suite.Require()
	var sealed bytes.Buffer
	n, err := checksum.Seal(&sealed, bytes.NewReader(content), suite.opts)
	require.NoError(err)
	require.Equal(int64(len(content)), n)
	return sealed.Bytes()
}

func (suite *SealTestSuite) unseal(sealed []byte) ([]byte, error) {
	var out bytes.Buffer
	n, err := checksum.Unseal(&out, bytes.NewReader(sealed), suite.opts)
	suite.Require().Equal(int64(out.Len()), n)
	return out.Bytes(), err
}

func (suite *SealTestSuite) TestRoundTrip() {
	require := suite.Require()
	random := make([]byte, 300*1024+17)
	rand.Read(random)
	for _, content := range [][]byte{
		nil,
		[]byte("a"),
		bytes.Repeat([]byte("sealed"), 50000),
		random,
	} {
		out, err := suite.unseal(suite.seal(content))
		require.NoError(err)
		require.True(bytes.Equal(content, out))
	}
}

func (suite *SealTestSuite) TestCorruptPayload() {
	require := suite.Require()
	content := bytes.Repeat([]byte("0123456789abcdef"), 4096)
	sealed := suite.seal(content)
	// Inside the payload of the first block record, after the magic record.
	sealed[2*7+len("crc32seal\x01")+3] ^= 0x40
	_, err := suite.unseal(sealed)
	require.Error(err)
	require.True(checksum.IsCorrupt(err), "%v", err)
}

func (suite *SealTestSuite) TestTruncated() {
	require := suite.Require()
	sealed := suite.seal(bytes.Repeat([]byte("x"), 1000))
	_, err := suite.unseal(sealed[:len(sealed)-3])
	require.Error(err)
	require.True(checksum.IsCorrupt(err), "%v", err)
}

func (suite *SealTestSuite) TestNotSealed() {
	require := suite.Require()
	_, err := suite.unseal(nil)
	require.True(checksum.IsCorrupt(err), "%v", err)
	_, err = suite.unseal(bytes.Repeat([]byte("plain text"), 10))
	require.True(checksum.IsCorrupt(err), "%v", err)
}

func (suite *SealTestSuite) blockSize() int {
	if suite.opts == nil {
		return 0
	}
	return suite.opts.BlockSize
}

// writeRecords frames records the way Seal does, without validating them.
func (suite *SealTestSuite) writeRecords(records ...[]byte) []byte {
	require := suite.Require()
	var buf bytes.Buffer
	w := record.NewWriter(&buf, suite.blockSize(), 0)
	for _, rec := range records {
		require.NoError(w.Write(rec))
	}
	return buf.Bytes()
}

func blockRecord(content []byte) []byte {
	rec, err := block.Encode([]byte{'B'}, content, compress.NoCompression)
	if err != nil {
		panic(err)
	}
	return rec
}

func trailerRecord(length uint64, sum uint32) []byte {
	rec := make([]byte, 13)
	rec[0] = 'T'
	binary.LittleEndian.PutUint64(rec[1:9], length)
	binary.LittleEndian.PutUint32(rec[9:], sum)
	return rec
}

var sealMagic = []byte("crc32seal\x01")

func (suite *SealTestSuite) TestMalformedStreams() {
	require := suite.Require()
	content := []byte("123456789")
	sum := checksum.Checksum(content)

	out, err := suite.unseal(suite.writeRecords(sealMagic, blockRecord(content), trailerRecord(9, sum)))
	require.NoError(err)
	require.Equal(content, out)

	for name, records := range map[string][][]byte{
		"data after trailer": {sealMagic, blockRecord(content), trailerRecord(9, sum), blockRecord(content)},
		"length mismatch":    {sealMagic, blockRecord(content), trailerRecord(10, sum)},
		"checksum mismatch":  {sealMagic, blockRecord(content), trailerRecord(9, sum+1)},
		"unknown record tag": {sealMagic, append([]byte{'X'}, content...), trailerRecord(9, sum)},
		"bad trailer":        {sealMagic, blockRecord(content), trailerRecord(9, sum)[:9]},
		"missing trailer":    {sealMagic, blockRecord(content)},
		"empty record":       {sealMagic, {}, trailerRecord(0, 0)},
		"bad magic":          {[]byte("crc32seal\x02"), trailerRecord(0, 0)},
	} {
		_, err := suite.unseal(suite.writeRecords(records...))
		require.Error(err, name)
		require.True(checksum.IsCorrupt(err), "%s: %v", name, err)
		require.Contains(err.Error(), name)
	}
}

func (suite *SealTestSuite) TestNilArguments() {
	require := suite.Require()
	var buf bytes.Buffer
	_, err := checksum.Seal(nil, &buf, suite.opts)
	require.Equal(checksum.ErrInvalidArgument, err)
	_, err = checksum.Seal(&buf, nil, suite.opts)
	require.Equal(checksum.ErrInvalidArgument, err)
	_, err = checksum.Unseal(&buf, nil, suite.opts)
	require.Equal(checksum.ErrInvalidArgument, err)
}

func TestSealDefaultOptions(t *testing.T) {
	suite.Run(t, &SealTestSuite{})
}

func TestSealNoCompression(t *testing.T) {
	suite.Run(t, &SealTestSuite{opts: &checksum.Options{Compression: checksum.NoCompression, ParanoidChecks: true}})
}

func TestSealSmallBlocks(t *testing.T) {
	suite.Run(t, &SealTestSuite{opts: &checksum.Options{BlockSize: 512, ChunkSize: 1000, ParanoidChecks: true}})
}
