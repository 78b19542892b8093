package uploader

import (
	"fmt"
	"testing"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFile(name string, size int64) LocalFile {
	return LocalFile{
		Path:         "/tmp/" + name,
		Name:         name,
		Size:         size,
		LastModified: time.Unix(1700000000, 0),
		ContentType:  "application/pdf",
	}
}

func TestPartitionEmptySelection(t *testing.T) {
	out := Partition(nil, nil, 5)
	assert.Empty(t, out.Accepted)
	assert.True(t, out.Rejected.Empty())
	assert.Equal(t, "", out.Rejected.Summary())
}

func TestPartitionOversizedRejection(t *testing.T) {
	// one 11 MB file and one 2 MB file, remaining quota 5
	big := makeFile("big.tiff", 11<<20)
	small := makeFile("small.png", 2<<20)

	out := Partition([]LocalFile{big, small}, nil, 5)

	require.Len(t, out.Accepted, 1)
	assert.Equal(t, "small.png", out.Accepted[0].Name)
	require.Len(t, out.Rejected.TooLarge, 1)
	assert.Equal(t, "big.tiff", out.Rejected.TooLarge[0].Name)
	assert.Empty(t, out.Rejected.Duplicate)
	assert.Empty(t, out.Rejected.OverLimit)
}

func TestPartitionExactCeilingAccepted(t *testing.T) {
	out := Partition([]LocalFile{makeFile("edge.bin", MaxFileSize)}, nil, 1)
	assert.Len(t, out.Accepted, 1)
	assert.True(t, out.Rejected.Empty())
}

func TestPartitionOverQuotaPartialAcceptance(t *testing.T) {
	// remaining quota 1, three distinct valid files
	files := []LocalFile{
		makeFile("a.pdf", 100),
		makeFile("b.pdf", 200),
		makeFile("c.pdf", 300),
	}

	out := Partition(files, nil, 1)

	require.Len(t, out.Accepted, 1)
	assert.Equal(t, "a.pdf", out.Accepted[0].Name)
	assert.Len(t, out.Rejected.OverLimit, 2)
}

func TestPartitionDuplicateAgainstQueue(t *testing.T) {
	existing := mapset.NewSet[Identity]()
	existing.Add(makeFile("dup.pdf", 100).Identity())

	out := Partition([]LocalFile{makeFile("dup.pdf", 100), makeFile("new.pdf", 100)}, existing, 5)

	require.Len(t, out.Accepted, 1)
	assert.Equal(t, "new.pdf", out.Accepted[0].Name)
	require.Len(t, out.Rejected.Duplicate, 1)
	assert.Equal(t, "dup.pdf", out.Rejected.Duplicate[0].Name)

	// the caller's set is not mutated
	assert.Equal(t, 1, existing.Cardinality())
}

func TestPartitionDuplicateWithinSelection(t *testing.T) {
	same := makeFile("twice.pdf", 64)
	out := Partition([]LocalFile{same, same}, nil, 5)

	assert.Len(t, out.Accepted, 1)
	assert.Len(t, out.Rejected.Duplicate, 1)
}

func TestPartitionIdentityDistinguishesMtime(t *testing.T) {
	a := makeFile("same.pdf", 100)
	b := makeFile("same.pdf", 100)
	b.LastModified = a.LastModified.Add(time.Second)

	out := Partition([]LocalFile{a, b}, nil, 5)
	assert.Len(t, out.Accepted, 2, "same name+size but different mtime is a different file")
}

func TestRejectionSummary(t *testing.T) {
	out := Partition([]LocalFile{
		makeFile("huge.mov", 20<<20),
		makeFile("a.pdf", 10),
		makeFile("b.pdf", 20),
	}, nil, 1)

	msg := out.Rejected.Summary()
	assert.Contains(t, msg, "huge.mov")
	assert.Contains(t, msg, "10 MiB")
	assert.Contains(t, msg, "1 more would exceed the attachment limit")
}

func TestPartitionZeroRemaining(t *testing.T) {
	out := Partition([]LocalFile{makeFile("a.pdf", 10)}, nil, 0)
	assert.Empty(t, out.Accepted)
	assert.Len(t, out.Rejected.OverLimit, 1)
}

func TestPartitionManyFiles(t *testing.T) {
	var files []LocalFile
	for i := 0; i < 20; i++ {
		files = append(files, makeFile(fmt.Sprintf("f%02d.pdf", i), int64(i+1)))
	}

	out := Partition(files, nil, 10)
	assert.Len(t, out.Accepted, 10)
	assert.Len(t, out.Rejected.OverLimit, 10)
	// acceptance keeps selection order
	assert.Equal(t, "f00.pdf", out.Accepted[0].Name)
	assert.Equal(t, "f09.pdf", out.Accepted[9].Name)
}
