package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializePlain(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "data", "festival.csv")
	m := NewManager(nil, "festival.csv", dest, nil, nil)

	content := []byte("콘텐츠명,구군\n부산불꽃축제,수영구\n")
	require.NoError(t, m.materialize(bytes.NewReader(content)))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestMaterializeZstd(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "festival.csv")
	m := NewManager(nil, "festival.csv.zst", dest, nil, nil)

	content := []byte("콘텐츠명,구군\n부산국제영화제,해운대구\n")
	var compressed bytes.Buffer
	enc, err := zstd.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = enc.Write(content)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	require.NoError(t, m.materialize(&compressed))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestMaterializeReplacesExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "festival.csv")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o644))

	m := NewManager(nil, "festival.csv", dest, nil, nil)
	require.NoError(t, m.materialize(bytes.NewReader([]byte("new"))))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	// No temp files should survive a successful replace.
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCleanETag(t *testing.T) {
	assert.Equal(t, "", cleanETag(nil))
	assert.Equal(t, "abc123", cleanETag(aws.String(`"abc123"`)))
	assert.Equal(t, "abc123", cleanETag(aws.String("abc123")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(&types.NotFound{}))
	assert.False(t, isNotFound(assert.AnError))
	assert.False(t, isNotFound(nil))
}
