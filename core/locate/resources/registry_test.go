package resources

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryZipResources(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.resources")
	defer teardown()
	//
	data := zipOf(t, map[string]string{
		"fonts/edwin/fontslist.json": "[]",
		"fonts/edwin/Edwin.otf":      "otf",
		"fonts/edwin/sub/x.otf":      "nested",
	})
	reg := NewRegistry(nil)
	reg.AddZipData([]string{"fonts/edwin/fontslist.json", "fonts/edwin/Edwin.otf", "fonts/edwin/sub/x.otf"}, data)
	assert.True(t, reg.Exists(":/fonts/edwin/Edwin.otf"))
	assert.False(t, reg.Exists(":/fonts/edwin/Missing.otf"))
	b, err := reg.ReadFile(":/fonts/edwin/Edwin.otf")
	require.NoError(t, err)
	assert.Equal(t, "otf", string(b))
	files, err := reg.ScanFiles(":/fonts/edwin", ".otf")
	require.NoError(t, err)
	assert.Equal(t, []string{":/fonts/edwin/Edwin.otf"}, files, "expected current directory only")
	_, err = reg.ReadFile(":/fonts/none.otf")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, core.EINVALID, core.Code(reg.WriteFile(":/fonts/x", nil)))
}

func TestRegistryMountedFS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.resources")
	defer teardown()
	//
	reg := NewRegistry(nil)
	reg.AddFS("smufl", fstest.MapFS{
		"metadata.json": {Data: []byte("{}")},
		"sdf/a.sdf":     {Data: []byte{1, 2}},
	})
	assert.True(t, reg.Exists(":/smufl/metadata.json"))
	b, err := reg.ReadFile(":/smufl/sdf/a.sdf")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	files, err := reg.ScanFiles(":/smufl/sdf", ".sdf")
	require.NoError(t, err)
	assert.Equal(t, []string{":/smufl/sdf/a.sdf"}, files)
}

func TestRegistryDelegatesToOS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.resources")
	defer teardown()
	//
	dir := t.TempDir()
	reg := NewRegistry(nil)
	p := filepath.Join(dir, "sub", "f.txt")
	require.NoError(t, reg.MakePath(filepath.Dir(p)))
	require.NoError(t, reg.WriteFile(p, []byte("hello")))
	assert.True(t, reg.Exists(p))
	files, err := reg.ScanFiles(filepath.Dir(p), ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{p}, files)
	require.NoError(t, reg.Remove(p))
	assert.False(t, reg.Exists(p))
	require.NoError(t, reg.Remove(p), "removing a missing file is not an error")
	_, err = reg.ReadFile(p)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func zipOf(t *testing.T, files map[string]string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
