package resources

import (
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCacheDirPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.resources")
	defer teardown()
	//
	if _, err := os.UserCacheDir(); err != nil {
		t.Skip("no user cache directory on this system")
	}
	conf := testconfig.Conf{
		AppKey: "notefonts-test",
	}
	cachedir, err := CacheDirPath(conf, "sdf")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(cachedir, "sdf") || !strings.Contains(cachedir, "notefonts-test") {
		t.Errorf("unexpected cache dir %s", cachedir)
	}
	if !(OSFileSystem{}).Exists(cachedir) {
		t.Errorf("expected cache dir %s to be created", cachedir)
	}
}
