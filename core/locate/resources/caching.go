package resources

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/schuko"
)

// AppKey is the configuration key of the application specific cache folder.
const AppKey = "app-key"

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(conf schuko.Configuration, subfolders ...string) (string, error) {
	appkey := ""
	if conf != nil {
		appkey = conf.GetString(AppKey)
	}
	tracer().Debugf("config[%s] = %s", AppKey, appkey)
	if appkey == "" {
		tracer().Errorf("application key is not set")
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", core.WrapError(err, core.EUNAVAILABLE, "no user cache directory")
	}
	subs := filepath.Join(subfolders...)
	cachedir = filepath.Join(cachedir, appkey, subs)
	tracer().Infof("caching in %s", cachedir)
	if err = (OSFileSystem{}).MakePath(cachedir); err != nil {
		return "", err
	}
	return cachedir, nil
}
