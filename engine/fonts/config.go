package fonts

import (
	"github.com/npillmayer/notefonts/core/locate/resources"
	"github.com/npillmayer/notefonts/engine/rendercache"
	"github.com/npillmayer/schuko"
)

// Configuration keys
const (
	ConfCachePersistent  = "fonts.cache-persistent"
	ConfCacheDir         = "fonts.cache-dir"
	ConfCacheResourceDir = "fonts.cache-resource-dir"
	ConfRevision         = "fonts.revision"
	ConfCacheDebug       = "fonts.cache-debug"
)

// OptionsFromConfig returns engine options set up from configuration.
// Currently this configures the render cache:
//
//	fonts.cache-persistent    write rendered glyphs to disk
//	fonts.cache-dir           runtime directory, defaults to <user cache>/<app-key>/sdf
//	fonts.cache-resource-dir  read-only directory of pre-rendered glyphs
//	fonts.revision            revision of the pre-rendered glyphs
//	fonts.cache-debug         panic on duplicate cache entries
//
// fsys may be nil, in which case the OS file system is used.
func OptionsFromConfig(conf schuko.Configuration, fsys resources.FileSystem) []Option {
	if fsys == nil {
		fsys = resources.OSFileSystem{}
	}
	opts := rendercache.Options{FS: fsys}
	if conf != nil {
		opts.Persistent = conf.GetBool(ConfCachePersistent)
		opts.CacheDir = conf.GetString(ConfCacheDir)
		opts.ResourceDir = conf.GetString(ConfCacheResourceDir)
		opts.Revision = conf.GetString(ConfRevision)
		opts.Debug = conf.GetBool(ConfCacheDebug)
	}
	if opts.Persistent && opts.CacheDir == "" {
		dir, err := resources.CacheDirPath(conf, "sdf")
		if err != nil {
			tracer().Errorf("no cache directory, rendered glyphs will not be persisted: %v", err)
			opts.Persistent = false
		}
		opts.CacheDir = dir
	}
	tracer().Debugf("render cache: persistent=%v dir=%q resources=%q revision=%q",
		opts.Persistent, opts.CacheDir, opts.ResourceDir, opts.Revision)
	return []Option{
		WithFileSystem(fsys),
		WithRenderCache(rendercache.New(opts)),
	}
}
