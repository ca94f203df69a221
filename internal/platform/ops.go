package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/outline/pkg/adapters/fs"
	"github.com/aretw0/outline/pkg/core"
)

// Init prepares a store and returns its repository.
// The uri is adapter-specific (a directory for "fs").
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	var err error

	switch o.adapter {
	case "fs":
		repo, err = initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// initFS builds the filesystem repository from the option map.
func initFS(path string, o *options) (core.Repository, error) {
	autoInit, _ := o.config["auto_init"].(bool)
	gitless, _ := o.config["gitless"].(bool)
	tempDir, _ := o.config["temp_dir"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	strict, _ := o.config["strict"].(bool)
	systemDir, _ := o.config["system_dir"].(string)
	extension, _ := o.config["extension"].(string)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))
	readOnly, _ := o.config["read_only"].(bool)

	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}
	bypassSafety := readOnly || !devSafety

	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolved := ResolvePath(path, useTemp)

	if o.logger != nil {
		switch {
		case useTemp:
			o.logger.Warn("running in SAFE MODE (dev sandbox)", "original_path", path, "resolved_path", resolved)
		case IsDevRun() && readOnly:
			o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", resolved)
		case IsDevRun():
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
	}

	if systemDir == "" {
		systemDir = fs.DefaultSystemDir
	}

	// Without an explicit choice, versioning follows the directory: an
	// existing .git keeps it, an existing system dir without .git stays
	// gitless and a fresh auto-initialized store gets git.
	if _, ok := o.config["gitless"]; !ok {
		gitless = detectGitless(resolved, systemDir, autoInit)
		if gitless && o.logger != nil {
			o.logger.Debug("auto-detected gitless mode", "reason", ".git missing")
		}
	}

	repo := fs.NewRepository(fs.Config{
		Path:         resolved,
		AutoInit:     autoInit,
		Gitless:      gitless,
		MustExist:    mustExist || (!autoInit && !useTemp),
		ReadOnly:     readOnly,
		Strict:       strict,
		Logger:       o.logger,
		SystemDir:    systemDir,
		Extension:    extension,
		ErrorHandler: errorHandler,
	})

	for ext, s := range o.serializers {
		serializer, ok := s.(fs.Serializer)
		if !ok {
			return nil, fmt.Errorf("serializer for %s must implement fs.Serializer", ext)
		}
		repo.RegisterSerializer(ext, serializer)
	}

	return repo, nil
}

func detectGitless(path, systemDir string, autoInit bool) bool {
	if hasFile(path, ".git") {
		return false
	}
	if !autoInit {
		return true
	}
	return hasFile(path, systemDir)
}
