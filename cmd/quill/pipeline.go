// Package main provides the entry point for the quill CLI.
package main

import (
	"context"

	"github.com/quillcv/quill/internal/cache"
	"github.com/quillcv/quill/internal/config"
	"github.com/quillcv/quill/internal/cv"
	"github.com/quillcv/quill/internal/mcp"
	"github.com/quillcv/quill/internal/notion"
	"github.com/quillcv/quill/internal/render"
)

// pipeline wires the configuration, cache, Notion source, and renderer.
// It backs both the CLI commands and the MCP tools.
type pipeline struct {
	cfg   *config.Config
	store *cache.Cache
}

// newPipeline loads the configuration and prepares the cache handle.
// Credentials are not required yet; only a cache miss needs them.
func newPipeline(configFile string) (*pipeline, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	return &pipeline{cfg: cfg, store: cache.New(cfg.CacheFile)}, nil
}

// Groups returns the sorted category groups and whether they came from the
// cache snapshot. refresh forces a fetch even when the snapshot is fresh.
func (p *pipeline) Groups(ctx context.Context, refresh bool) (cv.Groups, cv.Categories, bool, error) {
	if !refresh && p.store.Fresh(p.cfg.CacheTTL) {
		groups, ok, err := p.store.Load()
		if err != nil {
			return nil, cv.Categories{}, false, err
		}
		if ok {
			return cv.SortGroups(groups), p.cfg.Categories, true, nil
		}
	}

	if err := p.cfg.Validate(); err != nil {
		return nil, cv.Categories{}, false, err
	}

	src := &notion.Source{
		Client:      notion.New(p.cfg.Token),
		DatabaseID:  p.cfg.DatabaseID,
		VisibleProp: p.cfg.Properties.Visible,
	}
	groups, err := cv.Build(ctx, src, p.cfg.Properties, p.cfg.Categories)
	if err != nil {
		return nil, cv.Categories{}, false, err
	}
	if err := p.store.Save(groups); err != nil {
		return nil, cv.Categories{}, false, err
	}
	return cv.SortGroups(groups), p.cfg.Categories, false, nil
}

// Render builds the CV data and writes the rendered template to the
// configured output file.
func (p *pipeline) Render(ctx context.Context, refresh bool) (mcp.Result, error) {
	groups, cats, fromCache, err := p.Groups(ctx, refresh)
	if err != nil {
		return mcp.Result{}, err
	}

	data := render.BuildData(groups, cats)
	if err := render.WriteFile(p.cfg.Template, p.cfg.OutFile, data); err != nil {
		return mcp.Result{}, err
	}

	entries := 0
	for _, section := range data.Sections {
		entries += len(section.Entries)
	}
	return mcp.Result{
		OutFile:   p.cfg.OutFile,
		Sections:  len(data.Sections),
		Entries:   entries,
		FromCache: fromCache,
	}, nil
}

// Status reports the configuration and cache state.
func (p *pipeline) Status(_ context.Context) (mcp.Status, error) {
	return mcp.Status{
		Configured: p.cfg.Validate() == nil,
		Template:   p.cfg.Template,
		OutFile:    p.cfg.OutFile,
		CachePath:  p.store.Path(),
		CacheTTL:   p.cfg.CacheTTL.String(),
		CacheFresh: p.store.Fresh(p.cfg.CacheTTL),
	}, nil
}
