package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-readmegen/internal/server"
	"github.com/goliatone/go-readmegen/pkg/engine"
	"github.com/goliatone/go-readmegen/pkg/renderers/markdown"
	"github.com/goliatone/go-readmegen/pkg/store"
)

var (
	flagAddr  string
	flagWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live preview and editing API",
	Long: `Serve starts a local web server: the rendered preview at /, the
editing API under /api, and a server-sent event stream at /api/events.
With --watch, edits to the profile manifest, template manifest, or the
custom sections directory reload into the running preview.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadState(false)
		if err != nil {
			return err
		}

		st := store.New(state,
			store.WithLogger(appLog),
			store.WithPath(cfg.State),
			store.WithRenderOptions(engine.Options{ContinueOnError: cfg.Render.ContinueOnError}),
		)
		defer st.Close()

		srv, err := server.New(st,
			server.WithLogger(appLog),
			server.WithMarkdownOptions(markdown.Options{
				Attribution:    cfg.Render.Attribution,
				SectionMarkers: cfg.Render.SectionMarkers,
			}),
		)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if flagWatch {
			watcher, err := watchManifests(ctx, st)
			if err != nil {
				appLog.Warn("serve: watching disabled", zap.String("error", err.Error()))
			} else {
				defer watcher.Close()
			}
		}

		addr := cfg.Addr()
		if flagAddr != "" {
			addr = flagAddr
		}
		return srv.Start(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "reload manifests on change")
	rootCmd.AddCommand(serveCmd)
}

// watchManifests watches the directories holding the profile and template
// manifests plus the custom sections directory. Directories rather than
// files, so editors that save via rename do not drop the watch.
func watchManifests(ctx context.Context, st *store.Store) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs, files := watchTargets()
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			appLog.Warn("serve: cannot watch", zap.String("dir", dir), zap.String("error", err.Error()))
		}
	}

	go func() {
		var reload *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				if !watchRelevant(event.Name, files) {
					continue
				}
				appLog.Debug("serve: change detected", zap.String("path", event.Name))
				if reload != nil {
					reload.Stop()
				}
				reload = time.AfterFunc(cfg.Watch.Debounce, func() { reloadManifests(st) })
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				appLog.Warn("serve: watch error", zap.String("error", watchErr.Error()))
			case <-ctx.Done():
				return
			}
		}
	}()
	return watcher, nil
}

// watchTargets derives the watch set from the configuration: the parent
// directories to register, and the manifest files whose events matter. The
// sections directory matches as a whole.
func watchTargets() (dirs map[string]struct{}, files map[string]struct{}) {
	dirs = make(map[string]struct{})
	files = make(map[string]struct{})

	add := func(path string) {
		if path == "" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}
		dirs[filepath.Dir(abs)] = struct{}{}
		files[abs] = struct{}{}
	}

	add(cfg.Profile)
	if _, err := os.Stat(cfg.Template); err == nil {
		add(cfg.Template)
	}
	if cfg.Sections != "" {
		if abs, err := filepath.Abs(cfg.Sections); err == nil {
			dirs[abs] = struct{}{}
			files[abs+string(filepath.Separator)] = struct{}{}
		}
	}
	return dirs, files
}

// watchRelevant reports whether an event path is one of the watched files
// or lives under a watched directory prefix. Prefix entries end in a path
// separator.
func watchRelevant(name string, files map[string]struct{}) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	for file := range files {
		if abs == file || strings.HasPrefix(abs, file) {
			return true
		}
	}
	return false
}

// reloadManifests re-reads everything the watch covers and pushes it into
// the store. Reload failures keep the running state.
func reloadManifests(st *store.Store) {
	state, err := loadState(false)
	if err != nil {
		appLog.Warn("serve: reload failed", zap.String("error", err.Error()))
		return
	}
	if err := st.SetTemplate(state.Template); err != nil {
		appLog.Warn("serve: template reload rejected", zap.String("error", err.Error()))
		return
	}
	if err := st.SetProfile(state.Profile); err != nil {
		appLog.Warn("serve: profile reload rejected", zap.String("error", err.Error()))
		return
	}
	appLog.Info("serve: manifests reloaded")
}
