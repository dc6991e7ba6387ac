package viz

import (
	"io"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/michaeljayl/graphicsn/internal/config"
)

// ReloadMsg carries a config file that changed on disk.
type ReloadMsg struct {
	Config *config.Config
	Err    error
}

// Watcher reloads one config file whenever it is written. It watches the
// parent directory so editors that replace the file are still seen.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
	out  chan ReloadMsg
	done chan struct{}
	log  *slog.Logger
}

func Watch(path string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		path: abs,
		fs:   fw,
		out:  make(chan ReloadMsg, 1),
		done: make(chan struct{}),
		log:  log,
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			cfg, err := config.Load(w.path)
			if err == nil {
				err = cfg.Validate()
			}
			w.log.Debug("config changed", "path", w.path, "err", err)
			select {
			case w.out <- ReloadMsg{Config: cfg, Err: err}:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

// Next waits for the following reload.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.out:
			return msg
		case <-w.done:
			return nil
		}
	}
}

func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fs.Close()
}
