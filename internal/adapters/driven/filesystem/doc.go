// Package filesystem provides driven adapters backed by the local
// filesystem: the LaTeX document loader, the dictionary wordlist loader
// and an fsnotify based change watcher.
package filesystem
