// Package editor implements the interactive line-editing loop: prompt,
// raw-mode editing with in-place insert/delete and history recall, and
// guaranteed terminal restoration on every return path.
package editor
