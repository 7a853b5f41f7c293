package canvasflow

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// Snapshot queues a labeled snapshot to be captured at the end of the
// current frame's DrawTo call. The composed frame is written to SnapshotDir
// with a timestamped filename. Safe to call from Update or Draw.
func (s *Scene) Snapshot(label string) {
	s.snapshotQueue = append(s.snapshotQueue, label)
}

// SaveSnapshot composes the scene and writes it to path. The encoder is
// chosen from the extension: ".webp" writes WebP, anything else PNG.
func (s *Scene) SaveSnapshot(path string) error {
	return writeImage(path, s.Compose())
}

// flushSnapshots composes the frame once for every queued label and writes
// each file. Called at the end of DrawTo.
func (s *Scene) flushSnapshots() {
	if len(s.snapshotQueue) == 0 {
		return
	}
	defer func() { s.snapshotQueue = s.snapshotQueue[:0] }()

	if err := os.MkdirAll(s.SnapshotDir, 0o755); err != nil {
		logf("snapshot: mkdir %s: %v", s.SnapshotDir, err)
		return
	}

	img := s.Compose()
	stamp := time.Now().Format("20060102_150405")
	ext := snapshotExt(s.SnapshotFormat)

	for _, label := range s.snapshotQueue {
		path := filepath.Join(s.SnapshotDir, fmt.Sprintf("%s_%s%s", stamp, sanitizeLabel(label), ext))
		if err := writeImage(path, img); err != nil {
			logf("snapshot: %v", err)
		}
	}
}

func snapshotExt(format string) string {
	if strings.EqualFold(format, "webp") {
		return ".webp"
	}
	return ".png"
}

// writeImage encodes img to path as WebP or PNG depending on the extension.
func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		err = nativewebp.Encode(f, img, nil)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
