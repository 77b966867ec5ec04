package attachments

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/s21platform/chat-api/internal/model"
)

var imageExtensions = map[string]struct{}{
	".jpg": {},
	".png": {},
}

// Store writes attachment blobs under a room-scoped, content-addressed
// path: {root}/{roomID}/{sha256(data)}{ext}. Identical payloads map to the
// same file, so a repeated upload overwrites the file with the same bytes
// and concurrent saves of the same content cannot corrupt each other.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachments directory: %w", err)
	}

	return &Store{root: root}, nil
}

// Save stores data and returns the resolved message type together with the
// content digest used as the row content.
func (s *Store) Save(roomID int64, data []byte, filename string) (string, string, error) {
	digest := fmt.Sprintf("%x", sha256.Sum256(data))

	ext := ""
	if filename != "" {
		ext = strings.ToLower(filepath.Ext(filename))
	}

	dir := filepath.Join(s.root, strconv.FormatInt(roomID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create room directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, digest+ext), data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write attachment: %w", err)
	}

	messageType := model.MessageTypeFile
	if _, ok := imageExtensions[ext]; ok {
		messageType = model.MessageTypeImage
	}

	return messageType, digest, nil
}
