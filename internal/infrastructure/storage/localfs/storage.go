package localfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kirillkom/biocheck-converter/internal/core/domain"
)

const backupSuffix = ".backup"

// Storage reads the source questionnaire and writes generated files into
// a single output directory.
type Storage struct {
	inputPath string
	basePath  string
}

func New(inputPath, basePath string) (*Storage, error) {
	if basePath == "" {
		basePath = "."
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Storage{inputPath: inputPath, basePath: basePath}, nil
}

func (s *Storage) LoadSource(_ context.Context) (*domain.SourceDocument, error) {
	raw, err := os.ReadFile(s.inputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.WrapError(domain.ErrInputNotFound, "load source", fmt.Errorf("input file not found: %s", s.inputPath))
	}
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	var doc domain.SourceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "decode source", err)
	}
	if doc.Categories == nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "decode source", errors.New("categories missing"))
	}
	return &doc, nil
}

// WriteDocument renames an existing file at the target path to <path>.backup
// before writing the new content.
func (s *Storage) WriteDocument(_ context.Context, name string, data []byte) (domain.WriteResult, error) {
	path := filepath.Join(s.basePath, name)
	result := domain.WriteResult{Path: path, Bytes: len(data)}

	if _, err := os.Stat(path); err == nil {
		backup := path + backupSuffix
		if err := os.Rename(path, backup); err != nil {
			return domain.WriteResult{}, fmt.Errorf("backup %s: %w", path, err)
		}
		result.BackupPath = backup
	} else if !errors.Is(err, fs.ErrNotExist) {
		return domain.WriteResult{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.WriteResult{}, fmt.Errorf("write file: %w", err)
	}
	return result, nil
}
