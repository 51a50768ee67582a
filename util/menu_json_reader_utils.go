package util

import (
	"encoding/json"
	"fmt"
	"os"

	"cardapio-server/models"
)

// ParseMenuDocument decodes a menu document ("alimentos" or "semana" shape).
func ParseMenuDocument(data []byte) (*models.MenuDocument, error) {
	var doc models.MenuDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal MenuDocument: %w", err)
	}
	return &doc, nil
}

// ReadMenuDocumentFromJSON loads a MenuDocument from JSON on disk.
func ReadMenuDocumentFromJSON(filePath string) (*models.MenuDocument, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return ParseMenuDocument(data)
}

// ReadCommentsFromJSON decodes a stored comment list. Empty input is an empty list.
func ReadCommentsFromJSON(data string) ([]models.Comment, error) {
	comments := []models.Comment{}
	if data == "" {
		return comments, nil
	}
	if err := json.Unmarshal([]byte(data), &comments); err != nil {
		return []models.Comment{}, fmt.Errorf("failed to unmarshal comments: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// WriteCommentsToJSON encodes the comment list for storage.
func WriteCommentsToJSON(comments []models.Comment) (string, error) {
	if comments == nil {
		comments = []models.Comment{}
	}
	data, err := json.Marshal(comments)
	if err != nil {
		return "", fmt.Errorf("failed to marshal comments: %w", err)
	}
	return string(data), nil
}
