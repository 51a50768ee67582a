package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"cardapio-server/config"
	"cardapio-server/dao/storage"
	"cardapio-server/models"
	"cardapio-server/util"
)

var ErrInvalidComment = errors.New("invalid comment")

// ValidationError names the comment field that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidComment
}

// CommentService keeps the visitor comments as a JSON array in profile storage.
type CommentService struct {
	storage *storage.ProfileStorageDAO
	mu      sync.Mutex
	now     func() time.Time
}

func NewCommentService(storage *storage.ProfileStorageDAO) *CommentService {
	return &CommentService{
		storage: storage,
		now:     time.Now,
	}
}

// Append validates and stores a new comment at the end of the profile list.
func (cs *CommentService) Append(profileID, author string, rating int, body string) (models.Comment, error) {
	author = strings.TrimSpace(author)
	body = strings.TrimSpace(body)

	switch {
	case author == "":
		return models.Comment{}, &ValidationError{Field: "nome", Message: "Informe seu nome."}
	case body == "":
		return models.Comment{}, &ValidationError{Field: "comentario", Message: "Escreva um comentário."}
	case rating < models.MIN_RATING || rating > models.MAX_RATING:
		return models.Comment{}, &ValidationError{
			Field:   "nota",
			Message: fmt.Sprintf("A nota deve estar entre %d e %d.", models.MIN_RATING, models.MAX_RATING),
		}
	}

	comment := models.Comment{
		Author:    author,
		Rating:    rating,
		Body:      body,
		CreatedAt: cs.now(),
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	comments := cs.read(profileID)
	comments = append(comments, comment)
	if err := cs.write(profileID, comments); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// List returns the comments in insertion order. Storage and parse failures yield an empty list.
func (cs *CommentService) List(profileID string) []models.Comment {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.read(profileID)
}

// DeleteAt removes the comment at index after re-reading storage. It reports
// false and leaves storage untouched when index is out of range.
func (cs *CommentService) DeleteAt(profileID string, index int) (bool, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	comments := cs.read(profileID)
	if index < 0 || index >= len(comments) {
		return false, nil
	}
	comments = append(comments[:index], comments[index+1:]...)
	if err := cs.write(profileID, comments); err != nil {
		return false, err
	}
	log.Printf("[CommentService] Deleted comment %d for profile %s", index, profileID)
	return true, nil
}

func (cs *CommentService) read(profileID string) []models.Comment {
	raw, ok, err := cs.storage.GetItem(profileID, config.COMMENTS_STORAGE_KEY)
	if err != nil {
		log.Printf("[CommentService] %v", err)
		return []models.Comment{}
	}
	if !ok {
		return []models.Comment{}
	}
	comments, err := util.ReadCommentsFromJSON(raw)
	if err != nil {
		log.Printf("[CommentService] Ignoring unparsable comments for profile %s: %v", profileID, err)
	}
	return comments
}

// write drops the key once the list is empty.
func (cs *CommentService) write(profileID string, comments []models.Comment) error {
	if len(comments) == 0 {
		return cs.storage.RemoveItem(profileID, config.COMMENTS_STORAGE_KEY)
	}
	raw, err := util.WriteCommentsToJSON(comments)
	if err != nil {
		return err
	}
	return cs.storage.SetItem(profileID, config.COMMENTS_STORAGE_KEY, raw)
}
