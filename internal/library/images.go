package library

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an image does not exist.
var ErrNotFound = errors.New("image not found")

// ErrDuplicateName is returned when an image name is already taken.
var ErrDuplicateName = errors.New("image name already exists")

// Image is a stored named image.
type Image struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Format    string    `json:"format"` // "png" or "jpg"
	Data      []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Add stores a new named image and returns it with its generated ID.
func (s *Store) Add(name, format string, data []byte) (*Image, error) {
	if name == "" {
		return nil, fmt.Errorf("image name is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image data is required")
	}

	img := &Image{
		ID:        uuid.NewString(),
		Name:      name,
		Format:    format,
		CreatedAt: time.Now(),
	}

	_, err := s.db.Exec(
		`INSERT INTO images (id, name, format, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		img.ID, img.Name, img.Format, data, img.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return img, nil
}

// Get retrieves an image (including its data) by exact name.
func (s *Store) Get(name string) (*Image, error) {
	row := s.db.QueryRow(
		`SELECT id, name, format, data, created_at FROM images WHERE name = ?`, name)

	var img Image
	if err := row.Scan(&img.ID, &img.Name, &img.Format, &img.Data, &img.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

// List returns all images without their data, ordered by creation time.
func (s *Store) List() ([]Image, error) {
	rows, err := s.db.Query(
		`SELECT id, name, format, created_at FROM images ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.Name, &img.Format, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}

// Delete removes an image by name.
func (s *Store) Delete(name string) error {
	result, err := s.db.Exec(`DELETE FROM images WHERE name = ?`, name)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Resolve implements the name-or-index lookup used by one-shot detection:
// exact name match first, then the name parsed as a 1-based position in
// the creation-ordered list.
func (s *Store) Resolve(name string) ([]byte, bool) {
	if img, err := s.Get(name); err == nil {
		return img.Data, true
	}

	index, err := strconv.Atoi(name)
	if err != nil {
		return nil, false
	}

	images, err := s.List()
	if err != nil || index < 1 || index > len(images) {
		return nil, false
	}

	img, err := s.Get(images[index-1].Name)
	if err != nil {
		return nil, false
	}
	return img.Data, true
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
