package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/hitmaker/internal/models"
)

func (s *Store) AddWidgetBinding(b models.WidgetBinding) error {
	_, err := s.db.Exec(`
		INSERT INTO widgets (id, hitmaker_id, created_at) VALUES (?, ?, ?)`,
		b.ID, b.HitmakerID, b.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert widget binding: %w", err)
	}
	return nil
}

func (s *Store) GetWidgetBinding(id string) (models.WidgetBinding, error) {
	row := s.db.QueryRow("SELECT id, hitmaker_id, created_at FROM widgets WHERE id = ?", id)

	var b models.WidgetBinding
	var createdAt string
	if err := row.Scan(&b.ID, &b.HitmakerID, &createdAt); err != nil {
		return models.WidgetBinding{}, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.WidgetBinding{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	b.CreatedAt = t

	return b, nil
}

func (s *Store) GetAllWidgetBindings() ([]models.WidgetBinding, error) {
	rows, err := s.db.Query("SELECT id, hitmaker_id, created_at FROM widgets ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bindings []models.WidgetBinding
	for rows.Next() {
		var b models.WidgetBinding
		var createdAt string
		if err := rows.Scan(&b.ID, &b.HitmakerID, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		b.CreatedAt = t
		bindings = append(bindings, b)
	}

	return bindings, rows.Err()
}

func (s *Store) DeleteWidgetBinding(id string) error {
	res, err := s.db.Exec("DELETE FROM widgets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete widget binding: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("widget binding %s not found", id)
	}
	return nil
}
