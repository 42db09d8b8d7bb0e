package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/hitmaker/internal/models"
)

func (s *Store) AddHitmaker(h models.Hitmaker) (int64, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.Exec(`
		INSERT INTO hitmakers (name, color, start_date, icon, priority, reminder_time, reminder_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.Name, h.Color, h.StartDate, h.Icon, h.Priority, h.ReminderTime, h.ReminderDays,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert hitmaker: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetHitmaker(id int64) (models.Hitmaker, error) {
	row := s.db.QueryRow(`
		SELECT id, name, color, start_date, icon, priority, reminder_time, reminder_days
		FROM hitmakers WHERE id = ?`, id)
	return scanHitmaker(row)
}

func (s *Store) GetHitmakerByName(name string) (models.Hitmaker, error) {
	row := s.db.QueryRow(`
		SELECT id, name, color, start_date, icon, priority, reminder_time, reminder_days
		FROM hitmakers WHERE name = ?`, name)
	return scanHitmaker(row)
}

func scanHitmaker(row *sql.Row) (models.Hitmaker, error) {
	var h models.Hitmaker
	var reminderTime, reminderDays sql.NullString

	err := row.Scan(&h.ID, &h.Name, &h.Color, &h.StartDate, &h.Icon, &h.Priority, &reminderTime, &reminderDays)
	if err != nil {
		return models.Hitmaker{}, err
	}

	if reminderTime.Valid {
		h.ReminderTime = &reminderTime.String
	}
	if reminderDays.Valid {
		h.ReminderDays = &reminderDays.String
	}

	return h, nil
}

// GetAllHitmakers returns every habit ordered by priority ascending.
func (s *Store) GetAllHitmakers() ([]models.Hitmaker, error) {
	rows, err := s.db.Query(`
		SELECT id, name, color, start_date, icon, priority, reminder_time, reminder_days
		FROM hitmakers ORDER BY priority ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hitmakers []models.Hitmaker
	for rows.Next() {
		var h models.Hitmaker
		var reminderTime, reminderDays sql.NullString

		err := rows.Scan(&h.ID, &h.Name, &h.Color, &h.StartDate, &h.Icon, &h.Priority, &reminderTime, &reminderDays)
		if err != nil {
			return nil, err
		}
		if reminderTime.Valid {
			h.ReminderTime = &reminderTime.String
		}
		if reminderDays.Valid {
			h.ReminderDays = &reminderDays.String
		}
		hitmakers = append(hitmakers, h)
	}

	return hitmakers, rows.Err()
}

func (s *Store) UpdateHitmaker(h models.Hitmaker) error {
	if err := h.Validate(); err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE hitmakers
		SET name = ?, color = ?, start_date = ?, icon = ?, priority = ?, reminder_time = ?, reminder_days = ?
		WHERE id = ?`,
		h.Name, h.Color, h.StartDate, h.Icon, h.Priority, h.ReminderTime, h.ReminderDays, h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hitmaker: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("hitmaker with id %d not found", h.ID)
	}
	return nil
}

// UpdateHitmakerPriorities rewrites priorities for the given habits in one
// transaction so a partial reorder is never persisted.
func (s *Store) UpdateHitmakerPriorities(hitmakers []models.Hitmaker) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("UPDATE hitmakers SET priority = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, h := range hitmakers {
		if _, err := stmt.Exec(h.Priority, h.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteHitmaker removes the habit; daily_status and widget rows cascade.
func (s *Store) DeleteHitmaker(id int64) error {
	res, err := s.db.Exec("DELETE FROM hitmakers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete hitmaker: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("hitmaker with id %d not found", id)
	}
	return nil
}

func (s *Store) CountHitmakers() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM hitmakers").Scan(&count)
	return count, err
}
