package sqlite

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/models"
)

// UpsertDailyStatus writes the completion record for one habit and day.
// The unique index on (hitmaker_id, date) makes concurrent upserts for the
// same day collapse into a single row, last write wins.
func (s *Store) UpsertDailyStatus(status models.DailyStatus) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_status (hitmaker_id, date, is_done, progress)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(hitmaker_id, date) DO UPDATE SET is_done = excluded.is_done, progress = excluded.progress`,
		status.HitmakerID, status.Date, status.IsDone, status.Progress,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily status: %w", err)
	}
	return nil
}

func (s *Store) GetDailyStatus(hitmakerID, date int64) (models.DailyStatus, error) {
	row := s.db.QueryRow(`
		SELECT id, hitmaker_id, date, is_done, progress
		FROM daily_status WHERE hitmaker_id = ? AND date = ? LIMIT 1`,
		hitmakerID, date)

	var st models.DailyStatus
	err := row.Scan(&st.ID, &st.HitmakerID, &st.Date, &st.IsDone, &st.Progress)
	if err != nil {
		return models.DailyStatus{}, err
	}
	return st, nil
}

func (s *Store) GetDailyStatusesForHitmaker(hitmakerID int64) ([]models.DailyStatus, error) {
	rows, err := s.db.Query(`
		SELECT id, hitmaker_id, date, is_done, progress
		FROM daily_status WHERE hitmaker_id = ? ORDER BY date`, hitmakerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []models.DailyStatus
	for rows.Next() {
		var st models.DailyStatus
		if err := rows.Scan(&st.ID, &st.HitmakerID, &st.Date, &st.IsDone, &st.Progress); err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}

	return statuses, rows.Err()
}

func (s *Store) GetAllDailyStatuses() ([]models.DailyStatus, error) {
	rows, err := s.db.Query(`
		SELECT id, hitmaker_id, date, is_done, progress
		FROM daily_status ORDER BY hitmaker_id, date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []models.DailyStatus
	for rows.Next() {
		var st models.DailyStatus
		if err := rows.Scan(&st.ID, &st.HitmakerID, &st.Date, &st.IsDone, &st.Progress); err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}

	return statuses, rows.Err()
}
