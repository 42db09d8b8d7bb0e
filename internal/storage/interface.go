package storage

import "github.com/julianstephens/hitmaker/internal/models"

// Provider is the persistence boundary. The sqlite implementation is the
// only one shipped; the interface keeps command and TUI code decoupled
// from the driver and lets tests substitute fixtures.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Hitmakers
	AddHitmaker(models.Hitmaker) (int64, error)
	GetHitmaker(id int64) (models.Hitmaker, error)
	GetHitmakerByName(name string) (models.Hitmaker, error)
	GetAllHitmakers() ([]models.Hitmaker, error)
	UpdateHitmaker(models.Hitmaker) error
	UpdateHitmakerPriorities([]models.Hitmaker) error
	DeleteHitmaker(id int64) error
	CountHitmakers() (int, error)

	// Daily status
	UpsertDailyStatus(models.DailyStatus) error
	GetDailyStatus(hitmakerID, date int64) (models.DailyStatus, error)
	GetDailyStatusesForHitmaker(hitmakerID int64) ([]models.DailyStatus, error)
	GetAllDailyStatuses() ([]models.DailyStatus, error)

	// Widget bindings
	AddWidgetBinding(models.WidgetBinding) error
	GetWidgetBinding(id string) (models.WidgetBinding, error)
	GetAllWidgetBindings() ([]models.WidgetBinding, error)
	DeleteWidgetBinding(id string) error

	// Settings
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error

	// Utils
	GetConfigPath() string
}
