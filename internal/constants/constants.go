package constants

const (
	// DateFormat is the standard date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"
	// TimeFormat is the standard time format (HH:MM, 24-hour)
	TimeFormat = "15:04"

	// DefaultIcon is assigned to habits created without an explicit icon
	DefaultIcon = "Star"
	// DefaultColor is the accent color for new habits (packed ARGB)
	DefaultColor = 0xFF22C55E

	// NotificationTitlePrefix prefixes every reminder notification title
	NotificationTitlePrefix = "Self Message: "
	// NotificationBody is the fixed reminder text
	NotificationBody = "Reminder: It's time to work on your habit!"

	// NotificationDurationMs is how long the tray notification stays visible
	NotificationDurationMs = 8000

	// TrayAppIdentifier is the config dir name of the tray companion app
	TrayAppIdentifier = "hitmaker-tray"
	// NotifierLockfileName is written by the tray app as "port|pid|secret"
	NotifierLockfileName = "hitmaker-tray.lock"

	// WidgetDirName is the directory under the config dir that widget
	// surfaces are rendered into
	WidgetDirName = "widgets"

	// SettingDefaultColor is the settings key holding the saved default
	// accent color for new habits, as "#RRGGBB"
	SettingDefaultColor = "default.color"
)
