package notifier

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/hitmaker/internal/constants"
)

type fakeProcess struct{ pid int }

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return "hitmaker-tray" }

func stubTray(t *testing.T, lockfile string, alive bool) {
	t.Helper()

	configDir := t.TempDir()
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatalf("failed to create tray dir: %v", err)
	}
	if lockfile != "" {
		path := filepath.Join(trayDir, constants.NotifierLockfileName)
		if err := os.WriteFile(path, []byte(lockfile), 0644); err != nil {
			t.Fatalf("failed to write lockfile: %v", err)
		}
	}

	origConfig := userConfigDirFunc
	origFind := findProcessFunc
	userConfigDirFunc = func() (string, error) { return configDir, nil }
	findProcessFunc = func(pid int) (ps.Process, error) {
		if !alive {
			return nil, nil
		}
		return fakeProcess{pid: pid}, nil
	}
	t.Cleanup(func() {
		userConfigDirFunc = origConfig
		findProcessFunc = origFind
	})
}

func TestFindTrayProcess(t *testing.T) {
	tests := []struct {
		name     string
		lockfile string
		alive    bool
		wantErr  bool
	}{
		{"valid lockfile", "8631|1234|secret", true, false},
		{"missing lockfile", "", true, true},
		{"malformed lockfile", "8631|1234", true, true},
		{"bad port", "99999|1234|secret", true, true},
		{"bad pid", "8631|abc|secret", true, true},
		{"empty secret", "8631|1234| ", true, true},
		{"dead process", "8631|1234|secret", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubTray(t, tt.lockfile, tt.alive)

			port, secret, err := findTrayProcess()
			if (err != nil) != tt.wantErr {
				t.Fatalf("findTrayProcess() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (port != "8631" || secret != "secret") {
				t.Errorf("unexpected result port=%q secret=%q", port, secret)
			}
		})
	}
}

func TestNotify_FallsBackToConsoleWithoutTray(t *testing.T) {
	stubTray(t, "", true)

	n := New()
	if err := n.Notify("Self Message: Read", "body"); err != nil {
		t.Errorf("console fallback must not fail the command: %v", err)
	}
}

func TestSendNotification(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("failed to parse test server url: %v", err)
	}

	payload := WebhookPayload{Title: "Self Message: Read", Body: "body", DurationMs: 8000}
	if err := sendNotification(u.Port(), "s3cret", payload); err != nil {
		t.Fatalf("sendNotification failed: %v", err)
	}
	if gotAuth != "Bearer s3cret" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
}

func TestSendNotification_RejectedByTray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad secret", http.StatusUnauthorized)
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	if err := sendNotification(u.Port(), "wrong", WebhookPayload{}); err == nil {
		t.Error("expected an error when the tray rejects the notification")
	}
}
